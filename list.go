// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daterange

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/daterange/calendar"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// List represents a list of DateRange values, it can be sorted and searched
// using the slices package with Compare.
type List []DateRange

// Merge returns the minimal list of non-empty ranges that neither overlap
// nor abut and that together cover exactly the days covered by ranges.
// The returned list is sorted as per Compare. Empty ranges are ignored
// and ranges need not be sorted.
func Merge(ranges []DateRange) List {
	return MergeContext(context.Background(), ranges)
}

// MergeContext is like Merge but logs each pair of ranges that is
// coalesced, at debug level, to the logger, if any, stored in ctx
// using cloudeng.io/logging/ctxlog.
func MergeContext(ctx context.Context, ranges []DateRange) List {
	logger := ctxlog.Logger(ctx)
	work := make(heap.Heap[DateRange], 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			work = append(work, r)
		}
	}
	work.Init()
	merged := make(List, 0, len(work))
	for work.Len() > 0 {
		candidate := work.Pop()
		for i := 0; i < work.Len(); {
			partner := work[i]
			if !candidate.Overlaps(partner) && !candidate.Abuts(partner) {
				i++
				continue
			}
			work.Remove(i)
			sum := candidate.Sum(partner)[0]
			logger.Debug("daterange: merge", "candidate", candidate, "partner", partner, "result", sum)
			candidate = sum
			i = 0
		}
		merged = append(merged, candidate)
	}
	slices.SortFunc(merged, Compare)
	return slices.Clip(merged)
}

// FromDates returns a merged list of ranges that covers exactly the
// supplied dates. The dates need not be sorted and may contain duplicates.
func FromDates(dates calendar.CalendarDateList) List {
	ranges := make(List, len(dates))
	for i, d := range dates {
		ranges[i] = New(d, d)
	}
	return Merge(ranges)
}

// Merge is like the Merge function.
func (l List) Merge() List {
	return Merge(l)
}

// Sort sorts the list in place as per Compare.
func (l List) Sort() {
	slices.SortFunc(l, Compare)
}

// Equal returns true if both lists contain Equal ranges in the same order.
func (l List) Equal(other List) bool {
	return slices.EqualFunc(l, other, DateRange.Equal)
}

// Contains returns true if day is contained in any of the ranges in the list.
func (l List) Contains(day calendar.CalendarDate) bool {
	return slices.ContainsFunc(l, func(dr DateRange) bool {
		return dr.Contains(day)
	})
}

// NumDays returns the number of distinct days covered by the list.
func (l List) NumDays() int {
	n := 0
	for _, dr := range Merge(l) {
		n += dr.NumDays()
	}
	return n
}

func (l List) String() string {
	var out strings.Builder
	for i, dr := range l {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(dr.String())
	}
	return out.String()
}

// Parse parses ranges in the format expected by DateRange.Parse. All of the
// ranges are parsed and any errors are returned together. The parsed list is
// sorted and without duplicates.
func (l *List) Parse(ranges []string) error {
	if len(ranges) == 0 {
		return nil
	}
	drs := make(List, 0, len(ranges))
	seen := map[DateRange]struct{}{}
	errs := &errors.M{}
	for _, rg := range ranges {
		var dr DateRange
		if err := dr.Parse(rg); err != nil {
			errs.Append(err)
			continue
		}
		if _, ok := seen[dr]; ok {
			continue
		}
		drs = append(drs, dr)
		seen[dr] = struct{}{}
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("failed to parse date ranges: %w", err)
	}
	drs.Sort()
	*l = drs
	return nil
}

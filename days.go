// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daterange

import (
	"iter"

	"cloudeng.io/daterange/calendar"
)

// NumDays returns the number of days in the range, zero for an
// empty range.
func (dr DateRange) NumDays() int {
	if dr.IsEmpty() {
		return 0
	}
	return dr.to.DaysSince(dr.from) + 1
}

// Days returns an iterator that yields each day in the range. It
// returns ErrEmptyRange if the range is empty.
func (dr DateRange) Days() (iter.Seq[calendar.CalendarDate], error) {
	if dr.IsEmpty() {
		return nil, ErrEmptyRange
	}
	return func(yield func(calendar.CalendarDate) bool) {
		td := dr.from
		for n := dr.NumDays(); n > 0; n-- {
			if !yield(td) {
				return
			}
			td = td.Tomorrow()
		}
	}, nil
}

// DaysConstrained returns an iterator that yields each day in the range
// that satisfies the supplied constraints. It returns ErrEmptyRange if the
// range is empty.
func (dr DateRange) DaysConstrained(dc calendar.Constraints) (iter.Seq[calendar.CalendarDate], error) {
	days, err := dr.Days()
	if err != nil {
		return nil, err
	}
	return func(yield func(calendar.CalendarDate) bool) {
		for td := range days {
			if !dc.Include(td) {
				continue
			}
			if !yield(td) {
				return
			}
		}
	}, nil
}

// RangesConstrained returns an iterator that yields the maximal sub-ranges
// of dr whose days all satisfy the supplied constraints, eg. each run of
// weekdays. It returns ErrEmptyRange if the range is empty.
func (dr DateRange) RangesConstrained(dc calendar.Constraints) (iter.Seq[DateRange], error) {
	days, err := dr.Days()
	if err != nil {
		return nil, err
	}
	return func(yield func(DateRange) bool) {
		start, stop := dr.from, dr.from
		inrange := false
		for td := range days {
			if !dc.Include(td) {
				if inrange {
					// Range ends
					if !yield(New(start, stop)) {
						return
					}
				}
				inrange = false
				continue
			}
			if !inrange {
				start = td
				inrange = true
			}
			stop = td
		}
		if inrange {
			yield(New(start, stop))
		}
	}, nil
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package daterange provides a closed algebra over ranges of calendar days.
//
// A DateRange is an inclusive span of days. A range whose start is after
// its end is empty; emptiness is a valid state rather than an error and all
// empty ranges are equal. The package supports containment, overlap and
// adjacency tests, union (Sum), intersection, subtraction (Remove), gaps,
// comparison and the coalescing of arbitrary collections of ranges into
// their minimal, sorted, disjoint cover (Merge).
package daterange

import (
	"fmt"
	"log/slog"
	"strings"

	"cloudeng.io/daterange/calendar"
	"cloudeng.io/errors"
)

var (
	// ErrEmptyRange is returned when an operation requires a non-empty range.
	ErrEmptyRange = errors.New("empty date range")
	// ErrInvalidRange is returned when parsing a range that is not
	// of the form '<from>:<to>' with from on or before to.
	ErrInvalidRange = errors.New("invalid date range")
)

// DateRange represents a range of calendar days, inclusive of both its
// from and to dates. A DateRange whose from date is after its to date is
// empty. DateRange values are immutable.
//
// The zero value is not a meaningful range: it is a single day at the
// invalid date 0000-00-00 and is not empty. Use New, Between, Parse or
// Empty to create ranges.
type DateRange struct {
	from, to calendar.CalendarDate
}

// Empty is an empty DateRange. It is not special: any range with from
// after to is empty and Equal to Empty.
var Empty = New(calendar.NewCalendarDate(1980, 1, 1), calendar.NewCalendarDate(1979, 12, 31))

// New returns a DateRange for the from/to dates. The dates are not
// swapped if from is after to, such a range is empty.
func New(from, to calendar.CalendarDate) DateRange {
	return DateRange{from: from, to: to}
}

// Between is the same as New.
func Between(from, to calendar.CalendarDate) DateRange {
	return New(from, to)
}

// From returns the first day of the range.
func (dr DateRange) From() calendar.CalendarDate {
	return dr.from
}

// To returns the last day of the range.
func (dr DateRange) To() calendar.CalendarDate {
	return dr.to
}

// IsEmpty returns true if the range contains no days. A single day range
// is not empty.
func (dr DateRange) IsEmpty() bool {
	return dr.from > dr.to
}

// Contains returns true if day falls within the range.
func (dr DateRange) Contains(day calendar.CalendarDate) bool {
	return dr.from <= day && day <= dr.to
}

// ContainsRange returns true if both the from and to dates of other fall
// within dr. An empty range is never contained by any other range.
func (dr DateRange) ContainsRange(other DateRange) bool {
	return !other.IsEmpty() && dr.Contains(other.from) && dr.Contains(other.to)
}

// Overlaps returns true if dr and other share at least one day.
func (dr DateRange) Overlaps(other DateRange) bool {
	if dr.IsEmpty() || other.IsEmpty() {
		return false
	}
	return other.Contains(dr.from) || other.Contains(dr.to) || dr.ContainsRange(other)
}

// Abuts returns true if dr and other do not overlap and there are
// no days between them.
func (dr DateRange) Abuts(other DateRange) bool {
	if dr.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !dr.Overlaps(other) && dr.Gap(other).IsEmpty()
}

// StartsBefore returns true if dr starts before day.
func (dr DateRange) StartsBefore(day calendar.CalendarDate) bool {
	return dr.from < day
}

// StartsBeforeRange returns true if dr starts before other starts.
func (dr DateRange) StartsBeforeRange(other DateRange) bool {
	return dr.from < other.from
}

// EndsBefore returns true if dr ends before day.
func (dr DateRange) EndsBefore(day calendar.CalendarDate) bool {
	return dr.to < day
}

// EndsBeforeRange returns true if dr ends before other starts.
func (dr DateRange) EndsBeforeRange(other DateRange) bool {
	return dr.to < other.from
}

// Equal returns true if both ranges are empty or both have the same from
// and to dates.
func (dr DateRange) Equal(other DateRange) bool {
	if dr.IsEmpty() && other.IsEmpty() {
		return true
	}
	return dr == other
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, with
// or after b. Ranges are ordered by their from dates and then by their to
// dates. It can be used with slices.SortFunc.
func Compare(a, b DateRange) int {
	switch {
	case a.from < b.from:
		return -1
	case a.from > b.from:
		return 1
	case a.to < b.to:
		return -1
	case a.to > b.to:
		return 1
	}
	return 0
}

// Less returns true if dr sorts before other as per Compare.
func (dr DateRange) Less(other DateRange) bool {
	return Compare(dr, other) < 0
}

func (dr DateRange) String() string {
	if dr.IsEmpty() {
		return "(empty)"
	}
	return fmt.Sprintf("%s:%s", dr.from, dr.to)
}

// LogValue implements slog.LogValuer.
func (dr DateRange) LogValue() slog.Value {
	return slog.StringValue(dr.String())
}

// Parse parses a range in the format '<from>:<to>' where from and to
// are in any of the formats accepted by calendar.CalendarDate.Parse,
// eg. '2000-01-01:2000-01-31'. The from date must not be after the to date.
func (dr *DateRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("%q expected '<from>:<to>': %w", val, ErrInvalidRange)
	}
	var from, to calendar.CalendarDate
	if err := from.Parse(parts[0]); err != nil {
		return fmt.Errorf("invalid from: %s: %v: %w", parts[0], err, ErrInvalidRange)
	}
	if err := to.Parse(parts[1]); err != nil {
		return fmt.Errorf("invalid to: %s: %v: %w", parts[1], err, ErrInvalidRange)
	}
	if to < from {
		return fmt.Errorf("%q from is later than to: %w", val, ErrInvalidRange)
	}
	*dr = New(from, to)
	return nil
}

// Parse is like DateRange.Parse.
func Parse(val string) (DateRange, error) {
	var dr DateRange
	err := dr.Parse(val)
	return dr, err
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daterange_test

import (
	"cloudeng.io/daterange"
	"cloudeng.io/daterange/calendar"
)

func newCalendarDate(y, m, d int) calendar.CalendarDate {
	return calendar.NewCalendarDate(y, calendar.Month(m), d)
}

func parseDate(val string) calendar.CalendarDate {
	cd, err := calendar.ParseCalendarDate(val)
	if err != nil {
		panic(err)
	}
	return cd
}

// newRange returns the range from:to, from may be after to in which
// case the range is empty.
func newRange(from, to string) daterange.DateRange {
	return daterange.New(parseDate(from), parseDate(to))
}

func newList(ranges ...daterange.DateRange) daterange.List {
	l := make(daterange.List, len(ranges))
	copy(l, ranges)
	return l
}

// smallRanges returns every range, including empty ones, whose from and
// to dates both fall within the first n days of January 2000.
func smallRanges(n int) []daterange.DateRange {
	var ranges []daterange.DateRange
	for f := 1; f <= n; f++ {
		for t := 1; t <= n; t++ {
			ranges = append(ranges, daterange.New(newCalendarDate(2000, 1, f), newCalendarDate(2000, 1, t)))
		}
	}
	return ranges
}

// covered returns the set of days covered by the supplied ranges.
func covered(ranges []daterange.DateRange) map[calendar.CalendarDate]bool {
	days := map[calendar.CalendarDate]bool{}
	for _, r := range ranges {
		for d := r.From(); d <= r.To(); d = d.Tomorrow() {
			days[d] = true
		}
	}
	return days
}

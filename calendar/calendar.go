// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides the calendar date primitives used by
// day-granularity date ranges: a totally ordered CalendarDate with day
// arithmetic, month boundaries and parsing.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate represents a date with a year, month and day. The year, month
// and day are packed into a single integer, year in the top 16 bits, month
// in the next 8 and day in the lowest 8, so that CalendarDate values can be
// compared directly with <, <=, ==, > and >=.
//
// Only dates with years in the range MinYear to MaxYear are valid. The
// packed form can hold years 0-65535, so the day before the first valid
// date and the day after the last remain representable and ordered.
type CalendarDate uint32

// MinYear and MaxYear bound the years of valid dates.
const (
	MinYear = 1
	MaxYear = 0xffff - 1
)

var (
	minRepresentable = NewCalendarDate(0, 1, 1)
	maxRepresentable = NewCalendarDate(0xffff, 12, 31)
)

// NewCalendarDate returns a CalendarDate for the specified year, month and day.
// No validation is performed.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint32(year)&0xffff<<16 | uint32(month)&0xff<<8 | uint32(day)&0xff)
}

// NewCalendarDateFromTime returns a CalendarDate for the date of the
// specified time in that time's location.
func NewCalendarDateFromTime(t time.Time) CalendarDate {
	return NewCalendarDate(t.Year(), Month(t.Month()), t.Day())
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return int(cd >> 16 & 0xffff)
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// Time returns a time.Time for midnight on cd in the specified location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, loc)
}

// IsValid returns true if cd refers to a real day, ie. its year is in the
// range MinYear-MaxYear, its month in the range 1-12 and its day is within
// that month.
func (cd CalendarDate) IsValid() bool {
	y, d := cd.Year(), cd.Day()
	return y >= MinYear && y <= MaxYear &&
		cd.Month().Valid() && d >= 1 && d <= DaysInMonth(y, cd.Month())
}

// AddDays returns the date n days after cd, n may be negative. The result
// saturates at 0000-01-01 and 65535-12-31 rather than wrapping around.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	if n == 0 {
		return cd
	}
	t := time.Date(cd.Year(), time.Month(cd.Month()), cd.Day()+n, 0, 0, 0, 0, time.UTC)
	switch {
	case t.Year() < 0:
		return minRepresentable
	case t.Year() > 0xffff:
		return maxRepresentable
	}
	return NewCalendarDateFromTime(t)
}

// Tomorrow returns the date of the next day.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd.Day() < DaysInMonth(cd.Year(), cd.Month()) {
		return cd + 1
	}
	return cd.AddDays(1)
}

// Yesterday returns the date of the previous day.
func (cd CalendarDate) Yesterday() CalendarDate {
	if cd.Day() > 1 {
		return cd - 1
	}
	return cd.AddDays(-1)
}

func (cd CalendarDate) dayNumber() int64 {
	return cd.Time(time.UTC).Unix() / (24 * 60 * 60)
}

// DaysSince returns the number of days from other to cd, it is negative
// if other is after cd.
func (cd CalendarDate) DaysSince(other CalendarDate) int {
	return int(cd.dayNumber() - other.dayNumber())
}

// DaysInMonth returns the number of days in cd's month.
func (cd CalendarDate) DaysInMonth() int {
	return DaysInMonth(cd.Year(), cd.Month())
}

// StartOfMonth returns the first day of cd's month.
func (cd CalendarDate) StartOfMonth() CalendarDate {
	return NewCalendarDate(cd.Year(), cd.Month(), 1)
}

// EndOfMonth returns the last day of cd's month.
func (cd CalendarDate) EndOfMonth() CalendarDate {
	return NewCalendarDate(cd.Year(), cd.Month(), cd.DaysInMonth())
}

// SameMonth returns true if cd and other fall in the same month of the
// same year.
func (cd CalendarDate) SameMonth(other CalendarDate) bool {
	return cd>>8 == other>>8
}

// DaysFromStartOfMonth returns the number of the day within its month,
// 1 for the first day of the month.
func (cd CalendarDate) DaysFromStartOfMonth() int {
	return cd.Day()
}

// DaysToEndOfMonth returns the number of days remaining in cd's month,
// 0 for the last day of the month.
func (cd CalendarDate) DaysToEndOfMonth() int {
	return cd.DaysInMonth() - cd.Day()
}

// StartOfNextMonth returns the first day of the month following cd's month.
func (cd CalendarDate) StartOfNextMonth() CalendarDate {
	if cd.Month() == 12 {
		return NewCalendarDate(cd.Year()+1, 1, 1)
	}
	return NewCalendarDate(cd.Year(), cd.Month()+1, 1)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), cd.Month(), cd.Day())
}

const expectedCalendarDateFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

// Parse parses a date in formats '2006-01-02', '01/02/2006' or 'Jan-02-2006'
// with error checking for valid year, month and day. Years must be in the
// range MinYear-MaxYear.
func (cd *CalendarDate) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s", expectedCalendarDateFormats)
	}
	var (
		year, day string
		month     Month
		err       error
	)
	if parts := strings.Split(val, "/"); len(parts) == 3 {
		month, err = ParseNumericMonth(parts[0])
		day, year = parts[1], parts[2]
	} else if parts := strings.Split(val, "-"); len(parts) == 3 {
		if _, nerr := strconv.Atoi(parts[0]); nerr == nil {
			year, day = parts[0], parts[2]
			month, err = ParseNumericMonth(parts[1])
		} else {
			month, err = ParseMonth(parts[0])
			day, year = parts[1], parts[2]
		}
	} else {
		return fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarDateFormats)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q: %v", val, err)
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < MinYear || y > MaxYear {
		return fmt.Errorf("invalid year: %s, must be in the range %d-%d", year, MinYear, MaxYear)
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return fmt.Errorf("invalid day: %s", day)
	}
	if d < 1 || d > DaysInMonth(y, month) {
		return fmt.Errorf("invalid day for %v %v: %d", month, y, d)
	}
	*cd = NewCalendarDate(y, month, d)
	return nil
}

// ParseCalendarDate is like CalendarDate.Parse.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var cd CalendarDate
	err := cd.Parse(val)
	return cd, err
}

// CalendarDateList represents a list of CalendarDate values.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if d is in the list.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month represents a month of the year, 1 (January) to 12 (December).
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// Valid returns true if m is in the range 1-12.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

// days in each month of a non-leap year, indexed by Month.
var monthLength = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap returns true if year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month for year. It returns
// zero for an invalid month.
func DaysInMonth(year int, month Month) int {
	if !month.Valid() {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthLength[month]
}

// ParseNumericMonth parses a month number, 1-12, with an optional
// leading zero.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if m := Month(n); m.Valid() {
		return m, nil
	}
	return 0, fmt.Errorf("invalid month: %d", n)
}

// ParseMonth parses a month name, in any case, given either in full or
// as a prefix of at least three letters, eg. "Jan", "sept" or "DECEMBER".
func ParseMonth(val string) (Month, error) {
	if len(val) >= 3 {
		for m := Month(1); m <= 12; m++ {
			if name := m.String(); len(val) <= len(name) && strings.EqualFold(name[:len(val)], val) {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid month: %q", val)
}

// Parse parses a month given as a number or as a name.
func (m *Month) Parse(val string) error {
	pm, err := ParseNumericMonth(val)
	if err != nil {
		if pm, err = ParseMonth(val); err != nil {
			return err
		}
	}
	*m = pm
	return nil
}

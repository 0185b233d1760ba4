// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "time"

// Constraints selects a subset of days. Setting exactly one of Weekdays
// or Weekends restricts days to Monday-Friday or Saturday-Sunday
// respectively, setting both or neither imposes no such restriction.
// Days listed in Custom are always excluded.
type Constraints struct {
	Weekdays bool
	Weekends bool
	Custom   CalendarDateList
}

// IsWeekend returns true if cd falls on a Saturday or Sunday.
func (cd CalendarDate) IsWeekend() bool {
	switch cd.Time(time.UTC).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// Include returns true if cd satisfies the constraints. The zero value
// includes every day.
func (dc Constraints) Include(cd CalendarDate) bool {
	if dc.Custom.Contains(cd) {
		return false
	}
	if dc.Weekdays == dc.Weekends {
		return true
	}
	return cd.IsWeekend() == dc.Weekends
}

// Empty returns true if no constraints are set.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Custom) == 0
}

func (dc Constraints) String() string {
	var days string
	switch {
	case dc.Weekdays && dc.Weekends:
		days = "everyday"
	case dc.Weekdays:
		days = "weekdays only"
	case dc.Weekends:
		days = "weekends only"
	}
	if len(dc.Custom) == 0 {
		return days
	}
	return "excluding custom dates: " + dc.Custom.String() + ": " + days
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daterange

import (
	"github.com/shopspring/decimal"
)

// DefaultRoundingPlaces is the number of decimal places that
// LengthInMonths rounds each partial month to by default.
const DefaultRoundingPlaces = 6

// RoundingMode determines how partial months are rounded.
type RoundingMode int

const (
	// RoundHalfEven rounds to the nearest value and ties to the even
	// neighbour, ie. bankers rounding. It is the default.
	RoundHalfEven RoundingMode = iota
	// RoundHalfAwayFromZero rounds to the nearest value and ties away from zero.
	RoundHalfAwayFromZero
)

type monthsOptions struct {
	places int32
	mode   RoundingMode
}

// MonthsOption represents an option to LengthInMonths.
type MonthsOption func(*monthsOptions)

// WithRoundingPlaces sets the number of decimal places that each partial
// month is rounded to.
func WithRoundingPlaces(n int32) MonthsOption {
	return func(o *monthsOptions) {
		o.places = n
	}
}

// WithRoundingMode sets the rounding mode used for partial months.
func WithRoundingMode(mode RoundingMode) MonthsOption {
	return func(o *monthsOptions) {
		o.mode = mode
	}
}

func (o monthsOptions) round(d decimal.Decimal) decimal.Decimal {
	if o.mode == RoundHalfAwayFromZero {
		return d.Round(o.places)
	}
	return d.RoundBank(o.places)
}

// fraction returns the fraction of its month covered by dr, dr must
// lie within a single month.
func (o monthsOptions) fraction(dr DateRange) decimal.Decimal {
	days := decimal.NewFromInt(int64(dr.to.Day() - dr.from.Day() + 1))
	return o.round(days.Div(decimal.NewFromInt(int64(dr.from.DaysInMonth()))))
}

var one = decimal.NewFromInt(1)

// LengthInMonths returns the length of the range measured in months.
// Each month that is wholly covered counts as one and a partially covered
// month counts as the number of days covered divided by the number of
// days in that month, rounded as per the supplied options. An empty range
// has a length of zero.
func (dr DateRange) LengthInMonths(opts ...MonthsOption) decimal.Decimal {
	o := monthsOptions{places: DefaultRoundingPlaces}
	for _, fn := range opts {
		fn(&o)
	}
	if dr.IsEmpty() {
		return decimal.Zero
	}
	if dr.from.SameMonth(dr.to) {
		return o.fraction(dr)
	}
	length := o.fraction(New(dr.from, dr.from.EndOfMonth()))
	for m := dr.from.StartOfNextMonth(); !m.SameMonth(dr.to); m = m.StartOfNextMonth() {
		length = length.Add(one)
	}
	return length.Add(o.fraction(New(dr.to.StartOfMonth(), dr.to)))
}

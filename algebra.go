// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daterange

import "cloudeng.io/daterange/calendar"

// Gap returns the range of days strictly between dr and other. It is
// empty if the ranges overlap, abut or either of them is empty.
// The gap is the same regardless of the order of dr and other.
func (dr DateRange) Gap(other DateRange) DateRange {
	if dr.IsEmpty() || other.IsEmpty() || dr.Overlaps(other) {
		return Empty
	}
	lower, higher := dr, other
	if Compare(dr, other) > 0 {
		lower, higher = other, dr
	}
	return New(lower.to.Tomorrow(), higher.from.Yesterday())
}

// Sum returns the union of dr and other. An empty range is the identity,
// so if either is empty the other is returned. Ranges that neither
// overlap nor abut are returned unchanged as two ranges, dr followed by
// other, otherwise a single range spanning both is returned.
func (dr DateRange) Sum(other DateRange) List {
	if dr.IsEmpty() {
		return List{other}
	}
	if other.IsEmpty() {
		return List{dr}
	}
	if !dr.Overlaps(other) && !dr.Abuts(other) {
		return List{dr, other}
	}
	return List{New(min(dr.from, other.from), max(dr.to, other.to))}
}

// Intersect returns the days common to dr and other, Empty is returned
// if there are none.
func (dr DateRange) Intersect(other DateRange) DateRange {
	if dr.IsEmpty() || other.IsEmpty() || !dr.Overlaps(other) {
		return Empty
	}
	return New(max(dr.from, other.from), min(dr.to, other.to))
}

// IntersectList returns the days common to dr and each of others as
// a merged, sorted list of disjoint ranges.
func (dr DateRange) IntersectList(others []DateRange) List {
	common := make(List, 0, len(others))
	for _, o := range others {
		if c := dr.Intersect(o); !c.IsEmpty() {
			common = append(common, c)
		}
	}
	return Merge(common)
}

// Remove returns the parts of dr that are not in other, this may
// be zero, one or two ranges.
func (dr DateRange) Remove(other DateRange) List {
	common := dr.Intersect(other)
	if common.IsEmpty() {
		return List{dr}
	}
	leftovers := make(List, 0, 2)
	if before := New(dr.from, common.from.Yesterday()); !before.IsEmpty() {
		leftovers = append(leftovers, before)
	}
	if after := New(common.to.Tomorrow(), dr.to); !after.IsEmpty() {
		leftovers = append(leftovers, after)
	}
	return leftovers
}

// Divide splits dr into two ranges, the first ending on cut and the second
// starting on the day after cut. If cut is not within dr then dr is returned
// unchanged. Note that cutting on the last day of dr results in an empty
// second range.
func (dr DateRange) Divide(cut calendar.CalendarDate) List {
	if !dr.Contains(cut) {
		return List{dr}
	}
	return List{New(dr.from, cut), New(cut.Tomorrow(), dr.to)}
}

// Difference represents the result of comparing two ranges.
type Difference struct {
	Common       List // Days present in both ranges.
	OnlyInFirst  List // Days present only in the first range.
	OnlyInSecond List // Days present only in the second range.
}

// Diff compares first and second and returns the days they have in common
// and the days that are present in only one of them.
func Diff(first, second DateRange) Difference {
	common := first.Intersect(second)
	d := Difference{Common: List{}}
	if !common.IsEmpty() {
		d.Common = append(d.Common, common)
	}
	d.OnlyInFirst = first.Remove(common)
	d.OnlyInSecond = second.Remove(first)
	return d
}

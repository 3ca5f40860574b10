// Package bddset: IntSet, an immutable ordered set of integers kept as
// disjoint, non-adjacent ranges.
//
// IntSet is the value-range vocabulary of this package: a set variable's
// required (greatest lower) and allowed (least upper) bounds are
// IntSets, and so are the constant sets handed to the cardinality
// builders. Construction normalizes the input; after that an IntSet is
// never mutated, so it may be shared freely.
package bddset

import (
	"fmt"
	"sort"
	"strings"
)

// Range is one contiguous run of integers, both ends inclusive.
type Range struct {
	Min, Max int
}

// IntSet is an ordered integer set. The zero value is the empty set.
type IntSet struct {
	ranges []Range
	size   int
}

// NewIntSet creates the set {min..max}. A min greater than max yields
// the empty set.
func NewIntSet(min, max int) IntSet {
	if min > max {
		return IntSet{}
	}
	return IntSet{
		ranges: []Range{{Min: min, Max: max}},
		size:   max - min + 1,
	}
}

// NewIntSetValues creates a set from explicit values. Duplicates are
// ignored and adjacent values coalesce into ranges.
func NewIntSetValues(values []int) IntSet {
	if len(values) == 0 {
		return IntSet{}
	}
	vs := make([]int, len(values))
	copy(vs, values)
	sort.Ints(vs)

	var ranges []Range
	cur := Range{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		switch {
		case v <= cur.Max:
			// duplicate
		case v == cur.Max+1:
			cur.Max = v
		default:
			ranges = append(ranges, cur)
			cur = Range{Min: v, Max: v}
		}
	}
	ranges = append(ranges, cur)

	size := 0
	for _, r := range ranges {
		size += r.Max - r.Min + 1
	}
	return IntSet{ranges: ranges, size: size}
}

// NewIntSetRanges creates a set as the union of the given ranges.
// Ranges may overlap or arrive unordered; empty ranges are dropped.
func NewIntSetRanges(ranges []Range) IntSet {
	rs := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Min <= r.Max {
			rs = append(rs, r)
		}
	}
	if len(rs) == 0 {
		return IntSet{}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Min < rs[j].Min })

	merged := []Range{rs[0]}
	for _, r := range rs[1:] {
		last := &merged[len(merged)-1]
		if r.Min <= last.Max+1 {
			if r.Max > last.Max {
				last.Max = r.Max
			}
		} else {
			merged = append(merged, r)
		}
	}
	size := 0
	for _, r := range merged {
		size += r.Max - r.Min + 1
	}
	return IntSet{ranges: merged, size: size}
}

// Size returns the number of values in the set.
func (s IntSet) Size() int {
	return s.size
}

// Min returns the smallest value. Undefined on the empty set; callers
// must check Size first.
func (s IntSet) Min() int {
	return s.ranges[0].Min
}

// Max returns the largest value. Undefined on the empty set.
func (s IntSet) Max() int {
	return s.ranges[len(s.ranges)-1].Max
}

// Has reports whether v is in the set.
func (s IntSet) Has(v int) bool {
	i := sort.Search(len(s.ranges), func(i int) bool {
		return s.ranges[i].Max >= v
	})
	return i < len(s.ranges) && s.ranges[i].Min <= v
}

// Ranges returns a fresh forward iterator over the set's ranges.
func (s IntSet) Ranges() RangeIterator {
	return &intSetRanges{set: s}
}

// Values returns a fresh forward iterator over the set's values.
func (s IntSet) Values() ValueIterator {
	return NewRangeValues(s.Ranges())
}

// String returns a readable representation such as "{1..3,7,9..12}".
func (s IntSet) String() string {
	if s.size == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{")
	for i, r := range s.ranges {
		if i > 0 {
			b.WriteString(",")
		}
		if r.Min == r.Max {
			fmt.Fprintf(&b, "%d", r.Min)
		} else {
			fmt.Fprintf(&b, "%d..%d", r.Min, r.Max)
		}
	}
	b.WriteString("}")
	return b.String()
}

// intSetRanges iterates the ranges of an IntSet.
type intSetRanges struct {
	set IntSet
	i   int
}

func (it *intSetRanges) Valid() bool {
	return it.i < len(it.set.ranges)
}

func (it *intSetRanges) Next() {
	it.i++
}

func (it *intSetRanges) Min() int {
	return it.set.ranges[it.i].Min
}

func (it *intSetRanges) Max() int {
	return it.set.ranges[it.i].Max
}

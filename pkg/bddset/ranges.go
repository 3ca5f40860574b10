// Package bddset: forward iterator protocol over value ranges, and the
// algebra the cardinality builders rely on - range intersection and
// range-to-value flattening.
//
// Iterators are forward-only and single-use: obtain a fresh one for each
// traversal. The ValCache turns any ValueIterator into a replayable,
// bidirectional sequence when an algorithm needs more than one pass.
package bddset

// RangeIterator walks an ordered sequence of disjoint integer ranges.
// Min and Max are only defined while Valid reports true.
type RangeIterator interface {
	// Valid reports whether the iterator is positioned at a range.
	Valid() bool
	// Next moves to the following range.
	Next()
	// Min returns the smallest value of the current range.
	Min() int
	// Max returns the largest value of the current range.
	Max() int
}

// ValueIterator walks an ordered sequence of integers.
// Value is only defined while Valid reports true.
type ValueIterator interface {
	Valid() bool
	Next()
	Value() int
}

// Intersect iterates the intersection of two range sequences.
type Intersect struct {
	a, b     RangeIterator
	min, max int
	done     bool
}

// NewIntersect creates an intersection iterator over a and b, which must
// both be fresh (unconsumed) iterators.
func NewIntersect(a, b RangeIterator) *Intersect {
	it := &Intersect{a: a, b: b}
	it.locate()
	return it
}

// locate positions the iterator on the next overlapping piece.
func (it *Intersect) locate() {
	for it.a.Valid() && it.b.Valid() {
		if it.a.Max() < it.b.Min() {
			it.a.Next()
			continue
		}
		if it.b.Max() < it.a.Min() {
			it.b.Next()
			continue
		}
		it.min = it.a.Min()
		if it.b.Min() > it.min {
			it.min = it.b.Min()
		}
		it.max = it.a.Max()
		if it.b.Max() < it.max {
			it.max = it.b.Max()
		}
		return
	}
	it.done = true
}

// Valid reports whether the iterator is positioned at a range.
func (it *Intersect) Valid() bool {
	return !it.done
}

// Next moves to the next overlapping piece.
func (it *Intersect) Next() {
	// Discard whichever side ends first; on a tie both are spent.
	am, bm := it.a.Max(), it.b.Max()
	if am <= bm {
		it.a.Next()
	}
	if bm <= am {
		it.b.Next()
	}
	it.locate()
}

// Min returns the smallest value of the current overlap.
func (it *Intersect) Min() int {
	return it.min
}

// Max returns the largest value of the current overlap.
func (it *Intersect) Max() int {
	return it.max
}

// RangeValues flattens a range iterator into its individual values.
type RangeValues struct {
	r   RangeIterator
	cur int
}

// NewRangeValues creates a value iterator over every value of r.
func NewRangeValues(r RangeIterator) *RangeValues {
	it := &RangeValues{r: r}
	if r.Valid() {
		it.cur = r.Min()
	}
	return it
}

// Valid reports whether a value is available.
func (it *RangeValues) Valid() bool {
	return it.r.Valid()
}

// Next moves to the following value, crossing range boundaries.
func (it *RangeValues) Next() {
	if it.cur < it.r.Max() {
		it.cur++
		return
	}
	it.r.Next()
	if it.r.Valid() {
		it.cur = it.r.Min()
	}
}

// Value returns the current value.
func (it *RangeValues) Value() int {
	return it.cur
}

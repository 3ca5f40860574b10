// Package bddset: SetView, the diagram-side representation of one set
// variable.
//
// A view owns a contiguous block of manager slots, one slot per value of
// the variable's initial least-upper-bound interval. Slot offset+i
// stands for "the set contains value lubMin+i". The cardinality and
// auxiliary builders only ever touch a variable through this surface:
// its offset, its table width, its initial bounds, and the Element /
// ElementNeg literal constructors.
package bddset

import "github.com/cockroachdb/errors"

// SetView is a set variable's window onto the diagram variable table.
type SetView struct {
	m      *Manager
	offset int
	width  int
	lubMin int
	lubMax int
	lub    IntSet
}

// NewSetView allocates a view over the given least upper bound. The
// slot block covers the full interval [lub.Min(), lub.Max()]; holes in
// lub are excluded by Dom, not by the table shape.
func NewSetView(m *Manager, lub IntSet) (*SetView, error) {
	if m == nil {
		return nil, errors.Errorf("NewSetView: nil manager")
	}
	if lub.Size() == 0 {
		return nil, errors.Wrap(ErrFailedDomain, "NewSetView: empty upper bound")
	}
	if lub.Min() < ValueMin || lub.Max() > ValueMax {
		return nil, errors.Wrapf(ErrOutOfRangeDomain,
			"NewSetView: bounds [%d..%d] exceed [%d..%d]",
			lub.Min(), lub.Max(), ValueMin, ValueMax)
	}
	width := lub.Max() - lub.Min() + 1
	return &SetView{
		m:      m,
		offset: m.Allocate(width),
		width:  width,
		lubMin: lub.Min(),
		lubMax: lub.Max(),
		lub:    lub,
	}, nil
}

// Manager returns the manager the view's slots live in.
func (x *SetView) Manager() *Manager {
	return x.m
}

// Offset returns the first slot of the view's block.
func (x *SetView) Offset() int {
	return x.offset
}

// TableWidth returns the number of slots in the view's block.
func (x *SetView) TableWidth() int {
	return x.width
}

// InitialLubMin returns the smallest value of the initial upper bound.
func (x *SetView) InitialLubMin() int {
	return x.lubMin
}

// InitialLubMax returns the largest value of the initial upper bound.
func (x *SetView) InitialLubMax() int {
	return x.lubMax
}

// Lub returns the initial least upper bound as a set.
func (x *SetView) Lub() IntSet {
	return x.lub
}

// LubRanges returns a fresh range iterator over the initial upper bound.
func (x *SetView) LubRanges() RangeIterator {
	return x.lub.Ranges()
}

// Element returns the literal "the set contains value lubMin+i".
// i must lie in [0, TableWidth).
func (x *SetView) Element(i int) Node {
	if i < 0 || i >= x.width {
		panic("Element: index outside table width")
	}
	return x.m.Pos(x.offset + i)
}

// ElementNeg returns the literal "the set does not contain lubMin+i".
func (x *SetView) ElementNeg(i int) Node {
	if i < 0 || i >= x.width {
		panic("ElementNeg: index outside table width")
	}
	return x.m.Neg(x.offset + i)
}

// Dom returns the diagram excluding every hole of the initial upper
// bound: values inside [lubMin, lubMax] that lub does not contain are
// forced absent. For a contiguous lub this is True.
func (x *SetView) Dom() Node {
	d := True
	for v := x.lubMin; v <= x.lubMax; v++ {
		if !x.lub.Has(v) {
			d = x.m.And(d, x.ElementNeg(v-x.lubMin))
		}
	}
	return d
}

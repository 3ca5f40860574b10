package bddset

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

// evalMask evaluates d under the assignment where slot i is true iff
// bit i of mask is set.
func evalMask(m *Manager, d Node, mask uint) bool {
	return m.Eval(d, func(slot int) bool {
		return mask&(1<<uint(slot)) != 0
	})
}

// requireAccepts checks d against a predicate over the full assignment
// space of `slots` low slots.
func requireAccepts(t *testing.T, m *Manager, d Node, slots int, want func(mask uint) bool) {
	t.Helper()
	for mask := uint(0); mask < 1<<uint(slots); mask++ {
		require.Equal(t, want(mask), evalMask(m, d, mask),
			"assignment mask %0*b", slots, mask)
	}
}

func newViewT(t *testing.T, m *Manager, lub IntSet) *SetView {
	t.Helper()
	x, err := NewSetView(m, lub)
	require.NoError(t, err)
	return x
}

func TestCard_WindowZero(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4))

	d, err := Card(x, 0, 0)
	require.NoError(t, err)
	requireAccepts(t, m, d, 4, func(mask uint) bool {
		return mask == 0
	})
}

func TestCard_FullCount(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4))

	d, err := Card(x, 4, 4)
	require.NoError(t, err)
	requireAccepts(t, m, d, 4, func(mask uint) bool {
		return mask == 0xF
	})
}

func TestCard_WindowOneToThree(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4))

	d, err := Card(x, 1, 3)
	require.NoError(t, err)

	accepted := 0
	for mask := uint(0); mask < 16; mask++ {
		if evalMask(m, d, mask) {
			accepted++
		}
		pc := bits.OnesCount(mask)
		require.Equal(t, pc >= 1 && pc <= 3, evalMask(m, d, mask),
			"assignment mask %04b", mask)
	}
	require.Equal(t, 14, accepted)
}

func TestCard_ExactInterior(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4))

	for c := 1; c <= 3; c++ {
		d, err := Card(x, c, c)
		require.NoError(t, err)
		requireAccepts(t, m, d, 4, func(mask uint) bool {
			return bits.OnesCount(mask) == c
		})
	}
}

func TestCard_GeneralWindows(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 5))

	for cl := 0; cl <= 5; cl++ {
		for cr := cl; cr <= 5; cr++ {
			d, err := Card(x, cl, cr)
			require.NoError(t, err)
			requireAccepts(t, m, d, 5, func(mask uint) bool {
				pc := bits.OnesCount(mask)
				return pc >= cl && pc <= cr
			})
		}
	}
}

func TestCard_NoRestriction(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4))

	d, err := Card(x, 0, 4)
	require.NoError(t, err)
	require.Equal(t, True, d)
}

func TestCard_ClipUpperBound(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4))

	clipped, err := Card(x, 2, 9)
	require.NoError(t, err)
	exact, err := Card(x, 2, 4)
	require.NoError(t, err)
	require.Equal(t, exact, clipped)
}

func TestCard_InconsistentWindow(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4))

	// cl beyond the domain size rejects everything, regardless of cr.
	d, err := Card(x, 5, 9)
	require.NoError(t, err)
	require.Equal(t, False, d)

	// After clipping cr to the domain size, cl > cr is inconsistent too.
	d, err = Card(x, 5, 3)
	require.NoError(t, err)
	require.Equal(t, False, d)
}

func TestCard_NegativeWindow(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4))

	_, err := Card(x, -1, 2)
	require.Error(t, err)
	_, err = Card(x, 0, -2)
	require.Error(t, err)
}

func TestCard_Idempotent(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4))

	// Equal but distinct constant sets produce the same diagram.
	d1, err := ConstSetCard(x, NewIntSet(1, 4), 1, 3)
	require.NoError(t, err)
	d2, err := ConstSetCard(x, NewIntSetValues([]int{1, 2, 3, 4}), 1, 3)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}

func TestConstSetCard_SubsetLiterals(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 6)) // slots 0..5

	// Values {2,4,5} map to slots {1,3,4}; the other slots stay free.
	d, err := ConstSetCard(x, NewIntSetValues([]int{2, 4, 5}), 1, 2)
	require.NoError(t, err)
	requireAccepts(t, m, d, 6, func(mask uint) bool {
		pc := bits.OnesCount(mask & 0b011010)
		return pc >= 1 && pc <= 2
	})
}

func TestConstSetCard_OutsideTable(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4))

	_, err := ConstSetCard(x, NewIntSet(3, 6), 0, 1)
	require.Error(t, err)
}

func TestIntersectCard_Window(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 4)) // slots 0..3
	y := newViewT(t, m, NewIntSet(2, 5)) // slots 4..7

	// Intersection of the bounds is {2,3,4}.
	d, err := IntersectCard(x, y, 1, 2)
	require.NoError(t, err)
	requireAccepts(t, m, d, 8, func(mask uint) bool {
		shared := 0
		for k := 2; k <= 4; k++ {
			xBit := mask&(1<<uint(k-1)) != 0
			yBit := mask&(1<<uint(4+k-2)) != 0
			if xBit && yBit {
				shared++
			}
		}
		return shared >= 1 && shared <= 2
	})
}

func TestIntersectCard_ExactShared(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 3)) // slots 0..2
	y := newViewT(t, m, NewIntSet(1, 3)) // slots 3..5

	d, err := IntersectCard(x, y, 2, 2)
	require.NoError(t, err)
	requireAccepts(t, m, d, 6, func(mask uint) bool {
		shared := bits.OnesCount(mask & (mask >> 3) & 0b111)
		return shared == 2
	})
}

func TestIntersectCard_EmptyIntersectionRequiresNone(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 2))
	y := newViewT(t, m, NewIntSet(5, 6))

	d, err := IntersectCard(x, y, 0, 0)
	require.NoError(t, err)
	require.Equal(t, True, d)

	d, err = IntersectCard(x, y, 1, 2)
	require.NoError(t, err)
	require.Equal(t, False, d)
}

func TestIntersectCard_WindowZeroExcludesBoth(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 3)) // slots 0..2
	y := newViewT(t, m, NewIntSet(1, 3)) // slots 3..5

	// The zero-cardinality diagram forces the common values out of both
	// sets, not merely out of their intersection.
	d, err := IntersectCard(x, y, 0, 0)
	require.NoError(t, err)
	requireAccepts(t, m, d, 6, func(mask uint) bool {
		return mask == 0
	})
}

func TestIntersectCard_FullShared(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 3)) // slots 0..2
	y := newViewT(t, m, NewIntSet(1, 3)) // slots 3..5

	d, err := IntersectCard(x, y, 3, 3)
	require.NoError(t, err)
	requireAccepts(t, m, d, 6, func(mask uint) bool {
		return mask == 0b111111
	})
}

func TestIntersectCard_UnderInterleavedOrder(t *testing.T) {
	m := NewManager()
	x := newViewT(t, m, NewIntSet(1, 3))
	y := newViewT(t, m, NewIntSet(1, 3))

	_, err := PlanOrderPair(m, []*SetView{x}, []*SetView{y})
	require.NoError(t, err)

	d, err := IntersectCard(x, y, 1, 2)
	require.NoError(t, err)
	requireAccepts(t, m, d, 6, func(mask uint) bool {
		shared := bits.OnesCount(mask & (mask >> 3) & 0b111)
		return shared >= 1 && shared <= 2
	})
}

func TestCardDiagram_LiteralParameterization(t *testing.T) {
	m := NewManager()
	m.Allocate(4)
	cache := NewValCache(NewIntSet(0, 3).Values())

	lit := func(k int) Node { return m.Pos(k) }
	negLit := func(k int) Node { return m.Neg(k) }

	d := CardDiagram(m, cache, lit, negLit, 0, 0)
	requireAccepts(t, m, d, 4, func(mask uint) bool { return mask == 0 })

	cache.Init(NewIntSet(0, 3).Values())
	d = CardDiagram(m, cache, lit, negLit, 2, 3)
	requireAccepts(t, m, d, 4, func(mask uint) bool {
		pc := bits.OnesCount(mask)
		return pc >= 2 && pc <= 3
	})
}

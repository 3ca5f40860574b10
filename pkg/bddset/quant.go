// Package bddset: reformulations over an existing diagram - projection,
// convex hull, support extraction and cardinality-bounds extraction.
// These are thin layers over the manager primitives; they live here
// because they share the package's value-range vocabulary.
package bddset

import "github.com/cockroachdb/errors"

// Quantify removes a view's slot block from a diagram by existential
// projection: the result accepts an assignment of the remaining slots
// iff some choice for the view's slots is accepted by d.
func Quantify(d Node, x *SetView) (Node, error) {
	if x == nil {
		return False, errors.Errorf("Quantify: nil view")
	}
	return x.Manager().ExistQuant(d, x.Offset(), x.Offset()+x.TableWidth()-1), nil
}

// ConvexHull returns the tightest literal-cube diagram containing d:
// the conjunction of every slot d forces true and the negation of every
// slot d forces false. The hull of the false diagram is false.
func ConvexHull(m *Manager, d Node) Node {
	if d == False {
		return False
	}
	hull := True
	for _, slot := range m.Support(d) {
		if m.And(d, m.Neg(slot)) == False {
			hull = m.And(hull, m.Pos(slot))
		} else if m.And(d, m.Pos(slot)) == False {
			hull = m.And(hull, m.Neg(slot))
		}
	}
	return hull
}

// SupportVars returns the positive cube of every slot d tests anywhere,
// typically used as a quantification pattern.
func SupportVars(m *Manager, d Node) Node {
	cube := True
	for _, slot := range m.Support(d) {
		cube = m.And(cube, m.Pos(slot))
	}
	return cube
}

// cardSpan is a memoized (min, max) true-count over accepting paths.
type cardSpan struct {
	min, max int
}

// CardBounds returns the smallest and largest number of positively set
// support slots over the accepting assignments of d. Support slots a
// path skips are free: they contribute nothing to the minimum and their
// full count to the maximum. An unsatisfiable diagram yields an error.
func CardBounds(m *Manager, d Node) (int, int, error) {
	if d == False {
		return 0, 0, errors.Wrap(ErrFailedDomain, "CardBounds: unsatisfiable diagram")
	}
	support := m.Support(d)
	if len(support) == 0 {
		return 0, 0, nil
	}
	// Index of each support slot in order position.
	supPos := make(map[int]int, len(support))
	ordered := make([]int, len(support))
	copy(ordered, support)
	// Sort support by installed position so "remaining slots" is
	// well defined along any path.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && m.slotPos[ordered[j]] < m.slotPos[ordered[j-1]]; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	for i, s := range ordered {
		supPos[s] = i
	}

	memo := make(map[Node]cardSpan)
	span := m.cardSpan(d, 0, supPos, len(ordered), memo)
	return span.min, span.max, nil
}

// cardSpan computes the count span of f over the support slots at index
// >= from in the position-ordered support list.
func (m *Manager) cardSpan(f Node, from int, supPos map[int]int, total int, memo map[Node]cardSpan) cardSpan {
	if f == True {
		return cardSpan{min: 0, max: total - from}
	}
	if f == False {
		// Poison value; callers drop rejecting branches.
		return cardSpan{min: total + 1, max: -1}
	}
	k := supPos[int(m.nodes[f].slot)]
	free := k - from

	span, ok := memo[f]
	if !ok {
		lo := m.cardSpan(m.nodes[f].low, k+1, supPos, total, memo)
		hi := m.cardSpan(m.nodes[f].high, k+1, supPos, total, memo)
		span = cardSpan{
			min: lo.min,
			max: lo.max,
		}
		if hi.min+1 < span.min {
			span.min = hi.min + 1
		}
		if hi.max+1 > span.max {
			span.max = hi.max + 1
		}
		memo[f] = span
	}
	return cardSpan{min: span.min, max: span.max + free}
}

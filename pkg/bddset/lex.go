// Package bddset: lexicographic ordering diagrams.
//
// LexLt, LexLq and their reversed variants build the diagram comparing
// two equal-width, disjoint slot blocks as bit vectors:
//
//   - LexLt / LexLq treat the block's first slot as most significant.
//   - LexLtRev / LexLqRev treat the block's last slot as most
//     significant.
//
// Construction runs one bit position at a time from the least
// significant end: at each step the comparison so far is folded into
// "x bit below y bit, or bits equal and the lower positions decide".
// These diagrams are typically used for symmetry breaking between
// interchangeable set variables.
package bddset

import "github.com/cockroachdb/errors"

// LexLt builds the diagram for x < y, most significant slot first.
func LexLt(m *Manager, xoff, yoff, width int) (Node, error) {
	return lexDiagram(m, "LexLt", xoff, yoff, width, true, false)
}

// LexLq builds the diagram for x <= y, most significant slot first.
func LexLq(m *Manager, xoff, yoff, width int) (Node, error) {
	return lexDiagram(m, "LexLq", xoff, yoff, width, false, false)
}

// LexLtRev builds the diagram for x < y with slot significance reversed.
func LexLtRev(m *Manager, xoff, yoff, width int) (Node, error) {
	return lexDiagram(m, "LexLtRev", xoff, yoff, width, true, true)
}

// LexLqRev builds the diagram for x <= y with slot significance reversed.
func LexLqRev(m *Manager, xoff, yoff, width int) (Node, error) {
	return lexDiagram(m, "LexLqRev", xoff, yoff, width, false, true)
}

func lexDiagram(m *Manager, name string, xoff, yoff, width int, strict, rev bool) (Node, error) {
	if m == nil {
		return False, errors.Errorf("%s: nil manager", name)
	}
	if width <= 0 {
		return False, errors.Errorf("%s: width must be positive, got %d", name, width)
	}
	if xoff < 0 || yoff < 0 ||
		xoff+width > m.Allocated() || yoff+width > m.Allocated() {
		return False, errors.Errorf("%s: slot block [%d..%d) or [%d..%d) outside allocated range [0..%d)",
			name, xoff, xoff+width, yoff, yoff+width, m.Allocated())
	}

	// Fold from the least significant position upward. For strict
	// comparison the empty suffix decides "not less"; for non-strict it
	// decides "equal is fine".
	acc := True
	if strict {
		acc = False
	}
	for j := 0; j < width; j++ {
		i := width - 1 - j
		if rev {
			i = j
		}
		xi := m.Pos(xoff + i)
		yi := m.Pos(yoff + i)
		// acc := (not xi and yi) or (xi == yi and acc)
		acc = m.Ite(xi, m.Ite(yi, acc, False), m.Ite(yi, True, acc))
	}
	return acc, nil
}

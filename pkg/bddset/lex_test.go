package bddset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// vectorBits extracts a width-long bit vector starting at off from mask.
func vectorBits(mask uint, off, width int) []bool {
	out := make([]bool, width)
	for i := 0; i < width; i++ {
		out[i] = mask&(1<<uint(off+i)) != 0
	}
	return out
}

// lexCompare compares two bool vectors, most significant index first.
// Returns -1, 0 or 1.
func lexCompare(a, b []bool) int {
	for i := range a {
		if a[i] != b[i] {
			if b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func reversed(v []bool) []bool {
	out := make([]bool, len(v))
	for i, b := range v {
		out[len(v)-1-i] = b
	}
	return out
}

func TestLex_AllOrientations(t *testing.T) {
	const width = 3
	m := NewManager()
	xoff := m.Allocate(width)
	yoff := m.Allocate(width)

	lt, err := LexLt(m, xoff, yoff, width)
	require.NoError(t, err)
	lq, err := LexLq(m, xoff, yoff, width)
	require.NoError(t, err)
	ltRev, err := LexLtRev(m, xoff, yoff, width)
	require.NoError(t, err)
	lqRev, err := LexLqRev(m, xoff, yoff, width)
	require.NoError(t, err)

	for mask := uint(0); mask < 1<<(2*width); mask++ {
		x := vectorBits(mask, xoff, width)
		y := vectorBits(mask, yoff, width)
		cmp := lexCompare(x, y)
		cmpRev := lexCompare(reversed(x), reversed(y))

		require.Equal(t, cmp < 0, evalMask(m, lt, mask), "LexLt mask %06b", mask)
		require.Equal(t, cmp <= 0, evalMask(m, lq, mask), "LexLq mask %06b", mask)
		require.Equal(t, cmpRev < 0, evalMask(m, ltRev, mask), "LexLtRev mask %06b", mask)
		require.Equal(t, cmpRev <= 0, evalMask(m, lqRev, mask), "LexLqRev mask %06b", mask)
	}
}

func TestLex_WidthOne(t *testing.T) {
	m := NewManager()
	xoff := m.Allocate(1)
	yoff := m.Allocate(1)

	lt, err := LexLt(m, xoff, yoff, 1)
	require.NoError(t, err)
	// Only false < true.
	require.Equal(t, m.And(m.Neg(xoff), m.Pos(yoff)), lt)
}

func TestLex_Validation(t *testing.T) {
	m := NewManager()
	m.Allocate(4)

	_, err := LexLt(m, 0, 2, 0)
	require.Error(t, err)
	_, err = LexLt(m, 0, 2, 3)
	require.Error(t, err)
	_, err = LexLq(m, -1, 2, 2)
	require.Error(t, err)
	_, err = LexLq(nil, 0, 2, 2)
	require.Error(t, err)
}

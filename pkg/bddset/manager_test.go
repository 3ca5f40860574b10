package bddset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManager_IteTerminals(t *testing.T) {
	m := NewManager()
	m.Allocate(2)
	p := m.Pos(0)
	q := m.Pos(1)

	require.Equal(t, q, m.Ite(True, q, p))
	require.Equal(t, p, m.Ite(False, q, p))
	require.Equal(t, q, m.Ite(p, q, q))
	require.Equal(t, p, m.Ite(p, True, False))
}

func TestManager_HashConsing(t *testing.T) {
	m := NewManager()
	m.Allocate(2)

	require.Equal(t, m.Pos(0), m.Pos(0))
	require.Equal(t, m.And(m.Pos(0), m.Pos(1)), m.And(m.Pos(0), m.Pos(1)))
	require.NotEqual(t, m.Pos(0), m.Pos(1))
	require.NotEqual(t, m.Pos(0), m.Neg(0))
}

func TestManager_BooleanIdentities(t *testing.T) {
	m := NewManager()
	m.Allocate(2)
	p := m.Pos(0)
	q := m.Pos(1)

	require.Equal(t, False, m.And(p, m.Not(p)))
	require.Equal(t, True, m.Or(p, m.Not(p)))
	require.Equal(t, m.And(p, q), m.And(q, p))
	require.Equal(t, m.Not(m.Not(p)), p)
	// De Morgan.
	require.Equal(t, m.Not(m.And(p, q)), m.Or(m.Not(p), m.Not(q)))
}

func TestManager_Eval(t *testing.T) {
	m := NewManager()
	m.Allocate(3)
	d := m.And(m.Pos(0), m.Or(m.Pos(1), m.Neg(2)))

	eval := func(bits ...bool) bool {
		return m.Eval(d, func(slot int) bool { return bits[slot] })
	}
	require.True(t, eval(true, true, true))
	require.True(t, eval(true, false, false))
	require.False(t, eval(true, false, true))
	require.False(t, eval(false, true, false))
}

func TestManager_OrderDrivesRootChoice(t *testing.T) {
	m := NewManager()
	m.Allocate(2)

	d := m.And(m.Pos(0), m.Pos(1))
	require.Equal(t, int32(0), m.nodes[d].slot)

	// Reversing the order makes slot 1 the root of new combinations.
	require.NoError(t, m.SetOrder([]int{1, 0}))
	d = m.And(m.Pos(0), m.Pos(1))
	require.Equal(t, int32(1), m.nodes[d].slot)
}

func TestManager_SetOrderValidation(t *testing.T) {
	m := NewManager()
	m.Allocate(3)

	require.Error(t, m.SetOrder([]int{0, 1}))
	require.Error(t, m.SetOrder([]int{0, 1, 1}))
	require.Error(t, m.SetOrder([]int{0, 1, 3}))
	require.NoError(t, m.SetOrder([]int{2, 0, 1}))
	require.Equal(t, []int{2, 0, 1}, m.Order())
}

func TestManager_ExistQuant(t *testing.T) {
	m := NewManager()
	m.Allocate(3)
	d := m.And(m.Pos(0), m.And(m.Pos(1), m.Pos(2)))

	require.Equal(t, m.And(m.Pos(0), m.Pos(2)), m.ExistQuant(d, 1, 1))
	require.Equal(t, m.Pos(0), m.ExistQuant(d, 1, 2))
	require.Equal(t, True, m.ExistQuant(d, 0, 2))
	require.Equal(t, False, m.ExistQuant(False, 0, 2))
}

func TestManager_Support(t *testing.T) {
	m := NewManager()
	m.Allocate(4)
	d := m.Or(m.Pos(3), m.And(m.Pos(0), m.Neg(2)))

	require.Equal(t, []int{0, 2, 3}, m.Support(d))
	require.Empty(t, m.Support(True))
	require.Empty(t, m.Support(False))
}

func TestManager_Stats(t *testing.T) {
	m := NewManager()
	m.Allocate(2)
	m.And(m.Pos(0), m.Pos(1))

	stats := m.Stats()
	require.Equal(t, 2, stats.SlotCount)
	require.Greater(t, stats.NodeCount, 2)
	require.Greater(t, stats.CacheMisses, 0)
}

// Package bddset provides a manager for reduced ordered binary decision
// diagrams (ROBDDs) specialized for set-valued constraint compilation.
//
// The manager owns a hash-consed node table. Node handles are small
// immutable values; combining handles with Ite never mutates existing
// nodes, so handles may be shared freely between diagram constructions.
// Nodes are never freed individually - the table lives as long as the
// manager, which is scoped to one solver instance.
//
// Diagram variables are "slots". A view over a set variable occupies a
// contiguous block of slots, one per potential element (see SetView).
// The manager carries an installable global variable order mapping
// diagram positions to slots; Ite recursion splits on the slot with the
// smallest installed position. Callers must not change the order while
// a diagram construction using the previous order is in flight.
//
// Thread safety: a Manager is confined to a single goroutine. Handles
// obtained from it are plain values and safe to pass around.
package bddset

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// Node is a handle to a diagram node owned by a Manager.
// The zero value is the constant False diagram.
type Node int32

// Terminal handles, valid for every manager.
const (
	// False is the unconditionally rejecting diagram.
	False Node = 0
	// True is the unconditionally accepting diagram.
	True Node = 1
)

// bddNode is one interned node: test the slot, branch to low on a false
// literal and high on a true literal.
type bddNode struct {
	slot int32
	low  Node
	high Node
}

type iteKey struct {
	f, g, h Node
}

// ManagerStats is a snapshot of manager counters, in the spirit of a
// solver monitor: useful for sizing diagrams and judging cache behavior.
type ManagerStats struct {
	NodeCount   int // interned nodes, terminals included
	SlotCount   int // allocated diagram variable slots
	CacheHits   int // Ite memo hits
	CacheMisses int // Ite memo misses
}

// Manager is the diagram node table plus the installed variable order.
type Manager struct {
	nodes  []bddNode
	unique map[bddNode]Node
	ite    map[iteKey]Node

	// slotPos maps slot index to its position in the installed order.
	// Identity until SetOrder is called.
	slotPos   []int
	allocated int

	cacheHits   int
	cacheMisses int
}

// NewManager creates an empty manager with no allocated slots.
func NewManager() *Manager {
	m := &Manager{
		unique: make(map[bddNode]Node),
		ite:    make(map[iteKey]Node),
	}
	// Reserve handles 0 and 1 for the terminals.
	m.nodes = append(m.nodes,
		bddNode{slot: -1},
		bddNode{slot: -1},
	)
	return m
}

// Allocate reserves width consecutive slots and returns the offset of
// the first one. New slots enter the order at identity positions.
func (m *Manager) Allocate(width int) int {
	if width < 0 {
		panic("Allocate: negative width")
	}
	offset := m.allocated
	for i := 0; i < width; i++ {
		m.slotPos = append(m.slotPos, m.allocated)
		m.allocated++
	}
	return offset
}

// Allocated returns the total number of slots allocated so far.
func (m *Manager) Allocated() int {
	return m.allocated
}

// SetOrder installs a variable order. order[p] names the slot placed at
// position p and must be a permutation of all allocated slots.
//
// The order takes effect for subsequent diagram combination; it must not
// change while a construction that depends on the previous order is
// still running.
func (m *Manager) SetOrder(order []int) error {
	if len(order) != m.allocated {
		return errors.Errorf("SetOrder: order length %d, allocated slots %d",
			len(order), m.allocated)
	}
	pos := make([]int, m.allocated)
	seen := make([]bool, m.allocated)
	for p, slot := range order {
		if slot < 0 || slot >= m.allocated {
			return errors.Errorf("SetOrder: slot %d at position %d out of range [0..%d)",
				slot, p, m.allocated)
		}
		if seen[slot] {
			return errors.Errorf("SetOrder: slot %d placed twice", slot)
		}
		seen[slot] = true
		pos[slot] = p
	}
	m.slotPos = pos
	// Levels changed; memoized results keyed on the old order are stale.
	m.ite = make(map[iteKey]Node)
	return nil
}

// Order returns the installed order as a position-to-slot array.
func (m *Manager) Order() []int {
	order := make([]int, m.allocated)
	for slot, p := range m.slotPos {
		order[p] = slot
	}
	return order
}

// level is the position of a node's slot under the installed order.
// Terminals sit below everything.
func (m *Manager) level(f Node) int {
	s := m.nodes[f].slot
	if s < 0 {
		return math.MaxInt
	}
	return m.slotPos[s]
}

// mk interns a node, applying the ROBDD reduction rules.
func (m *Manager) mk(slot int32, low, high Node) Node {
	if low == high {
		return low
	}
	key := bddNode{slot: slot, low: low, high: high}
	if n, ok := m.unique[key]; ok {
		return n
	}
	n := Node(len(m.nodes))
	m.nodes = append(m.nodes, key)
	m.unique[key] = n
	return n
}

// Pos returns the literal diagram "slot is set".
func (m *Manager) Pos(slot int) Node {
	if slot < 0 || slot >= m.allocated {
		panic("Pos: slot out of allocated range")
	}
	return m.mk(int32(slot), False, True)
}

// Neg returns the literal diagram "slot is not set".
func (m *Manager) Neg(slot int) Node {
	if slot < 0 || slot >= m.allocated {
		panic("Neg: slot out of allocated range")
	}
	return m.mk(int32(slot), True, False)
}

// cofactor splits f with respect to the slot at position top.
func (m *Manager) cofactor(f Node, top int) (lo, hi Node) {
	if m.level(f) == top {
		n := m.nodes[f]
		return n.low, n.high
	}
	return f, f
}

// Ite combines three diagrams as "if f then g else h". This is the only
// combination primitive; And, Or and Not are shorthands over it.
func (m *Manager) Ite(f, g, h Node) Node {
	// Terminal cases.
	switch {
	case f == True:
		return g
	case f == False:
		return h
	case g == h:
		return g
	case g == True && h == False:
		return f
	}

	key := iteKey{f, g, h}
	if n, ok := m.ite[key]; ok {
		m.cacheHits++
		return n
	}
	m.cacheMisses++

	top := m.level(f)
	if l := m.level(g); l < top {
		top = l
	}
	if l := m.level(h); l < top {
		top = l
	}
	// One of the three has level top, hence a real slot.
	var slot int32
	for _, n := range []Node{f, g, h} {
		if m.level(n) == top {
			slot = m.nodes[n].slot
			break
		}
	}

	f0, f1 := m.cofactor(f, top)
	g0, g1 := m.cofactor(g, top)
	h0, h1 := m.cofactor(h, top)

	hi := m.Ite(f1, g1, h1)
	lo := m.Ite(f0, g0, h0)

	n := m.mk(slot, lo, hi)
	m.ite[key] = n
	return n
}

// And returns the conjunction of two diagrams.
func (m *Manager) And(f, g Node) Node {
	return m.Ite(f, g, False)
}

// Or returns the disjunction of two diagrams.
func (m *Manager) Or(f, g Node) Node {
	return m.Ite(f, True, g)
}

// Not returns the negation of a diagram.
func (m *Manager) Not(f Node) Node {
	return m.Ite(f, False, True)
}

// ExistQuant existentially quantifies every slot in [first, last] out of
// f: the result accepts an assignment iff some completion of the
// projected slots is accepted by f.
func (m *Manager) ExistQuant(f Node, first, last int) Node {
	memo := make(map[Node]Node)
	return m.existQuant(f, first, last, memo)
}

func (m *Manager) existQuant(f Node, first, last int, memo map[Node]Node) Node {
	if f == True || f == False {
		return f
	}
	if r, ok := memo[f]; ok {
		return r
	}
	n := m.nodes[f]
	lo := m.existQuant(n.low, first, last, memo)
	hi := m.existQuant(n.high, first, last, memo)
	var r Node
	if int(n.slot) >= first && int(n.slot) <= last {
		r = m.Or(lo, hi)
	} else {
		r = m.mk(n.slot, lo, hi)
	}
	memo[f] = r
	return r
}

// Eval decides whether f accepts the assignment given by assign, which
// must report the truth value of every slot f may test.
func (m *Manager) Eval(f Node, assign func(slot int) bool) bool {
	for f != True && f != False {
		n := m.nodes[f]
		if assign(int(n.slot)) {
			f = n.high
		} else {
			f = n.low
		}
	}
	return f == True
}

// Support returns the slots tested anywhere in f, in ascending slot order.
func (m *Manager) Support(f Node) []int {
	seen := make(map[Node]bool)
	slots := make(map[int]bool)
	var walk func(Node)
	walk = func(n Node) {
		if n == True || n == False || seen[n] {
			return
		}
		seen[n] = true
		nd := m.nodes[n]
		slots[int(nd.slot)] = true
		walk(nd.low)
		walk(nd.high)
	}
	walk(f)
	out := make([]int, 0, len(slots))
	for s := range slots {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// Stats returns a snapshot of the manager counters.
func (m *Manager) Stats() ManagerStats {
	return ManagerStats{
		NodeCount:   len(m.nodes),
		SlotCount:   m.allocated,
		CacheHits:   m.cacheHits,
		CacheMisses: m.cacheMisses,
	}
}

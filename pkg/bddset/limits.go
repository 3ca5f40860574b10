// Package bddset: global limits on representable set elements and
// cardinalities. Bound specifications are validated against these once,
// at construction time; the diagram builders then rely on them.
package bddset

const (
	// ValueMax is the largest representable set element.
	ValueMax = 1<<30 - 1
	// ValueMin is the smallest representable set element.
	ValueMin = -ValueMax
	// CardMax is the largest representable set cardinality.
	CardMax = ValueMax
)

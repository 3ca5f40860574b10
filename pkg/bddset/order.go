// Package bddset: deterministic variable ordering for diagram slots.
//
// Diagram size depends critically on the variable order. PlanOrder and
// PlanOrderPair implement the breadth-first interleave heuristic of
// Hawkins, Lagoon and Stuckey: walk the common column range across all
// views in collection order, so that slots standing for the same value
// in interacting variables stay adjacent. Slots below the smallest
// offset keep identity positions; slots no view covers are appended in
// ascending order.
//
// The computed order is installed into the manager and returned. It must
// be installed before any diagram construction that depends on slot
// positions and must not change while such a construction is running.
package bddset

import "github.com/cockroachdb/errors"

// PlanOrder computes and installs the interleave order for one
// collection of views. All views must share the planner's manager.
func PlanOrder(m *Manager, views []*SetView) ([]int, error) {
	if m == nil {
		return nil, errors.Errorf("PlanOrder: nil manager")
	}
	if err := checkViews(m, "PlanOrder", views); err != nil {
		return nil, err
	}

	total := m.Allocated()
	order := make([]int, total)
	placed := make([]bool, total)
	c := identityHead(order, placed, minOffset(views))

	for f := 0; f < maxWidth(views); f++ {
		for _, x := range views {
			if f < x.TableWidth() {
				order[c] = x.Offset() + f
				placed[x.Offset()+f] = true
				c++
			}
		}
	}

	identityTail(order, placed, c)
	if err := m.SetOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// PlanOrderPair computes and installs the interleave order for two view
// collections whose domains may be range-shifted against each other. A
// view of ys contributes its column only when the reference column value
// of xs[0] falls inside that view's own original bounds; the contributed
// slot is shifted by the difference of the original lower bounds.
//
// Precondition: views within each collection share identical original
// bounds. Violations fail fast instead of silently mis-ordering.
func PlanOrderPair(m *Manager, xs, ys []*SetView) ([]int, error) {
	if m == nil {
		return nil, errors.Errorf("PlanOrderPair: nil manager")
	}
	if err := checkViews(m, "PlanOrderPair", xs); err != nil {
		return nil, err
	}
	if err := checkViews(m, "PlanOrderPair", ys); err != nil {
		return nil, err
	}
	if err := checkSiblingBounds("PlanOrderPair", xs); err != nil {
		return nil, err
	}
	if err := checkSiblingBounds("PlanOrderPair", ys); err != nil {
		return nil, err
	}

	total := m.Allocated()
	order := make([]int, total)
	placed := make([]bool, total)
	c := identityHead(order, placed, minOffset(xs))

	refMin := xs[0].InitialLubMin()
	for f := 0; f < maxWidth(xs); f++ {
		for _, x := range xs {
			if f < x.TableWidth() {
				order[c] = x.Offset() + f
				placed[x.Offset()+f] = true
				c++
			}
		}
		for _, y := range ys {
			if refMin+f < y.InitialLubMin() || refMin+f > y.InitialLubMax() {
				continue
			}
			shift := y.InitialLubMin() - refMin
			cur := y.Offset() + f - shift
			if cur < y.Offset()+y.TableWidth() {
				order[c] = cur
				placed[cur] = true
				c++
			}
		}
	}

	identityTail(order, placed, c)
	if err := m.SetOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

func checkViews(m *Manager, name string, views []*SetView) error {
	if len(views) == 0 {
		return errors.Errorf("%s: empty view collection", name)
	}
	for i, x := range views {
		if x == nil {
			return errors.Errorf("%s: nil view at index %d", name, i)
		}
		if x.Manager() != m {
			return errors.Errorf("%s: view at index %d belongs to another manager", name, i)
		}
	}
	return nil
}

// checkSiblingBounds enforces the shared-bounds precondition of the
// two-scope heuristic.
func checkSiblingBounds(name string, views []*SetView) error {
	for i, x := range views[1:] {
		if x.InitialLubMin() != views[0].InitialLubMin() ||
			x.InitialLubMax() != views[0].InitialLubMax() {
			return errors.Wrapf(ErrFailedDomain,
				"%s: view %d bounds [%d..%d] differ from sibling bounds [%d..%d]",
				name, i+1, x.InitialLubMin(), x.InitialLubMax(),
				views[0].InitialLubMin(), views[0].InitialLubMax())
		}
	}
	return nil
}

func minOffset(views []*SetView) int {
	min := views[0].Offset()
	for _, x := range views {
		if x.Offset() < min {
			min = x.Offset()
		}
	}
	return min
}

func maxWidth(views []*SetView) int {
	max := views[0].TableWidth()
	for _, x := range views {
		if x.TableWidth() > max {
			max = x.TableWidth()
		}
	}
	return max
}

// identityHead fills positions below the smallest offset with identity
// slots and returns the next free position.
func identityHead(order []int, placed []bool, minOff int) int {
	for i := 0; i < minOff; i++ {
		order[i] = i
		placed[i] = true
	}
	return minOff
}

// identityTail appends every slot no view covered, in ascending order.
func identityTail(order []int, placed []bool, c int) {
	for slot := 0; slot < len(placed); slot++ {
		if !placed[slot] {
			order[c] = slot
			c++
		}
	}
}

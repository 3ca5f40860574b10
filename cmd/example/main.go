// Package main walks through the bddset building blocks.
//
// Each section builds a small decision diagram over one or two set
// views, prints the accepted sets, and shows how the pieces combine:
// element literals, cardinality windows, shared-element bounds with an
// interleaved variable order, bound extraction and symmetry breaking.
package main

import (
	"fmt"

	"github.com/gitrdm/bddset/pkg/bddset"
)

func main() {
	fmt.Println("=== bddset Examples ===")
	fmt.Println()

	elementLiterals()
	cardinalityWindows()
	sharedElements()
	boundExtraction()
	symmetryBreaking()
	managerStats()
}

// acceptedSets enumerates the subsets of the view's table that a
// diagram accepts, rendered against the view's initial bound.
func acceptedSets(x *bddset.SetView, d bddset.Node) []string {
	m := x.Manager()
	w := x.TableWidth()
	var out []string
	for mask := 0; mask < 1<<w; mask++ {
		ok := m.Eval(d, func(slot int) bool {
			i := slot - x.Offset()
			return i >= 0 && i < w && mask&(1<<i) != 0
		})
		if !ok {
			continue
		}
		s := "{"
		first := true
		for i := 0; i < w; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			if !first {
				s += ","
			}
			s += fmt.Sprint(x.InitialLubMin() + i)
			first = false
		}
		out = append(out, s+"}")
	}
	return out
}

// elementLiterals demonstrates views and their element literals.
func elementLiterals() {
	fmt.Println("1. Set Views and Element Literals:")

	m := bddset.NewManager()
	x, err := bddset.NewSetView(m, bddset.NewIntSet(1, 3))
	if err != nil {
		panic(err)
	}

	// "1 in x" and "3 not in x", conjoined.
	d := m.And(x.Element(0), x.ElementNeg(2))
	fmt.Printf("   x over {1..3}, require 1 in x and 3 not in x:\n")
	fmt.Printf("   accepted: %v\n", acceptedSets(x, d))
	fmt.Println()
}

// cardinalityWindows demonstrates the Card builder.
func cardinalityWindows() {
	fmt.Println("2. Cardinality Windows:")

	m := bddset.NewManager()
	x, err := bddset.NewSetView(m, bddset.NewIntSet(1, 4))
	if err != nil {
		panic(err)
	}

	for _, w := range []struct{ cl, cr int }{{0, 0}, {2, 2}, {1, 3}} {
		d, err := bddset.Card(x, w.cl, w.cr)
		if err != nil {
			panic(err)
		}
		sets := acceptedSets(x, d)
		fmt.Printf("   |x| in [%d,%d]: %d sets", w.cl, w.cr, len(sets))
		if len(sets) <= 6 {
			fmt.Printf(" %v", sets)
		}
		fmt.Println()
	}
	fmt.Println()
}

// sharedElements demonstrates IntersectCard under an interleaved order.
func sharedElements() {
	fmt.Println("3. Shared Elements Between Two Views:")

	m := bddset.NewManager()
	x, err := bddset.NewSetView(m, bddset.NewIntSet(1, 3))
	if err != nil {
		panic(err)
	}
	y, err := bddset.NewSetView(m, bddset.NewIntSet(1, 3))
	if err != nil {
		panic(err)
	}

	// Interleave the two slot blocks before building, so the counting
	// diagram tests x's and y's literals for a value back to back.
	order, err := bddset.PlanOrderPair(m, []*bddset.SetView{x}, []*bddset.SetView{y})
	if err != nil {
		panic(err)
	}
	fmt.Printf("   installed slot order: %v\n", order)

	// Exactly one common element.
	d, err := bddset.IntersectCard(x, y, 1, 1)
	if err != nil {
		panic(err)
	}

	count := 0
	for mask := 0; mask < 1<<6; mask++ {
		ok := m.Eval(d, func(slot int) bool { return mask&(1<<slot) != 0 })
		if ok {
			count++
		}
	}
	fmt.Printf("   |x ∩ y| = 1 over {1..3}: %d accepted pairs\n", count)
	fmt.Println()
}

// boundExtraction demonstrates CardBounds and ConvexHull.
func boundExtraction() {
	fmt.Println("4. Extracting Bounds From a Diagram:")

	m := bddset.NewManager()
	x, err := bddset.NewSetView(m, bddset.NewIntSet(1, 4))
	if err != nil {
		panic(err)
	}

	d, err := bddset.Card(x, 1, 3)
	if err != nil {
		panic(err)
	}
	// Pin value 2 into the set.
	d = m.And(d, x.Element(1))

	cmin, cmax, err := bddset.CardBounds(m, d)
	if err != nil {
		panic(err)
	}
	fmt.Printf("   |x| in [1,3] with 2 in x: cardinality bounds [%d,%d]\n", cmin, cmax)

	hull := bddset.ConvexHull(m, d)
	fmt.Printf("   forced literals (convex hull): %v\n", acceptedSets(x, hull))
	fmt.Println()
}

// symmetryBreaking demonstrates the lexicographic order builders.
func symmetryBreaking() {
	fmt.Println("5. Symmetry Breaking With Lex Orders:")

	m := bddset.NewManager()
	x, err := bddset.NewSetView(m, bddset.NewIntSet(1, 3))
	if err != nil {
		panic(err)
	}
	y, err := bddset.NewSetView(m, bddset.NewIntSet(1, 3))
	if err != nil {
		panic(err)
	}

	// Same one-common-element constraint as before, but with x <= y
	// lexicographically the mirror-image pairs drop out.
	d, err := bddset.IntersectCard(x, y, 1, 1)
	if err != nil {
		panic(err)
	}
	lq, err := bddset.LexLq(m, x.Offset(), y.Offset(), x.TableWidth())
	if err != nil {
		panic(err)
	}
	d = m.And(d, lq)

	count := 0
	for mask := 0; mask < 1<<6; mask++ {
		if m.Eval(d, func(slot int) bool { return mask&(1<<slot) != 0 }) {
			count++
		}
	}
	fmt.Printf("   |x ∩ y| = 1 and x <=lex y: %d accepted pairs\n", count)
	fmt.Println()
}

// managerStats demonstrates the manager's instrumentation.
func managerStats() {
	fmt.Println("6. Manager Statistics:")

	m := bddset.NewManager()
	x, err := bddset.NewSetView(m, bddset.NewIntSet(1, 8))
	if err != nil {
		panic(err)
	}
	if _, err := bddset.Card(x, 2, 5); err != nil {
		panic(err)
	}

	st := m.Stats()
	fmt.Printf("   slots: %d\n", st.SlotCount)
	fmt.Printf("   unique nodes: %d\n", st.NodeCount)
	fmt.Printf("   ite cache hits/misses: %d/%d\n", st.CacheHits, st.CacheMisses)
	fmt.Println()
}

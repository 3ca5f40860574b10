// Package bddset: the cardinality diagram builders.
//
// CardDiagram compiles "the number of true literals among a value
// sequence lies in [cl, cr]" into a diagram. The construction is a
// bounded counting automaton in layered form: an array of n = cr+1
// handles where layer i stands for "partial count so far, saturated at
// cr, equals i". Values are consumed from the highest cache position
// downward in anti-diagonal passes, so that every layer tests each
// diagram variable exactly once and in order, which maximizes structural
// sharing.
//
// The builder is parameterized over the literal shape. The two-variable
// wrapper IntersectCard uses "x contains k and y contains k" over the
// cached intersection of the two upper bounds; ConstSetCard and Card use
// "x contains k" over a constant value set and over the view's whole
// table respectively.
//
// Every pass that borrows the shared cache for an inner traversal saves
// the outer cursor with Position and restores it with Seek; see the
// ValCache contract.
package bddset

import "github.com/cockroachdb/errors"

// Literal maps a domain value to its literal diagram for one builder
// invocation.
type Literal func(value int) Node

// CardDiagram builds the diagram accepting exactly the assignments where
// the count of true literals over the cached values lies in [cl, cr].
// negLit must be the literal's negated form; it is only consulted on the
// cr == 0 fast path.
//
// The window is clipped and checked against the cache size isize:
// cr > isize clips to isize; cl > isize or cl > cr yields the
// unconditionally false diagram, a valid result rather than an error.
// cl and cr must be non-negative.
func CardDiagram(m *Manager, cache *ValCache, lit, negLit Literal, cl, cr int) Node {
	if cl < 0 || cr < 0 {
		panic("CardDiagram: negative cardinality bound")
	}
	isize := cache.Size()
	if cr > isize {
		cr = isize
	}
	if cl > isize || cl > cr {
		// Inconsistent window.
		return False
	}
	r := isize - 1
	n := cr + 1

	if cr == 0 {
		// Count zero: every literal false.
		empty := True
		for cache.Reset(); cache.Valid(); cache.Next() {
			empty = m.And(empty, negLit(cache.Min()))
		}
		return empty
	}

	if cl == cr {
		if cr == isize {
			// Count saturates the sequence: every literal true.
			full := True
			for cache.Reset(); cache.Valid(); cache.Next() {
				full = m.And(full, lit(cache.Min()))
			}
			return full
		}
		return cardEq(m, cache, lit, cr, n, r)
	}

	// cl < cr
	if cr == isize && cl == 0 {
		// No restriction at all.
		return True
	}
	return cardWindow(m, cache, lit, cl, cr, n, r)
}

// cardEq builds the exact-count diagram for count == c, with
// 0 < c < cache.Size(). A simplified form of cardWindow: the whole
// window is seeded - there is no free region above it - and the
// connection pass bridges every layer.
func cardEq(m *Manager, cache *ValCache, lit Literal, c, n, r int) Node {
	layer := make([]Node, n)

	// Seed the whole window: layer 0 accepts unconditionally, each layer
	// above requires one more true literal, consuming values from the
	// top position downward. Overflow past c rejects.
	layer[0] = True
	cache.Last()
	for i := 1; i < n; i++ {
		layer[i] = m.Ite(lit(cache.Min()), layer[i-1], False)
		cache.Prev()
	}

	// Build the seeded layers up across the remaining positions, one
	// anti-diagonal at a time.
	cache.Last()
	cache.Prev()
	for ; cache.Valid(); cache.Prev() {
		pos := cache.Position()
		for i := 1; i < n; i++ {
			layer[i] = m.Ite(lit(cache.Min()), layer[i-1], layer[i])
			cache.Prev()
			if cache.Position()+1 < r+1-c {
				cache.Finish()
				break
			}
		}
		if !cache.Valid() {
			break
		}
		cache.Seek(pos)
	}

	if c == r {
		// A single remaining pass fuses the connection with the
		// roll-forward step.
		cache.Last()
		var t, f Node
		for i := 0; i < n; i++ {
			col := cache.Min()
			if i == 0 {
				t = False
				f = True
			} else {
				t = layer[i-1]
				f = layer[i]
			}
			layer[i] = m.Ite(lit(col), t, f)
			cache.Prev()
			if !cache.Valid() {
				break
			}
		}
		return layer[n-1]
	}

	// Connection layer: every layer above 0 bridges to its seeded value.
	cache.Last()
	{
		t, f := True, True
		for i := 0; i < n; i++ {
			col := cache.Min()
			if i == 0 {
				t = False
			} else {
				t = layer[i-1]
				f = layer[i]
			}
			layer[i] = m.Ite(lit(col), t, f)
			cache.Prev()
			if !cache.Valid() {
				break
			}
		}
	}

	// Remaining layers below the window.
	cache.Last()
	cache.Prev()
	for ; cache.Valid(); cache.Prev() {
		pos := cache.Position()
		for i := 0; i < n; i++ {
			col := cache.Min()
			var t Node
			if i == 0 {
				t = False
			} else {
				t = layer[i-1]
			}
			layer[i] = m.Ite(lit(col), t, layer[i])
			cache.Prev()
			if !cache.Valid() {
				break
			}
		}
		if !cache.Valid() {
			break
		}
		cache.Seek(pos)
	}

	return layer[n-1]
}

// cardWindow builds the general window diagram for cl <= count <= cr,
// with cl < cr and the window strictly inside the sequence unless
// cr == cache.Size(). n is cr+1, r is cache.Size()-1.
func cardWindow(m *Manager, cache *ValCache, lit Literal, cl, cr, n, r int) Node {
	layer := make([]Node, n)

	// Seed the bottom window: layer n-cl-1 accepts unconditionally, each
	// layer below it requires one more true literal, consuming values
	// from the top position downward. Overflow past cr rejects.
	layer[n-cl-1] = True
	cache.Last()
	for i := n - cl; i < n; i++ {
		layer[i] = m.Ite(lit(cache.Min()), layer[i-1], False)
		cache.Prev()
	}

	// Build the seeded layers up across the remaining positions, one
	// anti-diagonal at a time, until the connection layer is reached.
	cache.Last()
	cache.Prev()
	for ; cache.Valid(); cache.Prev() {
		pos := cache.Position()
		for i := n - cl; i < n; i++ {
			layer[i] = m.Ite(lit(cache.Min()), layer[i-1], layer[i])
			cache.Prev()
			if cache.Position()+1 < r+1-cr {
				// Positions below this anti-diagonal belong to the free
				// region; the seeded window is complete.
				cache.Finish()
				break
			}
		}
		if !cache.Valid() {
			break
		}
		cache.Seek(pos)
	}

	if cr == r+1 {
		// Maximum cardinality equals the sequence size: no upper
		// restriction is reachable, the seeded top layer is the result.
		return layer[n-1]
	}

	if cr == r {
		// A single free layer: one specialized pass fuses the connection
		// with the roll-forward step.
		cache.Last()
		t, f := True, True
		for i := 0; i < n; i++ {
			col := cache.Min()
			if i == 0 {
				t = False
				f = True
			} else {
				t = layer[i-1]
				if i > n-cl-1 {
					// Connect the seeded window.
					f = layer[i]
				}
			}
			layer[i] = m.Ite(lit(col), t, f)
			cache.Prev()
			if !cache.Valid() {
				break
			}
		}
		return layer[n-1]
	}

	// Connection layer between the free region and the seeded window.
	// With cl == 0 there is no floor to enforce, so the lower connection
	// is skipped.
	cache.Last()
	{
		t, f := True, True
		for i := 0; i < n; i++ {
			col := cache.Min()
			if i == 0 {
				t = False
			} else {
				t = layer[i-1]
				if i > n-cl-1 && cl > 0 {
					f = layer[i]
				}
			}
			layer[i] = m.Ite(lit(col), t, f)
			cache.Prev()
			if !cache.Valid() {
				break
			}
		}
	}

	// Remaining free layers: a true literal increments the count, a
	// false one keeps it; only falling below the window floor rejects.
	cache.Last()
	cache.Prev()
	for ; cache.Valid(); cache.Prev() {
		pos := cache.Position()
		for i := 0; i < n; i++ {
			col := cache.Min()
			var t Node
			if i == 0 {
				t = False
			} else {
				t = layer[i-1]
			}
			layer[i] = m.Ite(lit(col), t, layer[i])
			cache.Prev()
			if !cache.Valid() {
				break
			}
		}
		if !cache.Valid() {
			break
		}
		cache.Seek(pos)
	}

	return layer[n-1]
}

// IntersectCard builds the diagram for cl <= |x ∩ y| <= cr over the
// cached intersection of the two views' initial upper bounds. The
// literal at value k is "x contains k and y contains k"; on the cr == 0
// fast path the reference behavior is kept: neither set may contain k.
func IntersectCard(x, y *SetView, cl, cr int) (Node, error) {
	if x == nil || y == nil {
		return False, errors.Errorf("IntersectCard: nil view")
	}
	if x.Manager() != y.Manager() {
		return False, errors.Errorf("IntersectCard: views belong to different managers")
	}
	if cl < 0 || cr < 0 {
		return False, errors.Wrapf(ErrFailedDomain,
			"IntersectCard: negative cardinality window [%d..%d]", cl, cr)
	}
	m := x.Manager()

	common := NewIntersect(x.LubRanges(), y.LubRanges())
	cache := NewValCache(NewRangeValues(common))

	xmin, ymin := x.InitialLubMin(), y.InitialLubMin()
	lit := func(k int) Node {
		return m.And(x.Element(k-xmin), y.Element(k-ymin))
	}
	negLit := func(k int) Node {
		return m.And(x.ElementNeg(k-xmin), y.ElementNeg(k-ymin))
	}
	return CardDiagram(m, cache, lit, negLit, cl, cr), nil
}

// ConstSetCard builds the diagram for cl <= |x ∩ is| <= cr, where is is
// a constant value set. is must be contained in the view's table.
func ConstSetCard(x *SetView, is IntSet, cl, cr int) (Node, error) {
	if x == nil {
		return False, errors.Errorf("ConstSetCard: nil view")
	}
	if cl < 0 || cr < 0 {
		return False, errors.Wrapf(ErrFailedDomain,
			"ConstSetCard: negative cardinality window [%d..%d]", cl, cr)
	}
	if is.Size() > 0 && (is.Min() < x.InitialLubMin() || is.Max() > x.InitialLubMax()) {
		return False, errors.Wrapf(ErrOutOfRangeDomain,
			"ConstSetCard: constant set %s outside table bounds [%d..%d]",
			is, x.InitialLubMin(), x.InitialLubMax())
	}
	m := x.Manager()
	cache := NewValCache(is.Values())

	xmin := x.InitialLubMin()
	lit := func(k int) Node { return x.Element(k - xmin) }
	negLit := func(k int) Node { return x.ElementNeg(k - xmin) }
	return CardDiagram(m, cache, lit, negLit, cl, cr), nil
}

// Card builds the diagram for cl <= |x| <= cr over the view's whole
// initial upper bound.
func Card(x *SetView, cl, cr int) (Node, error) {
	if x == nil {
		return False, errors.Errorf("Card: nil view")
	}
	return ConstSetCard(x, x.Lub(), cl, cr)
}

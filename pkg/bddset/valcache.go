// Package bddset: ValCache materializes a forward-only value iterator
// into a replayable, bidirectional, position-addressable sequence.
//
// The diagram builders traverse one shared cache several times, forwards
// and backwards, with nested loops that reposition the cursor. The
// cursor is a single integer owned by the cache; any algorithm that
// borrows the cache for an inner traversal must bracket it with
// Position and Seek:
//
//	pos := cache.Position()
//	// ... inner traversal repositioning the cursor ...
//	cache.Seek(pos)
//
// Skipping the bracket desynchronizes every later position of the outer
// loop. This save/restore discipline is mandatory, not advisory.
//
// Each cached entry is logically a singleton range: Min, Max and Value
// all return the value at the cursor and Width is always 1. Reading at
// an invalid cursor is a precondition violation; callers check Valid
// first.
package bddset

// ValCache is a cached, cursor-addressed value sequence.
// After Init no further allocation occurs; only the cursor moves.
type ValCache struct {
	r []int
	c int
}

// NewValCache creates a cache holding every value of src.
func NewValCache(src ValueIterator) *ValCache {
	v := &ValCache{}
	v.Init(src)
	return v
}

// Init drains src into the cache, replacing any previous content, and
// leaves the cursor at the first value.
func (v *ValCache) Init(src ValueIterator) {
	v.r = v.r[:0]
	for ; src.Valid(); src.Next() {
		v.r = append(v.r, src.Value())
	}
	v.c = 0
}

// Valid reports whether the cursor is on a value.
func (v *ValCache) Valid() bool {
	return -1 < v.c && v.c < len(v.r)
}

// Next moves the cursor forward by one. No clamping: moving past the end
// leaves an invalid cursor, detected by the next Valid check.
func (v *ValCache) Next() {
	v.c++
}

// Prev moves the cursor backward by one, symmetric to Next.
func (v *ValCache) Prev() {
	v.c--
}

// Reset places the cursor on the first value.
func (v *ValCache) Reset() {
	v.c = 0
}

// Last places the cursor on the final value, for backward traversal.
func (v *ValCache) Last() {
	v.c = len(v.r) - 1
}

// Finish invalidates the cursor, ending the current traversal.
func (v *ValCache) Finish() {
	v.c = -1
}

// Value returns the value at the cursor.
func (v *ValCache) Value() int {
	return v.r[v.c]
}

// Min returns the value at the cursor (singleton range).
func (v *ValCache) Min() int {
	return v.r[v.c]
}

// Max returns the value at the cursor (singleton range).
func (v *ValCache) Max() int {
	return v.r[v.c]
}

// Width returns the width of the current entry, always 1.
func (v *ValCache) Width() int {
	return 1
}

// Size returns the number of cached values.
func (v *ValCache) Size() int {
	return len(v.r)
}

// Position returns the raw cursor, for save-and-resume across nested
// traversals.
func (v *ValCache) Position() int {
	return v.c
}

// Seek sets the raw cursor, restoring a saved Position.
func (v *ValCache) Seek(i int) {
	v.c = i
}

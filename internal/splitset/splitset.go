// Package splitset provides a fixed-capacity bit-vector over split offsets
// within one segmentation window.
//
// Capacity is a compile-time constant (256 bits, four 64-bit words) sized to
// the engine's window. The set records which split points participate in a
// best-scoring decomposition of a window suffix; winning paths are spliced
// together with Union instead of copying offset slices around.
package splitset

import "math/bits"

// Bits is the capacity of a Set in bits.
const Bits = 256

const words = Bits / 64

// Set is a fixed-size set of split offsets in [0, Bits).
//
// The zero value is an empty set. Set is a plain value type; assignment
// copies it, which the engine relies on when memoizing suffix results.
type Set [words]uint64

// Mark adds a split offset to the set. Offsets outside [0, Bits) are a
// programming error on the caller's side and panic via the bounds check.
func (s *Set) Mark(offset int) {
	s[offset>>6] |= 1 << (offset & 63)
}

// Clear removes all offsets.
func (s *Set) Clear() {
	for i := range s {
		s[i] = 0
	}
}

// Union adds all offsets of o to s.
func (s *Set) Union(o Set) {
	for i := range s {
		s[i] |= o[i]
	}
}

// Count returns the number of offsets in the set.
func (s *Set) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Splits returns an iterator over the offsets in ascending order, each
// shifted by base. Decoding does not consume the set.
func (s *Set) Splits(base int) Iter {
	return Iter{vec: *s, base: base}
}

// Iter yields the offsets of a Set from lowest to highest.
type Iter struct {
	vec  Set
	base int
	idx  int
}

// Next returns the next offset and true, or 0 and false when exhausted.
func (it *Iter) Next() (int, bool) {
	for it.idx < words && it.vec[it.idx] == 0 {
		it.idx++
	}
	if it.idx == words {
		return 0, false
	}

	w := it.vec[it.idx]
	trailing := bits.TrailingZeros64(w)
	it.vec[it.idx] = w & (w - 1)
	return it.base + it.idx*64 + trailing, true
}

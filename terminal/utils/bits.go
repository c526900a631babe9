package utils

import (
	"math/bits"
)

const wordBits = 64

// BitSet is a fixed-size set of bits.
type BitSet struct {
	words []uint64
	size  int
}

func NewBitSet(size int) *BitSet {
	size = max(size, 0)
	return &BitSet{
		words: make([]uint64, (size+wordBits-1)/wordBits),
		size:  size,
	}
}

func (s *BitSet) Len() int {
	return s.size
}

// Set sets the bit at idx.
func (s *BitSet) Set(idx int) {
	Assertf(idx >= 0 && idx < s.size, "bit %d out of [0, %d)", idx, s.size)
	s.words[idx/wordBits] |= 1 << (idx % wordBits)
}

// Unset clears the bit at idx.
func (s *BitSet) Unset(idx int) {
	Assertf(idx >= 0 && idx < s.size, "bit %d out of [0, %d)", idx, s.size)
	s.words[idx/wordBits] &^= 1 << (idx % wordBits)
}

func (s *BitSet) IsSet(idx int) bool {
	Assertf(idx >= 0 && idx < s.size, "bit %d out of [0, %d)", idx, s.size)
	return s.words[idx/wordBits]&(1<<(idx%wordBits)) != 0
}

// SetRange sets every bit in [start, end).
func (s *BitSet) SetRange(start, end int) {
	Assert(0 <= start && start <= end && end <= s.size, "range out of bounds")
	for start < end {
		word, offset := start/wordBits, start%wordBits
		n := min(wordBits-offset, end-start)
		// n ones shifted to offset; n == 64 only when offset == 0.
		mask := ^uint64(0)
		if n < wordBits {
			mask = (1<<n - 1) << offset
		}
		s.words[word] |= mask
		start += n
	}
}

// Fill sets every bit.
func (s *BitSet) Fill() {
	s.SetRange(0, s.size)
}

// Clear unsets every bit.
func (s *BitSet) Clear() {
	clear(s.words)
}

// Count is the number of set bits.
func (s *BitSet) Count() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}
	return total
}

package bitvec

import "github.com/steakknife/hamming"

// CountWords returns the number of set bits across words.
//
// The count is a word-parallel (SWAR) reduction and covers every bit of every
// word, including any padding past the logical size of a vector. Vector never
// sets padding bits, so for a Vector the result equals the number of set bits
// in [0, Len()).
func CountWords(words []uint64) uint64 {
	return uint64(hamming.CountBitsUint64s(words))
}

package bitvec

import (
	"errors"
	"math"
)

const (
	// WordBits is the width of a backing word.
	WordBits = 64

	// MaxBits is the largest size New will attempt to allocate. Beyond it the
	// word count, or the int form of an index, is no longer representable.
	MaxBits = uint64(math.MaxInt) - (WordBits - 1)
)

var (
	ErrOutOfMemory     = errors.New("bitvec: unable to allocate bit vector")
	ErrIndexOutOfRange = errors.New("bitvec: attempt to access out of bounds bit")
	ErrTypeMismatch    = errors.New("bitvec: bits may only be set to 0/1 or true/false")
	ErrUnsupported     = errors.New("bitvec: deletion is not allowed")
)

// WordsFor returns ceil(size/WordBits).
func WordsFor(size uint64) uint64 {
	return (size + WordBits - 1) / WordBits
}

package bitvec

import "fmt"

// Vector is a fixed-size array of bits packed LSB0 into 64-bit words: bit i
// is bit i%64 of word i/64.
//
// A Vector is not safe for concurrent use. Callers that share one across
// goroutines must serialize every call, reads included, themselves.
type Vector struct {
	size  uint64
	words []uint64
}

// New allocates a zeroed Vector of size bits.
func New(size uint64) (*Vector, error) {
	if size > MaxBits {
		return nil, fmt.Errorf("%w: %d bits", ErrOutOfMemory, size)
	}
	words, err := allocWords(WordsFor(size))
	if err != nil {
		return nil, err
	}
	return &Vector{size: size, words: words}, nil
}

// allocWords converts a runtime allocation panic (for example a length the
// runtime refuses) into ErrOutOfMemory.
func allocWords(n uint64) (words []uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			words, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]uint64, n), nil
}

// Len returns the number of addressable bits.
func (v *Vector) Len() uint64 { return v.size }

// Words returns the backing words. The slice aliases the vector and must not
// be modified.
func (v *Vector) Words() []uint64 { return v.words }

// Get returns bit i. Negative i counts back from the end.
func (v *Vector) Get(i int) (bool, error) {
	pos, err := v.index(i)
	if err != nil {
		return false, err
	}
	return v.TestBit(pos), nil
}

// Slice returns the bits selected by s, in selection order.
func (v *Vector) Slice(s Span) []bool {
	start, step, n := s.Indices(int(v.size))
	out := make([]bool, n)
	for j, i := 0, start; j < n; j, i = j+1, i+step {
		out[j] = v.TestBit(uint64(i))
	}
	return out
}

// Set writes bit i. Negative i counts back from the end.
func (v *Vector) Set(i int, value bool) error {
	pos, err := v.index(i)
	if err != nil {
		return err
	}
	v.put(pos, value)
	return nil
}

// SetSpan writes every bit selected by s.
func (v *Vector) SetSpan(s Span, value bool) {
	start, step, n := s.Indices(int(v.size))
	for j, i := 0, start; j < n; j, i = j+1, i+step {
		v.put(uint64(i), value)
	}
}

// TestAndSet reports whether bit i already equals value. If it does not, the
// bit is overwritten with value and false is returned.
func (v *Vector) TestAndSet(i int, value bool) (bool, error) {
	pos, err := v.index(i)
	if err != nil {
		return false, err
	}
	if v.TestBit(pos) == value {
		return true, nil
	}
	v.put(pos, value)
	return false, nil
}

// Fill sets or clears all Len() bits. Padding bits in the last word are left
// untouched.
func (v *Vector) Fill(value bool) {
	if len(v.words) == 0 {
		return
	}
	last := len(v.words) - 1
	var full uint64
	if value {
		full = ^uint64(0)
	}
	for i := 0; i < last; i++ {
		v.words[i] = full
	}
	mask := lastWordMask(v.size)
	if value {
		v.words[last] |= mask
	} else {
		v.words[last] &^= mask
	}
}

// lastWordMask selects the valid bits of the final word. When size is a
// whole number of words the final word is entirely valid; that case is
// handled explicitly rather than by shifting a full word width.
func lastWordMask(size uint64) uint64 {
	rem := size % WordBits
	if rem == 0 {
		return ^uint64(0)
	}
	return ^uint64(0) >> (WordBits - rem)
}

// PopCount returns the number of set bits.
func (v *Vector) PopCount() uint64 {
	return CountWords(v.words)
}

// TestBit reports bit pos without wrapping or bounds checks. The caller
// guarantees pos < Len().
func (v *Vector) TestBit(pos uint64) bool {
	return v.words[pos/WordBits]&(1<<(pos%WordBits)) != 0
}

// SetBit sets bit pos without bounds checks. The caller guarantees
// pos < Len().
func (v *Vector) SetBit(pos uint64) {
	v.words[pos/WordBits] |= 1 << (pos % WordBits)
}

// ClearBit clears bit pos without bounds checks. The caller guarantees
// pos < Len().
func (v *Vector) ClearBit(pos uint64) {
	v.words[pos/WordBits] &^= 1 << (pos % WordBits)
}

func (v *Vector) put(pos uint64, value bool) {
	if value {
		v.SetBit(pos)
		return
	}
	v.ClearBit(pos)
}

func (v *Vector) index(i int) (uint64, error) {
	n := int(v.size)
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, v.size)
	}
	return uint64(j), nil
}

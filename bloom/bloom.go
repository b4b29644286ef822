package bloom

import (
	"github.com/forestrie/go-sieve/bitvec"
	"github.com/forestrie/go-sieve/hashpair"
)

// Bloom is a classic insert-only bloom filter over byte-string keys.
//
// A Bloom is not safe for concurrent use; callers must serialize access.
type Bloom struct {
	filter
	bits *bitvec.Vector
}

// New returns an empty filter of size bits probed k times per key.
func New(size uint64, k uint8, opts ...Option) (*Bloom, error) {
	if size == 0 {
		return nil, ErrBadSize
	}
	if k == 0 {
		return nil, ErrBadK
	}
	bits, err := bitvec.New(size)
	if err != nil {
		return nil, err
	}
	b := &Bloom{filter: newFilter(size, k, newOptions(opts)), bits: bits}
	b.debugf("bloom: new filter size=%d k=%d", size, k)
	return b, nil
}

// Add inserts key. Adding a key more than once is harmless, but each call
// counts towards Added.
func (b *Bloom) Add(key []byte) {
	h1, h2 := b.hasher.Pair(key)
	for i := uint64(1); i <= uint64(b.k); i++ {
		b.bits.SetBit(hashpair.Probe(h1, h2, i, b.size))
	}
	b.added++
}

// AddNew inserts key and reports whether every probed bit was already set,
// i.e. whether key was (probably) present before the call.
func (b *Bloom) AddNew(key []byte) bool {
	h1, h2 := b.hasher.Pair(key)
	present := true
	for i := uint64(1); i <= uint64(b.k); i++ {
		pos := hashpair.Probe(h1, h2, i, b.size)
		if !b.bits.TestBit(pos) {
			present = false
			b.bits.SetBit(pos)
		}
	}
	b.added++
	return present
}

// Contains reports whether key may have been added. False means key was
// definitely never added.
func (b *Bloom) Contains(key []byte) bool {
	h1, h2 := b.hasher.Pair(key)
	for i := uint64(1); i <= uint64(b.k); i++ {
		if !b.bits.TestBit(hashpair.Probe(h1, h2, i, b.size)) {
			return false
		}
	}
	return true
}

// Len returns the size of the filter in bits.
func (b *Bloom) Len() uint64 { return b.size }

// PopCount returns the number of set bits.
func (b *Bloom) PopCount() uint64 { return b.bits.PopCount() }

// FillRatio returns the fraction of bits set.
func (b *Bloom) FillRatio() float64 {
	return float64(b.PopCount()) / float64(b.size)
}

// CollisionProbability estimates the false positive probability for the next
// lookup given the insertions so far.
func (b *Bloom) CollisionProbability() float64 {
	return collisionProbability(b.k, b.added, b.size)
}

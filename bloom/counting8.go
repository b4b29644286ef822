package bloom

import (
	"fmt"

	"github.com/forestrie/go-sieve/hashpair"
)

// Counting8 is a counting bloom filter with one byte per bucket, updated
// conservatively: Add only increments the probed buckets that hold the
// current minimum, which keeps overcounting down.
//
// A Counting8 is not safe for concurrent use; callers must serialize access.
type Counting8 struct {
	filter
	buckets []uint8
}

// NewCounting8 returns an empty filter of size bits, i.e. size/8 byte
// buckets, probed k times per key.
func NewCounting8(size uint64, k uint8, opts ...Option) (*Counting8, error) {
	n := size / 8
	if n == 0 {
		return nil, ErrBadSize
	}
	if k == 0 {
		return nil, ErrBadK
	}
	buckets, err := allocBuckets(n)
	if err != nil {
		return nil, err
	}
	c := &Counting8{filter: newFilter(size, k, newOptions(opts)), buckets: buckets}
	c.debugf("counting8: new filter size=%d k=%d buckets=%d", size, k, n)
	return c, nil
}

func allocBuckets(n uint64) (buckets []uint8, err error) {
	defer func() {
		if r := recover(); r != nil {
			buckets, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]uint8, n), nil
}

// Add increments the probed buckets holding the minimum count, unless that
// minimum is already Counting8Max. It returns the minimum before the update,
// so 0 means key was (certainly) not present before.
func (c *Counting8) Add(key []byte) uint8 {
	h1, h2 := c.hasher.Pair(key)
	m := uint64(len(c.buckets))

	low := Counting8Max
	for i := uint64(1); i <= uint64(c.k); i++ {
		if v := c.buckets[hashpair.Probe(h1, h2, i, m)]; v < low {
			low = v
		}
	}
	if low < Counting8Max {
		for i := uint64(1); i <= uint64(c.k); i++ {
			b := hashpair.Probe(h1, h2, i, m)
			if c.buckets[b] != low {
				continue
			}
			c.buckets[b]++
			if c.buckets[b] == Counting8Max {
				c.noteSaturated("counting8", b, Counting8Max)
			}
		}
	}
	c.added++
	return low
}

// Lookup returns the smallest count among the probed buckets.
func (c *Counting8) Lookup(key []byte) uint8 {
	h1, h2 := c.hasher.Pair(key)
	m := uint64(len(c.buckets))

	count := Counting8Max
	for i := uint64(1); i <= uint64(c.k); i++ {
		v := c.buckets[hashpair.Probe(h1, h2, i, m)]
		if v == 0 {
			return 0
		}
		if v < count {
			count = v
		}
	}
	return count
}

// Contains reports whether every probed bucket is non-zero.
func (c *Counting8) Contains(key []byte) bool {
	h1, h2 := c.hasher.Pair(key)
	m := uint64(len(c.buckets))
	for i := uint64(1); i <= uint64(c.k); i++ {
		if c.buckets[hashpair.Probe(h1, h2, i, m)] == 0 {
			return false
		}
	}
	return true
}

// Len returns the number of buckets.
func (c *Counting8) Len() uint64 { return uint64(len(c.buckets)) }

// BucketsSet returns the number of non-zero buckets.
func (c *Counting8) BucketsSet() uint64 {
	var n uint64
	for _, v := range c.buckets {
		if v != 0 {
			n++
		}
	}
	return n
}

func (c *Counting8) CollisionProbability() float64 {
	return collisionProbability(c.k, c.added, uint64(len(c.buckets)))
}

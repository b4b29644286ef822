package bloom

import (
	"fmt"

	"github.com/forestrie/go-sieve/bitvec"
	"github.com/forestrie/go-sieve/hashpair"
)

// Counting is a counting bloom filter whose buckets are bucketBits-wide
// saturating counters packed into a bit vector. Bucket b occupies bits
// [b*bucketBits, (b+1)*bucketBits), least significant bit first.
//
// Add increments every probed bucket independently. Counting8 instead uses
// conservative update; see the package documentation.
//
// A Counting is not safe for concurrent use; callers must serialize access.
type Counting struct {
	filter
	bits       *bitvec.Vector
	bucketBits uint8
	buckets    uint64
	maxCount   uint8
}

// NewCounting returns an empty counting filter of size bits divided into
// size/bucketBits buckets, probed k times per key.
func NewCounting(size uint64, k uint8, bucketBits uint8, opts ...Option) (*Counting, error) {
	if bucketBits == 0 || bucketBits > MaxBucketBits {
		return nil, ErrBadBucketBits
	}
	buckets := size / uint64(bucketBits)
	if buckets == 0 {
		return nil, ErrBadSize
	}
	if k == 0 {
		return nil, ErrBadK
	}
	bits, err := bitvec.New(size)
	if err != nil {
		return nil, err
	}
	c := &Counting{
		filter:     newFilter(size, k, newOptions(opts)),
		bits:       bits,
		bucketBits: bucketBits,
		buckets:    buckets,
		maxCount:   uint8(uint16(1)<<bucketBits - 1),
	}
	c.debugf("counting: new filter size=%d k=%d bucketBits=%d buckets=%d", size, k, bucketBits, buckets)
	return c, nil
}

// Add increments each probed bucket that is below MaxCount.
func (c *Counting) Add(key []byte) {
	h1, h2 := c.hasher.Pair(key)
	for i := uint64(1); i <= uint64(c.k); i++ {
		c.increment(hashpair.Probe(h1, h2, i, c.buckets))
	}
	c.added++
}

// Inc applies the Add update to precomputed bucket indices (see Buckets) and
// counts one insertion. If any index is out of range nothing is modified.
func (c *Counting) Inc(buckets []uint64) error {
	for _, b := range buckets {
		if b >= c.buckets {
			return fmt.Errorf("%w: bucket %d, buckets %d", ErrBucketOutOfRange, b, c.buckets)
		}
	}
	for _, b := range buckets {
		c.increment(b)
	}
	c.added++
	return nil
}

// Buckets appends the bucket indices probed for key to dst.
func (c *Counting) Buckets(key []byte, dst []uint64) []uint64 {
	return hashpair.Positions(c.hasher, key, c.k, c.buckets, dst)
}

// Lookup returns the smallest count among the probed buckets: an upper bound
// on the number of times key was added, unless a bucket saturated.
func (c *Counting) Lookup(key []byte) uint8 {
	h1, h2 := c.hasher.Pair(key)
	count := c.maxCount
	for i := uint64(1); i <= uint64(c.k); i++ {
		v := c.bucket(hashpair.Probe(h1, h2, i, c.buckets))
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
func (c *Counting) Contains(key []byte) bool {
	h1, h2 := c.hasher.Pair(key)
	for i := uint64(1); i <= uint64(c.k); i++ {
		if c.bucket(hashpair.Probe(h1, h2, i, c.buckets)) == 0 {
			return false
		}
	}
	return true
}

// Len returns the number of buckets.
func (c *Counting) Len() uint64 { return c.buckets }

func (c *Counting) BucketBits() uint8 { return c.bucketBits }

// MaxCount returns the saturation value, 2^BucketBits - 1.
func (c *Counting) MaxCount() uint8 { return c.maxCount }

// PopCount returns the number of set bits across all buckets.
func (c *Counting) PopCount() uint64 { return c.bits.PopCount() }

// BucketsSet returns the number of non-zero buckets.
func (c *Counting) BucketsSet() uint64 {
	var n uint64
	for b := uint64(0); b < c.buckets; b++ {
		if c.bucket(b) != 0 {
			n++
		}
	}
	return n
}

// CollisionProbability estimates the probability that the next absent key
// finds all its buckets non-zero.
func (c *Counting) CollisionProbability() float64 {
	return collisionProbability(c.k, c.added, c.buckets)
}

// bucket decodes the counter for bucket b.
func (c *Counting) bucket(b uint64) uint8 {
	base := b * uint64(c.bucketBits)
	var v uint8
	for j := uint8(0); j < c.bucketBits; j++ {
		if c.bits.TestBit(base + uint64(j)) {
			v |= 1 << j
		}
	}
	return v
}

func (c *Counting) increment(b uint64) {
	base := b * uint64(c.bucketBits)
	v := c.bucket(b)
	if v == 0 {
		// 0 -> 1 only needs the low bit.
		c.bits.SetBit(base)
		if c.maxCount == 1 {
			c.noteSaturated("counting", b, c.maxCount)
		}
		return
	}
	if v >= c.maxCount {
		return
	}
	v++
	for j := uint8(0); j < c.bucketBits; j++ {
		if v&(1<<j) != 0 {
			c.bits.SetBit(base + uint64(j))
		} else {
			c.bits.ClearBit(base + uint64(j))
		}
	}
	if v == c.maxCount {
		c.noteSaturated("counting", b, c.maxCount)
	}
}

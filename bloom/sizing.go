package bloom

import (
	"fmt"
	"math"

	bbloom "github.com/bits-and-blooms/bloom/v3"
	units "github.com/docker/go-units"
)

// DefaultMemoryK is the probe count used when a filter is sized by memory
// alone.
const DefaultMemoryK uint8 = 7

// ParseMemory converts a human memory size ("512K", "1.5M", "2G", binary
// multiples) to a size in bits.
func ParseMemory(mem string) (uint64, error) {
	n, err := units.RAMInBytes(mem)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadMemory, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadMemory, mem)
	}
	if uint64(n) > math.MaxUint64/8 {
		return 0, ErrSizeOverflow
	}
	return uint64(n) * 8, nil
}

// EstimateParameters returns the size in bits and probe count that hold the
// false positive rate at p for n distinct keys:
//
//	size = ceil(-n*ln(p) / ln(2)^2)
//	k    = ceil(ln(2) * size/n)
func EstimateParameters(n uint64, p float64) (size uint64, k uint8, err error) {
	if n == 0 {
		return 0, 0, ErrBadSize
	}
	if !(p > 0 && p < 1) {
		return 0, 0, ErrBadRate
	}
	if n > uint64(math.MaxUint) {
		return 0, 0, ErrSizeOverflow
	}
	m, kk := bbloom.EstimateParameters(uint(n), p)
	if m == 0 {
		return 0, 0, ErrBadSize
	}
	if kk == 0 || kk > math.MaxUint8 {
		return 0, 0, fmt.Errorf("%w: estimate needs %d", ErrBadK, kk)
	}
	return uint64(m), uint8(kk), nil
}

// NewFromMemory returns a Bloom using all of mem, probed DefaultMemoryK times.
func NewFromMemory(mem string, opts ...Option) (*Bloom, error) {
	size, err := ParseMemory(mem)
	if err != nil {
		return nil, err
	}
	return New(size, DefaultMemoryK, opts...)
}

// NewWithEstimates returns a Bloom sized for n keys at false positive rate p.
func NewWithEstimates(n uint64, p float64, opts ...Option) (*Bloom, error) {
	size, k, err := EstimateParameters(n, p)
	if err != nil {
		return nil, err
	}
	return New(size, k, opts...)
}

// NewCounting8FromMemory returns a Counting8 with one bucket per byte of
// mem, probed DefaultMemoryK times.
func NewCounting8FromMemory(mem string, opts ...Option) (*Counting8, error) {
	size, err := ParseMemory(mem)
	if err != nil {
		return nil, err
	}
	return NewCounting8(size, DefaultMemoryK, opts...)
}

// NewCounting8WithEstimates returns a Counting8 with one bucket per bit the
// equivalent Bloom would need for n keys at rate p.
func NewCounting8WithEstimates(n uint64, p float64, opts ...Option) (*Counting8, error) {
	buckets, k, err := EstimateParameters(n, p)
	if err != nil {
		return nil, err
	}
	if buckets > math.MaxUint64/8 {
		return nil, ErrSizeOverflow
	}
	return NewCounting8(buckets*8, k, opts...)
}

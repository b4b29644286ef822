package bloom

import (
	"errors"

	"github.com/forestrie/go-sieve/bitvec"
)

const (
	// MaxBucketBits is the widest counter a Counting filter packs into its
	// bit vector.
	MaxBucketBits uint8 = 8

	// Counting8Max is the saturation value of a Counting8 bucket.
	Counting8Max uint8 = 255
)

var (
	ErrBadSize          = errors.New("bloom: size must provide at least one bit or bucket")
	ErrBadK             = errors.New("bloom: number of hashes must be in 1..255")
	ErrBadBucketBits    = errors.New("bloom: bucket bits must be in 1..8")
	ErrBadMemory        = errors.New("bloom: memory size invalid")
	ErrBadRate          = errors.New("bloom: false positive rate must be in (0, 1)")
	ErrSizeOverflow     = errors.New("bloom: size computation overflow")
	ErrTypeMismatch     = errors.New("bloom: a key (byte sequence) is required")
	ErrBucketOutOfRange = errors.New("bloom: bucket index out of range")

	// ErrOutOfMemory is returned by the constructors when the backing
	// buffer cannot be allocated.
	ErrOutOfMemory = bitvec.ErrOutOfMemory
)

package hashpair

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"
)

const (
	fnvOffset64 = 0xcbf29ce484222325
	fnvPrime64  = 0x100000001b3

	murmurM = 0xc6a4a7935bd1e995
	murmurR = 47

	// DefaultSeed seeds the murmur half of the Classic pair.
	DefaultSeed = 12345
)

// Hasher derives the two base hashes that Probe combines into positions.
type Hasher interface {
	Pair(key []byte) (h1, h2 uint64)
}

// Classic pairs FNV-1a 64 with MurmurHash64A. It is the default for every
// filter in go-sieve.
type Classic struct {
	Seed uint64
}

func (c Classic) Pair(key []byte) (h1, h2 uint64) {
	return FNV1a64(key), Murmur2_64A(key, c.Seed)
}

// Fast pairs seeded xxh3 with seeded murmur3. Positions differ from Classic,
// so filters that must agree with each other must use the same Hasher.
type Fast struct {
	Seed uint64
}

func (f Fast) Pair(key []byte) (h1, h2 uint64) {
	return xxh3.HashSeed(key, f.Seed), murmur3.SeedSum64(f.Seed, key)
}

// Default returns Classic seeded with DefaultSeed.
func Default() Hasher { return Classic{Seed: DefaultSeed} }

// FNV1a64 returns the 64 bit FNV-1a hash of key.
func FNV1a64(key []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range key {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

// Murmur2_64A returns MurmurHash64A of key. Blocks are read little-endian.
func Murmur2_64A(key []byte, seed uint64) uint64 {
	h := seed ^ (uint64(len(key)) * murmurM)

	for len(key) >= 8 {
		k := binary.LittleEndian.Uint64(key)
		k *= murmurM
		k ^= k >> murmurR
		k *= murmurM

		h ^= k
		h *= murmurM
		key = key[8:]
	}

	if len(key) > 0 {
		for i := len(key) - 1; i >= 0; i-- {
			h ^= uint64(key[i]) << (8 * uint(i))
		}
		h *= murmurM
	}

	h ^= h >> murmurR
	h *= murmurM
	h ^= h >> murmurR
	return h
}

// Probe returns (h1 + i*h2) mod m, with uint64 wrap-around. Filters use i in
// 1..k. m must be non-zero.
func Probe(h1, h2, i, m uint64) uint64 {
	return (h1 + i*h2) % m
}

// Positions appends the k probe positions of key, modulo m, to dst.
func Positions(h Hasher, key []byte, k uint8, m uint64, dst []uint64) []uint64 {
	h1, h2 := h.Pair(key)
	for i := uint64(1); i <= uint64(k); i++ {
		dst = append(dst, Probe(h1, h2, i, m))
	}
	return dst
}

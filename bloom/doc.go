package bloom

/*

# Bloom filters over bit-packed storage

This package provides three probabilistic membership filters over byte-string
keys. Keys are never stored.

- Bloom: one bit per position. No false negatives; false positives with
  probability approaching (1 - e^(-k*n/m))^k.
- Counting: positions are bucketBits-wide (1..8) saturating counters packed
  into a `bitvec.Vector`. Lookup approximates how often a key was added.
- Counting8: positions are whole bytes (0..255).

It follows the `go-sieve/bitvec` style: small types, explicit bit layouts and
unchecked hot paths once positions are reduced modulo the filter size.

## What Bloom filters are (and are not)

- If a filter says "definitely not present", the key was never added.
- If it says "maybe present", the key may or may not have been added.

Filters are insert-only. There is no removal, resizing, merging or
serialization.

## Probing

Every key is hashed twice (see `go-sieve/hashpair`) and probe i of k, for i
in 1..k, is (h1 + i*h2) mod m, where m is the number of bits (Bloom) or
buckets (Counting, Counting8). The default hasher pairs FNV-1a 64 with
MurmurHash64A seeded 12345; WithHasher and WithSeed select others. Two filters
only agree on positions if they use the same hasher.

## Counting update policies

The two counting filters deliberately differ:

- Counting.Add increments every probed bucket below its maximum,
  independently of the others. A bucket probed twice for the same key is
  incremented twice.
- Counting8.Add is a conservative update: it finds the minimum over the
  probed buckets and increments only the buckets equal to it. Buckets already
  above the minimum stay put, which reduces overcounting. It returns the
  minimum seen before the update.

Both saturate rather than wrap, and both Lookups return the minimum over the
probed buckets (0 as soon as any bucket is 0).

## Concurrency

None of the types lock. Concurrent use of one filter, including a read
racing a write, must be serialized by the caller.

*/

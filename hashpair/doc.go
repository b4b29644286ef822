// Package hashpair derives many bloom filter probe positions from two 64 bit
// hashes (Kirsch-Mitzenmacher double hashing): position i of k is
// (h1 + i*h2) mod m.
package hashpair

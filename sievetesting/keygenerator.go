package sievetesting

import (
	"fmt"

	"github.com/google/uuid"
)

// KeyGenerator produces deterministic filter keys. Key(set, i) is the 16 byte
// name-based (v5) UUID of "set/i", so keys are stable from run to run and
// keys from different sets never collide in practice.
type KeyGenerator struct {
	Namespace uuid.UUID
}

func NewKeyGenerator() KeyGenerator {
	return KeyGenerator{Namespace: uuid.NameSpaceOID}
}

func (g KeyGenerator) Key(set string, i int) []byte {
	id := uuid.NewSHA1(g.Namespace, []byte(fmt.Sprintf("%s/%d", set, i)))
	return id[:]
}

// Keys returns Key(set, 0) .. Key(set, n-1).
func (g KeyGenerator) Keys(set string, n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = g.Key(set, i)
	}
	return keys
}

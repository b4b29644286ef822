package bitvec

/*

# Fixed-size bit vectors

Vector is the storage primitive under the filters in `go-sieve/bloom`. It is a
word-packed boolean array with:

- indexed get/set, where negative indices count back from the end
- Python-style stepped spans (see Span)
- TestAndSet, to detect "already set" in a single pass
- Fill and a SWAR PopCount

## Bit numbering

Bit i lives in word i/64 at mask 1<<(i%64) (LSB0). The final word may carry
padding bits past Len(). Nothing in this package sets them, Fill included,
so PopCount (which counts whole words) reports exactly the bits in range.

## Checked and unchecked access

Get, Set, Slice and TestAndSet validate and normalize their inputs.
TestBit, SetBit and ClearBit do not: they exist for filter hot paths where
positions are already reduced modulo Len(), and put the burden of knowledge
on the caller.

## Dynamic values

The typed methods take bool. Assign, AssignSpan and TestAndAssign accept
`any` for scripting-facing wrappers: true/false and 0/1 are accepted, nil
(delete) is ErrUnsupported and anything else is ErrTypeMismatch. Values are
checked before indices and no bit is touched on error.

*/

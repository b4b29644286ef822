package bitvec

import "fmt"

// Bit coerces a dynamically typed bit value. true, false and the integers 0
// and 1 (of any Go integer type) are accepted. nil is a request to delete the
// bit and is rejected with ErrUnsupported; anything else with ErrTypeMismatch.
func Bit(value any) (bool, error) {
	switch x := value.(type) {
	case nil:
		return false, ErrUnsupported
	case bool:
		return x, nil
	case int:
		return intBit(int64(x), value)
	case int8:
		return intBit(int64(x), value)
	case int16:
		return intBit(int64(x), value)
	case int32:
		return intBit(int64(x), value)
	case int64:
		return intBit(x, value)
	case uint:
		return uintBit(uint64(x), value)
	case uint8:
		return uintBit(uint64(x), value)
	case uint16:
		return uintBit(uint64(x), value)
	case uint32:
		return uintBit(uint64(x), value)
	case uint64:
		return uintBit(x, value)
	}
	return false, fmt.Errorf("%w: got %T", ErrTypeMismatch, value)
}

func intBit(x int64, value any) (bool, error) {
	if x < 0 {
		return false, fmt.Errorf("%w: got %v", ErrTypeMismatch, value)
	}
	return uintBit(uint64(x), value)
}

func uintBit(x uint64, value any) (bool, error) {
	switch x {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: got %v", ErrTypeMismatch, value)
}

// Assign is Set for dynamically typed values. The value is checked before
// the index, and nothing is written unless both are valid.
func (v *Vector) Assign(i int, value any) error {
	b, err := Bit(value)
	if err != nil {
		return err
	}
	return v.Set(i, b)
}

// AssignSpan is SetSpan for dynamically typed values.
func (v *Vector) AssignSpan(s Span, value any) error {
	b, err := Bit(value)
	if err != nil {
		return err
	}
	v.SetSpan(s, b)
	return nil
}

// TestAndAssign is TestAndSet for dynamically typed values.
func (v *Vector) TestAndAssign(i int, value any) (bool, error) {
	b, err := Bit(value)
	if err != nil {
		return false, err
	}
	return v.TestAndSet(i, b)
}

package bloom

import "fmt"

// Key converts a dynamically typed value into a filter key. Only byte
// sequences ([]byte and string) are keys; anything else is ErrTypeMismatch.
//
// The typed methods (Add, Contains, Lookup) take []byte and cannot fail this
// way. The *Value methods below are for scripting-facing wrappers that
// receive arbitrary values.
func Key(value any) ([]byte, error) {
	switch k := value.(type) {
	case []byte:
		return k, nil
	case string:
		return []byte(k), nil
	}
	return nil, fmt.Errorf("%w: got %T", ErrTypeMismatch, value)
}

func (b *Bloom) AddValue(value any) error {
	key, err := Key(value)
	if err != nil {
		return err
	}
	b.Add(key)
	return nil
}

func (b *Bloom) ContainsValue(value any) (bool, error) {
	key, err := Key(value)
	if err != nil {
		return false, err
	}
	return b.Contains(key), nil
}

func (c *Counting) AddValue(value any) error {
	key, err := Key(value)
	if err != nil {
		return err
	}
	c.Add(key)
	return nil
}

func (c *Counting) LookupValue(value any) (uint8, error) {
	key, err := Key(value)
	if err != nil {
		return 0, err
	}
	return c.Lookup(key), nil
}

func (c *Counting) ContainsValue(value any) (bool, error) {
	key, err := Key(value)
	if err != nil {
		return false, err
	}
	return c.Contains(key), nil
}

func (c *Counting8) AddValue(value any) (uint8, error) {
	key, err := Key(value)
	if err != nil {
		return 0, err
	}
	return c.Add(key), nil
}

func (c *Counting8) LookupValue(value any) (uint8, error) {
	key, err := Key(value)
	if err != nil {
		return 0, err
	}
	return c.Lookup(key), nil
}

func (c *Counting8) ContainsValue(value any) (bool, error) {
	key, err := Key(value)
	if err != nil {
		return false, err
	}
	return c.Contains(key), nil
}

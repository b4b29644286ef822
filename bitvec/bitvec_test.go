package bitvec

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		size      uint64
		wantWords int
	}{
		{"empty", 0, 0},
		{"one bit", 1, 1},
		{"one word", 64, 1},
		{"word and a bit", 65, 2},
		{"hundred", 100, 2},
		{"two words", 128, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.size)
			require.NoError(t, err)
			require.Equal(t, tt.size, v.Len())
			require.Len(t, v.Words(), tt.wantWords)
			require.Equal(t, uint64(0), v.PopCount())
		})
	}
}

func TestNewRejectsUnrepresentableSize(t *testing.T) {
	v, err := New(MaxBits + 1)
	require.ErrorIs(t, err, ErrOutOfMemory)
	require.Nil(t, v)
}

func TestGetSetNegativeIndex(t *testing.T) {
	v, err := New(10)
	require.NoError(t, err)

	require.NoError(t, v.Set(3, true))

	got, err := v.Get(3)
	require.NoError(t, err)
	require.True(t, got)

	// -7 + 10 == 3
	got, err = v.Get(-7)
	require.NoError(t, err)
	require.True(t, got)

	require.NoError(t, v.Set(-1, true))
	got, err = v.Get(9)
	require.NoError(t, err)
	require.True(t, got)

	require.NoError(t, v.Set(-7, false))
	got, err = v.Get(3)
	require.NoError(t, err)
	require.False(t, got)
}

func TestIndexOutOfRange(t *testing.T) {
	v, err := New(10)
	require.NoError(t, err)

	for _, i := range []int{10, 11, -11, -100} {
		_, err := v.Get(i)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "get %d", i)

		err = v.Set(i, true)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "set %d", i)

		_, err = v.TestAndSet(i, true)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "testandset %d", i)
	}
	require.Equal(t, uint64(0), v.PopCount())

	empty, err := New(0)
	require.NoError(t, err)
	_, err = empty.Get(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = empty.Get(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTestAndSet(t *testing.T) {
	v, err := New(70)
	require.NoError(t, err)

	already, err := v.TestAndSet(66, true)
	require.NoError(t, err)
	require.False(t, already)

	already, err = v.TestAndSet(66, true)
	require.NoError(t, err)
	require.True(t, already)

	// Clearing an unset bit is a no-op that reports "already".
	already, err = v.TestAndSet(5, false)
	require.NoError(t, err)
	require.True(t, already)

	already, err = v.TestAndSet(-4, false)
	require.NoError(t, err)
	require.False(t, already)

	got, err := v.Get(66)
	require.NoError(t, err)
	require.False(t, got)
}

func TestFill(t *testing.T) {
	for _, size := range []uint64{0, 1, 63, 64, 65, 100, 127, 128, 129, 1000} {
		v, err := New(size)
		require.NoError(t, err)

		v.Fill(true)
		require.Equal(t, size, v.PopCount(), "fill(true) size=%d", size)
		for i := 0; i < int(size); i++ {
			got, err := v.Get(i)
			require.NoError(t, err)
			require.True(t, got)
		}

		v.Fill(false)
		require.Equal(t, uint64(0), v.PopCount(), "fill(false) size=%d", size)
	}
}

func TestFillLeavesPaddingClear(t *testing.T) {
	v, err := New(100)
	require.NoError(t, err)
	v.Fill(true)
	require.Equal(t, ^uint64(0), v.Words()[0])
	require.Equal(t, uint64(1)<<36-1, v.Words()[1])
}

func TestFillExactWordMultiple(t *testing.T) {
	v, err := New(128)
	require.NoError(t, err)
	v.Fill(true)
	require.Equal(t, []uint64{^uint64(0), ^uint64(0)}, v.Words())
	v.Fill(false)
	require.Equal(t, []uint64{0, 0}, v.Words())
}

func TestLastWordMask(t *testing.T) {
	tests := []struct {
		size uint64
		want uint64
	}{
		{1, 0x1},
		{8, 0xff},
		{63, ^uint64(0) >> 1},
		{64, ^uint64(0)},
		{65, 0x1},
		{128, ^uint64(0)},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, lastWordMask(tt.size), "size=%d", tt.size)
	}
}

func TestSliceAndSetSpan(t *testing.T) {
	v, err := New(10)
	require.NoError(t, err)

	v.SetSpan(RangeStep(0, 10, 3), true) // 0, 3, 6, 9
	require.Equal(t, uint64(4), v.PopCount())
	require.Equal(t,
		[]bool{true, false, false, true, false, false, true, false, false, true},
		v.Slice(All()))

	require.Equal(t, []bool{true, false, false, true}, v.Slice(Range(6, 100)))
	require.Equal(t, []bool{true, true}, v.Slice(RangeStep(-1, -5, -3)))
	require.Empty(t, v.Slice(Range(5, 2)))
	require.Empty(t, v.Slice(From(10)))

	v.SetSpan(To(-5), false)
	require.Equal(t, uint64(2), v.PopCount())
}

func TestRandomOpsMatchBitset(t *testing.T) {
	const size = 1000
	rng := rand.New(rand.NewSource(171110))

	v, err := New(size)
	require.NoError(t, err)
	oracle := bitset.New(size)

	for step := 0; step < 20000; step++ {
		i := rng.Intn(size)
		value := rng.Intn(2) == 1
		switch rng.Intn(8) {
		case 0:
			already, err := v.TestAndSet(i, value)
			require.NoError(t, err)
			require.Equal(t, oracle.Test(uint(i)) == value, already)
			oracle.SetTo(uint(i), value)
		case 1:
			// Exercise the negative form of the same index.
			require.NoError(t, v.Set(i-size, value))
			oracle.SetTo(uint(i), value)
		default:
			require.NoError(t, v.Set(i, value))
			oracle.SetTo(uint(i), value)
		}
	}

	require.Equal(t, uint64(oracle.Count()), v.PopCount())
	for i := 0; i < size; i++ {
		got, err := v.Get(i)
		require.NoError(t, err)
		require.Equal(t, oracle.Test(uint(i)), got, "bit %d", i)
	}
}

package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBit(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    bool
		wantErr error
	}{
		{"true", true, true, nil},
		{"false", false, false, nil},
		{"int 1", 1, true, nil},
		{"int 0", 0, false, nil},
		{"uint8 1", uint8(1), true, nil},
		{"int64 0", int64(0), false, nil},
		{"uint64 1", uint64(1), true, nil},
		{"int 2", 2, false, ErrTypeMismatch},
		{"int -1", -1, false, ErrTypeMismatch},
		{"string", "1", false, ErrTypeMismatch},
		{"float", 1.0, false, ErrTypeMismatch},
		{"bytes", []byte{1}, false, ErrTypeMismatch},
		{"nil deletes", nil, false, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bit(tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAssignChecksValueBeforeIndex(t *testing.T) {
	v, err := New(10)
	require.NoError(t, err)

	// A bad value wins over a bad index.
	err = v.Assign(100, "x")
	require.ErrorIs(t, err, ErrTypeMismatch)

	err = v.Assign(100, 1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	err = v.Assign(3, nil)
	require.ErrorIs(t, err, ErrUnsupported)

	err = v.AssignSpan(All(), 7)
	require.ErrorIs(t, err, ErrTypeMismatch)
	require.Equal(t, uint64(0), v.PopCount())

	require.NoError(t, v.Assign(-1, 1))
	require.NoError(t, v.AssignSpan(To(2), true))
	require.Equal(t, uint64(3), v.PopCount())

	already, err := v.TestAndAssign(9, 1)
	require.NoError(t, err)
	require.True(t, already)

	already, err = v.TestAndAssign(9, false)
	require.NoError(t, err)
	require.False(t, already)

	_, err = v.TestAndAssign(9, struct{}{})
	require.ErrorIs(t, err, ErrTypeMismatch)
	require.Equal(t, uint64(2), v.PopCount())
}

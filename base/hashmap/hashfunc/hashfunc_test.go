package hashfunc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyModCapacity(t *testing.T) {
	require.Exactly(t, uint32(3), Hash(KeyModCapacity, 3, 10))
	require.Exactly(t, uint32(3), Hash(KeyModCapacity, 13, 10))
	require.Exactly(t, uint32(0), Hash(KeyModCapacity, 40, 40))
	require.Exactly(t, uint32(0), Hash(KeyModCapacity, 12345, 1))
}

func TestMidSquare(t *testing.T) {
	for _, tc := range []struct {
		key, capacity, want uint32
	}{
		// capacity 10: 10 bits for 9*100, 4 bits for the table, divisor 3*3
		{key: 0, capacity: 10, want: 0},
		{key: 3, capacity: 10, want: 1},
		{key: 13, capacity: 10, want: 8},
		{key: 29, capacity: 10, want: 3},
		// capacity 25: 13 and 5 bits, divisor 4*4
		{key: 7, capacity: 25, want: 3},
		{key: 40, capacity: 25, want: 0},
		// capacity 40: 14 and 6 bits, divisor 4*4
		{key: 10, capacity: 40, want: 6},
		// the square wraps at 32 bits
		{key: 70000, capacity: 10, want: 6},
		{key: 5, capacity: 1, want: 0},
	} {
		require.Exactly(t, tc.want, Hash(MidSquare, tc.key, tc.capacity), "key %d capacity %d", tc.key, tc.capacity)
	}
}

func TestHashIsPureAndInRange(t *testing.T) {
	for _, hashType := range All() {
		for _, capacity := range []uint32{1, 2, 10, 25, 40, 1000, 100000} {
			for key := uint32(0); key < 3*capacity && key < 5000; key++ {
				first := Hash(hashType, key, capacity)
				require.Less(t, first, capacity)
				require.Exactly(t, first, Hash(hashType, key, capacity))
			}
		}
	}
}

func TestHashZeroCapacityPanics(t *testing.T) {
	require.Panics(t, func() { Hash(KeyModCapacity, 1, 0) })
}

func TestHashUnknownTypePanics(t *testing.T) {
	require.False(t, HashType(7).Valid())
	require.True(t, MidSquare.Valid())
	require.Panics(t, func() { Hash(HashType(7), 13, 10) })
}

func TestParse(t *testing.T) {
	for _, hashType := range All() {
		parsed, err := Parse(hashType.String())
		require.NoError(t, err)
		require.Exactly(t, hashType, parsed)
	}

	parsed, err := Parse(" MidSquare ")
	require.NoError(t, err)
	require.Exactly(t, MidSquare, parsed)

	_, err = Parse("fnv")
	require.ErrorIs(t, err, ErrUnknownHashType)
	require.Exactly(t, "unknown", HashType(9).String())
}

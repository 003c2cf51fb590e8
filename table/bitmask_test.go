package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitmask(t *testing.T) {
	var m Bitmask
	require.True(t, m.IsZero())

	for _, bit := range []int{0, 5, 63, 64, 127} {
		m.Set(bit)
		require.True(t, m.Has(bit), "bit %d", bit)
	}

	require.Equal(t, 5, m.Count())
	require.False(t, m.Has(1))
	require.False(t, m.Has(65))

	m.Clear(64)
	require.False(t, m.Has(64))
	require.True(t, m.Has(63))
	require.Equal(t, Bitmask{1<<0 | 1<<5 | 1<<63, 1 << 63}, m)
}

func TestBitmask_Matches(t *testing.T) {
	a, b, c := BitmaskOfBit(0), BitmaskOfBit(1), BitmaskOfBit(100)

	tests := []struct {
		name             string
		mask             Bitmask
		include, exclude Bitmask
		matches          bool
	}{
		{"empty filter", a, Bitmask{}, Bitmask{}, true},
		{"include present", a.Or(b), a, Bitmask{}, true},
		{"include missing", b, a, Bitmask{}, false},
		{"exclude present", a.Or(c), a, c, false},
		{"exclude missing", a.Or(b), a, c, true},
		{"high bit", c, c, Bitmask{}, true},
		{"all of include", a, a.Or(b), Bitmask{}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.matches, test.mask.Matches(test.include, test.exclude))
		})
	}
}

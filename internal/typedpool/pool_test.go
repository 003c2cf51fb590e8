package typedpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool_ResetsOnPut(t *testing.T) {
	pool := New(func(values *[]int) { *values = (*values)[:0] })

	values := pool.Get()
	*values = append(*values, 1, 2, 3)
	pool.Put(values)

	require.Empty(t, *values)
	require.NotNil(t, pool.Get())
}

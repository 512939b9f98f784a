package builder_test

import (
	"math/rand"
	"testing"

	"github.com/me21jarus/dsa/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValueFnBehavior covers each generator's output.
func TestValueFnBehavior(t *testing.T) {
	t.Parallel()

	asc := builder.AscendingValues(10, -2)
	for i, want := range []int{10, 8, 6} {
		v, err := asc(i, nil)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	c := builder.ConstantValue(5)
	v, err := c(99, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	s := builder.SliceValues([]int{4, 2})
	v, err = s(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	_, err = s(2, nil)
	assert.ErrorIs(t, err, builder.ErrValueExhausted)
}

// TestUniformValues checks bounds, the RNG requirement and the panic contract.
func TestUniformValues(t *testing.T) {
	t.Parallel()

	u := builder.UniformValues(-3, 3)
	_, err := u(0, nil)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		v, err := u(i, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, -3)
		assert.LessOrEqual(t, v, 3)
	}

	one := builder.UniformValues(8, 8)
	v, err := one(0, rng)
	require.NoError(t, err)
	assert.Equal(t, 8, v, "degenerate interval")

	assert.Panics(t, func() { builder.UniformValues(2, 1) })
}

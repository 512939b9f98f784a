package builder_test

import (
	"testing"

	"github.com/me21jarus/dsa/builder"
	"github.com/me21jarus/dsa/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValues_Default generates 1..n.
func TestValues_Default(t *testing.T) {
	got, err := builder.Values(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got, err = builder.Values(0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = builder.Values(-1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

// TestValues_SeedIsDeterministic checks equal seeds give equal payloads.
func TestValues_SeedIsDeterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(3), builder.WithValueFn(builder.UniformValues(0, 1000))}
	a, err := builder.Values(16, opts...)
	require.NoError(t, err)
	b, err := builder.Values(16, builder.WithSeed(3), builder.WithValueFn(builder.UniformValues(0, 1000)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = builder.Values(2, builder.WithValueFn(builder.UniformValues(0, 1)))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestBuild_AllVariants builds each variant and checks order and invariants.
func TestBuild_AllVariants(t *testing.T) {
	for _, v := range core.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			seq, err := builder.Build(v, 5, builder.WithValueFn(builder.AscendingValues(0, 10)))
			require.NoError(t, err)
			require.NoError(t, seq.Validate())
			assert.Equal(t, []int{0, 10, 20, 30, 40}, core.Collect(seq))
		})
	}

	_, err := builder.Build(core.Variant(42), 1)
	assert.ErrorIs(t, err, core.ErrUnknownVariant)

	_, err = builder.Build(core.SinglyLinear, 3, builder.WithValues(1, 2))
	assert.ErrorIs(t, err, builder.ErrValueExhausted)
}

// TestTypedConstructors checks the typed entry points forward list options.
func TestTypedConstructors(t *testing.T) {
	released := 0
	opts := []builder.BuilderOption{
		builder.WithValues(7, 8, 9),
		builder.WithListOptions(core.WithReleaseHook(func(int) { released++ })),
	}

	sl, err := builder.SinglyLinear(3, opts...)
	require.NoError(t, err)
	assert.Equal(t, "7 8 9", sl.String())
	sl.Clear()

	dl, err := builder.DoublyLinear(3, opts...)
	require.NoError(t, err)
	_, err = dl.DeleteAt(2)
	require.NoError(t, err)

	sc, err := builder.SinglyCircular(3, opts...)
	require.NoError(t, err)
	require.NoError(t, sc.Delete(9))

	dc, err := builder.DoublyCircular(3, opts...)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9}, dc.Values())

	assert.Equal(t, 5, released)

	_, err = builder.DoublyCircular(-2)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces the payload for a zero-based index.
// It must be deterministic for a given index and RNG state.
type ValueFn func(i int, rng *rand.Rand) (int, error)

// AscendingValues yields start, start+step, start+2·step, …
// Never fails.
func AscendingValues(start, step int) ValueFn {
	return func(i int, _ *rand.Rand) (int, error) {
		return start + i*step, nil
	}
}

// ConstantValue yields v at every index. Never fails.
func ConstantValue(v int) ValueFn {
	return func(int, *rand.Rand) (int, error) {
		return v, nil
	}
}

// UniformValues draws uniformly from [min, max] inclusive.
// Panics if max < min. Returns ErrNeedRandSource when rng is nil.
func UniformValues(min, max int) ValueFn {
	if max < min {
		panic(fmt.Sprintf("UniformValues: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(_ int, rng *rand.Rand) (int, error) {
		if rng == nil {
			return 0, ErrNeedRandSource
		}

		return min + rng.Intn(max-min+1), nil
	}
}

// SliceValues replays vals by index. The slice is copied.
func SliceValues(vals []int) ValueFn {
	cp := append([]int(nil), vals...)

	return func(i int, _ *rand.Rand) (int, error) {
		if i < 0 || i >= len(cp) {
			return 0, fmt.Errorf("index %d of %d: %w", i, len(cp), ErrValueExhausted)
		}

		return cp[i], nil
	}
}

// SPDX-License-Identifier: MIT

package traffic

import (
	"fmt"
	"math"
	"math/rand"
)

// DeltaFn draws the change in minutes applied to one road.
// It must be deterministic for a given RNG state.
type DeltaFn func(rng *rand.Rand) int64

// Reference delta range and floor.
const (
	DefaultMinDelta int64 = -3
	DefaultMaxDelta int64 = 3
	DefaultFloor    int64 = 2
)

// ValidRange reports whether [min, max] is non-empty and its size
// max-min+1 fits in an int64.
func ValidRange(min, max int64) bool {
	if max < min {
		return false
	}
	// max-min+1 <= MaxInt64 <=> max < MaxInt64+min; the right side only
	// overflows when min > 0, and then the span always fits.
	return min > 0 || max < math.MaxInt64+min
}

// UniformDelta returns a DeltaFn sampling uniformly in [min, max] inclusive.
// Panics if max < min or the range is too wide to sample.
// If rng is nil, yields 0 so the network is left as is.
// Complexity: O(1) time, O(1) space.
func UniformDelta(min, max int64) DeltaFn {
	if !ValidRange(min, max) {
		panic(fmt.Sprintf("UniformDelta: require min <= max and max-min < MaxInt64, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return 0
		}
		if span == 1 {
			return min
		}

		return min + rng.Int63n(span)
	}
}

// ConstantDelta returns a DeltaFn that always yields d.
func ConstantDelta(d int64) DeltaFn {
	return func(_ *rand.Rand) int64 { return d }
}

package genson

import (
	"math"
	"math/rand"
	"time"
)

// defaultRNG builds the per-run random source used when no seed is given.
func defaultRNG() func() float64 {
	return rand.New(rand.NewSource(time.Now().UnixNano())).Float64
}

// seededRNG builds a reproducible random source for a given seed.
func seededRNG(seed int64) func() float64 {
	return rand.New(rand.NewSource(seed)).Float64
}

// uniformIndex picks an index uniformly from n items; -1 on an empty set.
func uniformIndex(rng func() float64, n int) int {
	if n == 0 {
		return -1
	}
	return int(rng() * float64(n))
}

// normalizeWeight coerces a raw weight into a usable one. Negative and
// non-finite weights count as 1.
func normalizeWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 1
	}
	return w
}

// weightedIndex walks the prefix sums of weights against a single draw.
// A non-positive total falls back to the first item; floating point drift
// falls back to the last. -1 on an empty set.
func weightedIndex(rng func() float64, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return 0
	}

	r := rng() * sum
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

// randIntBetween draws a uniform integer in [a, b] inclusive.
func randIntBetween(rng func() float64, a, b float64) int {
	lo := int(math.Floor(a))
	hi := int(math.Floor(b))
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + int(rng()*float64(hi-lo+1))
}

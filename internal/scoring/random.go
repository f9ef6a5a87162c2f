package scoring

import (
	"math"
	"math/rand/v2"
	"time"
)

// Rand is the source of randomness used for score jitter and phrasing.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRand returns a seeded PCG source. A zero seed derives one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FixedRand always returns the same offset, clamped into [0, n).
type FixedRand int

func (f FixedRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(f)
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// NoJitter is the offset at which jitter in [-3,+3] evaluates to zero.
const NoJitter FixedRand = jitterSpan

const jitterSpan = 3

func jitter(rnd Rand) int {
	return rnd.IntN(2*jitterSpan+1) - jitterSpan
}

func pick(rnd Rand, variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	return variants[rnd.IntN(len(variants))]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round(v float64) int {
	return int(math.Round(v))
}

func ratio(found, total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(found) / float64(total)
}

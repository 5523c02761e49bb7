package game

import (
	"math"
	"math/rand"
	"time"
)

// Source yields pseudo-random floats in [0,1).
// *math/rand.Rand satisfies it; tests pass fixed sequences.
type Source interface {
	Float64() float64
}

// NewSource returns a time-seeded source. Not safe for concurrent use.
func NewSource() Source { return rand.New(rand.NewSource(time.Now().UnixNano())) }

// RandInt draws an integer uniformly from the inclusive range [min,max].
// A reversed range yields min.
func RandInt(src Source, min, max int) int {
	if max < min {
		return min
	}
	n := int(math.Floor(float64(min) + float64(max-min+1)*src.Float64()))
	if n > max {
		// guards sources that return exactly 1.0
		n = max
	}
	return n
}

// Shuffle permutes s in place (Fisher-Yates from the end) and returns it.
func Shuffle[T any](src Source, s []T) []T {
	for i := len(s); i > 1; {
		j := int(math.Floor(src.Float64() * float64(i)))
		if j >= i {
			j = i - 1
		}
		i--
		s[i], s[j] = s[j], s[i]
	}
	return s
}

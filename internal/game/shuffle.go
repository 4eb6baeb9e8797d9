// Package game holds the pure word-puzzle mechanics: scrambling a sentence
// into tokens, moving tokens between the available and construction pools,
// and checking the constructed answer.
package game

import (
	"math/rand/v2"
	"slices"
)

// Rand is a source of uniform integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand draws from the runtime generator and is safe for concurrent use.
var DefaultRand Rand = globalRand{}

// Shuffle returns a uniformly random permutation of items (Fisher–Yates).
// The input slice is not modified.
func Shuffle[T any](items []T, rng Rand) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

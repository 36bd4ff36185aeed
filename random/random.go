// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package random

import (
	"math/rand/v2"
)

// Source picks integers uniformly in [0, n)
type Source interface {
	IntN(n int) int
}

type global struct{}

func (global) IntN(n int) int { return rand.IntN(n) }

// Default draws from the runtime's auto-seeded generator and is safe for
// concurrent use
var Default Source = global{}

// Seeded returns a deterministic source for tests and replays.
// The result is not safe for concurrent use.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes list in place with the Fisher-Yates algorithm,
// so every permutation is equally likely
func Shuffle[T any](src Source, list []T) {
	for i := len(list) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		list[i], list[j] = list[j], list[i]
	}
}

// Pick returns a uniformly chosen element; ok is false for an empty list
func Pick[T any](src Source, list []T) (item T, ok bool) {
	if len(list) == 0 {
		return item, false
	}
	return list[src.IntN(len(list))], true
}

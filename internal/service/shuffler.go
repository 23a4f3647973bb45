package service

import (
	"math/rand"
	"time"
)

// Shuffle returns a randomly permuted copy of items using the Fisher-Yates
// algorithm. The input slice is left untouched.
func Shuffle[T any](items []T, r *rand.Rand) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	if r == nil {
		r = newRand()
	}

	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

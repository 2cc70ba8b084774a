// Package testutil provides random-input helpers shared by tests and
// benchmarks.
package testutil

import (
	"math/rand"
	"time"
)

// GenerateRandomInts generates a slice of count random integers, each in the
// range [0, maxVal). Every call seeds a fresh source from the wall clock in
// nanoseconds, so calls made at different instants produce different sequences.
func GenerateRandomInts(count int, maxVal int) []int {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	nums := make([]int, count)
	for i := range nums {
		nums[i] = rng.Intn(maxVal)
	}

	return nums
}

// GeneratePermutedInts generates the integers 0 through count-1 in a random
// order.
func GeneratePermutedInts(count int) []int {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return rng.Perm(count)
}

// GenerateSeededPermutation generates the integers 0 through count-1 in an
// order determined by seed, for tests that need a reproducible shuffle.
func GenerateSeededPermutation(count int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))

	return rng.Perm(count)
}

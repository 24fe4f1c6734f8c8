package rng

import "math/rand"

// countingSource counts the underlying Int63 draws. The count, not the
// number of API calls, is the restore position: rand.Intn can consume
// more than one source value through rejection sampling, so counting at
// the API level would let a restored stream drift.
type countingSource struct {
	src rand.Source
	n   int64
}

func (c *countingSource) Int63() int64 {
	c.n++
	return c.src.Int63()
}

func (c *countingSource) Seed(seed int64) {
	c.src.Seed(seed)
	c.n = 0
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position advances with every underlying draw, enabling save/restore.
type RNG struct {
	seed int64
	cs   *countingSource
	src  *rand.Rand
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	cs := &countingSource{src: rand.NewSource(seed)}
	return &RNG{
		seed: seed,
		cs:   cs,
		src:  rand.New(cs),
	}
}

// Float returns a uniform draw in [0, 1).
func (r *RNG) Float() float64 {
	return r.src.Float64()
}

// Intn returns a random integer in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	return r.src.Intn(n)
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	return r.src.Intn(sides) + 1
}

// OneIn reports a 1-in-n chance. n < 1 always hits.
func (r *RNG) OneIn(n int) bool {
	if n < 1 {
		return true
	}
	return r.src.Intn(n) == 0
}

// Seed returns the seed this RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of underlying draws made since creation.
func (r *RNG) Position() int64 {
	return r.cs.n
}

// RestoreRNG creates an RNG and advances its source to the given
// position. This reproduces the exact RNG state for save/load.
func RestoreRNG(seed int64, position int64) *RNG {
	rng := NewRNG(seed)
	for rng.cs.n < position {
		rng.cs.Int63()
	}
	return rng
}

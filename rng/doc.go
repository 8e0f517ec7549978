// Package rng provides Randomizer, a small deterministic xorshift128+
// generator.
//
// A Randomizer carries its whole state in two 64-bit words and produces a
// stream of bits through [Randomizer.Next]. Every higher-level draw
// (bounded integers, floats, booleans) is derived from that primitive, so two
// generators built from the same seed pair produce identical sequences
// forever.
//
// Randomizer implements [math/rand/v2.Source] and can back a [rand.Rand]:
//
//	r := rand.New(rng.New(1, 2))
//	x := r.Float32()
//
// A Randomizer is not safe for concurrent use.
package rng

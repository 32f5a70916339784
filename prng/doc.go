// Package prng provides small deterministic pseudo-random generators
// (SplitMix and Xorshiro, 32 and 64 bit) for filling values that are
// passed through a triple buffer.
//
// Generators are not safe for concurrent use. Given the same seed they
// always produce the same sequence.
package prng

// Package shuffle provides the deterministic ordering primitives used to
// serve and grade a quiz session without storing the ordering anywhere:
// both code paths re-derive the identical permutation from the session
// identifier.
package shuffle

import "unicode/utf16"

// lcgMultiplier and lcgIncrement are the Numerical Recipes LCG constants.
// The generator is part of the wire contract between the serve and grade
// paths, so the constants must never change.
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// Rand is a deterministic pseudo-random stream seeded from a 32-bit value.
// Same seed, same sequence, on every platform. Not suitable for anything
// security-sensitive.
type Rand struct {
	state uint32
}

// NewRand returns a generator whose output is fully determined by seed.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Float64 advances the generator and returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return float64(r.state) / (1 << 32)
}

// DeriveSeed maps an arbitrary identifier to a non-negative seed using the
// classic 31-multiplier string hash with 32-bit signed wraparound. It
// iterates UTF-16 code units so identifiers containing non-ASCII text hash
// the same way across implementations of this protocol. Distinct casing
// yields distinct seeds; collisions between unrelated identifiers are
// acceptable.
func DeriveSeed(identifier string) uint32 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(identifier)) {
		hash = hash*31 + int32(unit)
	}
	if hash < 0 {
		// Negate in 64-bit space: -MinInt32 overflows int32.
		return uint32(-int64(hash))
	}
	return uint32(hash)
}

// Shuffle returns a new slice with the elements of items permuted by a
// Fisher-Yates walk driven by the seeded generator. The input slice is
// never modified. Sequences of length 0 or 1 come back as an unchanged
// copy with no random draws.
func Shuffle[T any](items []T, seed uint32) []T {
	result := make([]T, len(items))
	copy(result, items)

	r := NewRand(seed)
	for i := len(result) - 1; i > 0; i-- {
		j := int(r.Float64() * float64(i+1))
		result[i], result[j] = result[j], result[i]
	}

	return result
}

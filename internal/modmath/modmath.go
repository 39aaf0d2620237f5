// Package modmath implements overflow-proof modular reduction.
//
// The reductions are exact even when the native-width intermediate of the
// underlying operation would overflow: sums carry into a 65-bit value and
// products into a 128-bit value before the modulus is applied.
package modmath

import (
	"math/bits"
)

// AddMod returns (a + b) mod m. m must be nonzero.
func AddMod(a, b, m uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry == 0 {
		return sum % m
	}
	// The 65-bit sum is carry*2^64 + sum. Reducing the high word first
	// keeps it below m for Div64; it only subtracts multiples of m*2^64,
	// which leaves the remainder unchanged.
	_, rem := bits.Div64(carry%m, sum, m)
	return rem
}

// MulMod returns (a * b) mod m. m must be nonzero.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % m
	}
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"math"
	"math/bits"
)

// powers of ten above this one are not finite float64 numbers.
const maxFloat64Pow = 308

var (
	decimalFactorTable = [...]float64{ // exact up to 1e22
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
		1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20,
		1e21, 1e22,
	}
)

// Pow10 returns 10^pow.
// Non-negative powers up to 22 come from a table and are exact.
func Pow10(pow int) float64 {
	if pow >= 0 && pow < len(decimalFactorTable) {
		return decimalFactorTable[pow]
	}
	return math.Pow10(pow)
}

// AddUint32 returns a+b, and false if the sum does not fit 32 bits.
func AddUint32(a, b uint32) (uint32, bool) {
	sum, carry := bits.Add32(a, b, 0)
	return sum, carry == 0
}

// RoundUint64 rounds a non-negative f to the nearest integer, halves away from zero.
// Values out of the uint64 range are clamped.
func RoundUint64(f float64) uint64 {
	if f <= 0 || math.IsNaN(f) {
		return 0
	}
	r := math.Round(f)
	if r >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(r)
}

// IsFinite returns true if f is neither an infinity nor a not-a-number.
func IsFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// NormFloat64 calculates such e, that 1 <= f*(10**-e) < 10.
// returns f*(10**-e), e
func NormFloat64(f float64) (norm float64, exp int) {
	if f <= 0 || !IsFinite(f) {
		return 0, 0
	}
	exp = int(math.Floor(math.Log10(f)))
	switch {
	case exp < -maxFloat64Pow: // 10^-exp overflows for subnormals.
		norm = f * Pow10(maxFloat64Pow) * Pow10(-exp-maxFloat64Pow)
	case exp < 0:
		norm = f * Pow10(-exp)
	default:
		norm = f / Pow10(exp)
	}
	// log10 may be off by one near the powers of ten.
	switch {
	case norm >= 10:
		norm /= 10
		exp++
	case norm < 1:
		norm *= 10
		exp--
	}
	return norm, exp
}

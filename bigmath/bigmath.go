// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bigmath provides comparison helpers for bignum values.
// All functions return one of their arguments unchanged.
package bigmath

import "github.com/avdva/bignum"

// Max returns the larger of a and b. If they are equal, a is returned.
func Max(a, b bignum.Value) bignum.Value {
	if a.Gte(b) {
		return a
	}
	return b
}

// Min returns the smaller of a and b. If they are equal, a is returned.
func Min(a, b bignum.Value) bignum.Value {
	if a.Lte(b) {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi]. If lo > hi, lo is returned.
func Clamp(v, lo, hi bignum.Value) bignum.Value {
	return Max(lo, Min(v, hi))
}

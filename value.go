// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bignum implements a bounded scientific-notation number,
// where a float32 significand is scaled by an unsigned power of ten.
// Can be used to represent values far beyond the float64 range,
// like resources in incremental games, when approximate arithmetic is good enough.
package bignum

import (
	"math"

	"github.com/avdva/bignum/internal/mathutil"
)

const (
	// SignificanceThreshold is the maximum exponent difference at which the smaller
	// operand still contributes to a sum or a difference.
	SignificanceThreshold = 16

	// MinString is the textual form of Min.
	MinString = "1"
	// MaxString is the textual form of Max.
	MaxString = "9.999e4294967295"

	maxExponent = math.MaxUint32
	// values with exponents up to this one may have significands below 1.
	maxSubnormalExponent = 1
	// larger exponents overflow float64.
	maxFloat64Exponent = 308
)

var (
	zero Value

	// Zero is a zero value.
	Zero = zero
	// Min is the smallest value an operation is expected to produce, 1.0e0.
	Min = Value{base: 1}
	// Max is the maximum documented value, 9.999e4294967295.
	Max = Value{base: 9.999, exponent: maxExponent}
)

// Value is a non-negative number base*10^exponent.
//   - if exponent > 1, base is in [1, 10);
//   - if exponent is 0 or 1, base is in (0, 10);
//   - if base is 0, exponent is 0.
//
// Negative numbers aren't supported.
// Values are comparable with ==, which is the same as Eq, and can be used as map keys.
type Value struct {
	base     float32
	exponent uint32
}

// New returns a normalized value for given base and exponent.
// Returns ErrExceededLimit if the value needs an exponent beyond math.MaxUint32,
// and ErrInvalid for negative bases and not-a-numbers.
func New(base float32, exponent uint32) (Value, error) {
	return normalize(float64(base), uint64(exponent))
}

// MustNew is like New, but panics on error.
func MustNew(base float32, exponent uint32) Value {
	v, err := New(base, exponent)
	if err != nil {
		panic(err)
	}
	return v
}

// FromUint64 returns a value for given uint64 number.
func FromUint64(u uint64) Value {
	v, _ := normalize(float64(u), 0) // uint64 never exceeds the range.
	return v
}

// FromInt64 returns a value for given int64 number.
// Returns ErrInvalid for negative numbers.
func FromInt64(i int64) (Value, error) {
	if i < 0 {
		return zero, ErrInvalid
	}
	return FromUint64(uint64(i)), nil
}

// FromFloat32 returns a value for given float32.
func FromFloat32(f float32) (Value, error) {
	return New(f, 0)
}

// FromFloat64 returns a value for given float64.
// Returns an error for negative values, infinities, and not-a-numbers.
func FromFloat64(f float64) (Value, error) {
	return normalize(f, 0)
}

// normalize is the only place where values are constructed.
// it calculates the significand in float64 and rounds it to a float32 once.
func normalize(base float64, e uint64) (Value, error) {
	switch {
	case math.IsNaN(base) || base < 0:
		return zero, ErrInvalid
	case math.IsInf(base, 1):
		return zero, ErrExceededLimit
	case base == 0:
		return zero, nil
	}
	if base >= 10 {
		var inc int
		base, inc = mathutil.NormFloat64(base)
		e += uint64(inc)
	}
	for base < 1 && e > maxSubnormalExponent {
		base *= 10
		e--
	}
	b := float32(base)
	switch {
	case b == 0: // float32 underflow
		return zero, nil
	case b >= 10: // rounding carried into the next digit
		b = 1
		e++
	}
	if e > maxExponent {
		return zero, ErrExceededLimit
	}
	return Value{base: b, exponent: uint32(e)}, nil
}

// Base returns v's significand.
func (v Value) Base() float32 {
	return v.base
}

// Exponent returns v's power of ten.
func (v Value) Exponent() uint32 {
	return v.exponent
}

// IsZero returns true if the value has zero significand.
func (v Value) IsZero() bool {
	return v.base == 0
}

// Float64 returns a float64 value. Returns +Inf if v exceeds the float64 range.
func (v Value) Float64() float64 {
	switch {
	case v.base == 0:
		return 0
	case v.exponent > maxFloat64Exponent:
		return math.Inf(1)
	}
	return float64(v.base) * mathutil.Pow10(int(v.exponent))
}

// Eq returns true if both values have equal bases and exponents.
func (v Value) Eq(other Value) bool {
	return v == other
}

// Cmp compares two values. Exponents are compared first, then bases.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value) Cmp(other Value) int {
	switch {
	case v.exponent > other.exponent:
		return 1
	case v.exponent < other.exponent:
		return -1
	case v.base > other.base:
		return 1
	case v.base < other.base:
		return -1
	default:
		return 0
	}
}

// Lt returns v < other.
func (v Value) Lt(other Value) bool {
	return v.Cmp(other) < 0
}

// Lte returns v <= other.
func (v Value) Lte(other Value) bool {
	return v.Cmp(other) <= 0
}

// Gt returns v > other.
func (v Value) Gt(other Value) bool {
	return v.Cmp(other) > 0
}

// Gte returns v >= other.
func (v Value) Gte(other Value) bool {
	return v.Cmp(other) >= 0
}

// Hash returns a hash code. Equal values have equal hashes, and vice versa.
func (v Value) Hash() uint64 {
	return uint64(math.Float32bits(v.base))<<32 | uint64(v.exponent)
}

// Add sums two values.
// If the exponents differ by more than SignificanceThreshold, the operand
// with the larger exponent is returned as is.
// If the result overflows the type limit, Max is returned.
func (v Value) Add(other Value) Value {
	// first, check for obvious cases, when one of the arguments is zero
	if v.IsZero() {
		return other
	}
	if other.IsZero() {
		return v
	}
	hi, lo, ediff := byExponent(v, other)
	if ediff > SignificanceThreshold {
		return hi
	}
	sum := float64(hi.base) + float64(lo.base)/mathutil.Pow10(int(ediff))
	result, err := normalize(sum, uint64(hi.exponent))
	if err != nil {
		return Max
	}
	return result
}

// Sub returns v - other.
// The result never goes below Min: if v <= other, or if the difference is less than 1, Min is returned.
func (v Value) Sub(other Value) Value {
	if v.Lte(other) {
		return Min
	}
	// v > other, so v has an equal or larger exponent.
	ediff := v.exponent - other.exponent
	if ediff > SignificanceThreshold {
		return v
	}
	diff := float64(v.base) - float64(other.base)/mathutil.Pow10(int(ediff))
	// sub-normalized results have small exponents, so the magnitude fits float64.
	if diff <= 0 || (v.exponent <= maxSubnormalExponent && diff*mathutil.Pow10(int(v.exponent)) < 1) {
		return Min
	}
	result, err := normalize(diff, uint64(v.exponent))
	if err != nil {
		return Min
	}
	return result
}

// Mul returns v * other.
// Returns ErrExceededLimit if the result overflows the type limit.
func (v Value) Mul(other Value) (Value, error) {
	// a*10^e1 * b*10^e2 = a * b * 10^(e1+e2)
	if v.IsZero() || other.IsZero() {
		return zero, nil
	}
	e, ok := mathutil.AddUint32(v.exponent, other.exponent)
	if !ok {
		return zero, ErrExceededLimit
	}
	return normalize(float64(v.base)*float64(other.base), uint64(e))
}

// Div returns v / other.
// Returns ErrDivideByZero if other is zero, and ErrBelowFloor if v has a smaller exponent than other.
func (v Value) Div(other Value) (Value, error) {
	if other.IsZero() {
		return zero, ErrDivideByZero
	}
	if v.exponent < other.exponent {
		return zero, ErrBelowFloor
	}
	// a*10^e1 / b*10^e2 = (a/b) * 10^(e1-e2)
	return normalize(float64(v.base)/float64(other.base), uint64(v.exponent-other.exponent))
}

// MulFloat64 multiplies v by f.
// Returns ErrInvalid for negative factors and not-a-numbers.
func (v Value) MulFloat64(f float64) (Value, error) {
	switch {
	case f < 0 || math.IsNaN(f):
		return zero, ErrInvalid
	case v.IsZero() || f == 0:
		return zero, nil
	case math.IsInf(f, 1):
		return zero, ErrExceededLimit
	}
	// the factor's power of ten goes to the exponent, so that huge factors don't overflow float64.
	norm, pow := mathutil.NormFloat64(f)
	return scale(float64(v.base)*norm, int64(v.exponent)+int64(pow))
}

// DivFloat64 divides v by f.
// Returns ErrDivideByZero if f is zero, and ErrInvalid for negative factors and not-a-numbers.
func (v Value) DivFloat64(f float64) (Value, error) {
	switch {
	case f < 0 || math.IsNaN(f):
		return zero, ErrInvalid
	case f == 0:
		return zero, ErrDivideByZero
	case v.IsZero() || math.IsInf(f, 1):
		return zero, nil
	}
	norm, pow := mathutil.NormFloat64(f)
	return scale(float64(v.base)/norm, int64(v.exponent)-int64(pow))
}

// scale normalizes base*10^e, where e may be negative.
func scale(base float64, e int64) (Value, error) {
	if e < 0 {
		return normalize(base/mathutil.Pow10(int(-e)), 0)
	}
	return normalize(base, uint64(e))
}

// byExponent orders two values so, that hi has an equal or larger exponent.
func byExponent(a, b Value) (hi, lo Value, ediff uint32) {
	if a.exponent >= b.exponent {
		return a, b, a.exponent - b.exponent
	}
	return b, a, b.exponent - a.exponent
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// digits of a decimal coefficient, that can affect a float32 significand.
const maxDecimalDigits = 17

// FromDecimal returns a value for given decimal number.
// Only the 17 most significant digits are taken into account.
// Returns ErrInvalid for negative numbers.
func FromDecimal(d decimal.Decimal) (Value, error) {
	switch d.Sign() {
	case -1:
		return zero, ErrInvalid
	case 0:
		return zero, nil
	}
	digits := d.Coefficient().String()
	// the exponent of the most significant digit.
	e := int64(d.Exponent()) + int64(len(digits)-1)
	if len(digits) > maxDecimalDigits {
		digits = digits[:maxDecimalDigits]
	}
	mant, err := strconv.ParseFloat(digits[:1]+"."+digits[1:], 64)
	if err != nil {
		return zero, err
	}
	return scale(mant, e)
}

// Decimal returns v as a decimal number, where the base is taken in its shortest float32 form.
// Returns ErrExceededLimit if the exponent exceeds math.MaxInt32.
func (v Value) Decimal() (decimal.Decimal, error) {
	if v.exponent > math.MaxInt32 {
		return decimal.Zero, ErrExceededLimit
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(float64(v.base), 'f', -1, 32))
	if err != nil {
		return decimal.Zero, err
	}
	return d.Shift(int32(v.exponent)), nil
}

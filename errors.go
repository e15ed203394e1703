// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import "github.com/zeebo/errs"

var (
	// Error is the class of all arithmetic and construction errors.
	Error = errs.Class("bignum")

	// ParseError is the class of errors returned for malformed text.
	// Use ParseError.Has(err) to check for a parsing failure.
	ParseError = errs.Class("bignum: parsing failed")
)

var (
	// ErrExceededLimit is returned if a result needs an exponent beyond math.MaxUint32.
	ErrExceededLimit = Error.New("exceeded the maximum representable value")
	// ErrDivideByZero is returned on division by a zero value or factor.
	ErrDivideByZero = Error.New("division by zero")
	// ErrBelowFloor is returned by Div if the dividend has a smaller exponent than the divisor.
	ErrBelowFloor = Error.New("result is below the minimum representable value")
	// ErrInvalid is returned for negative values and not-a-numbers.
	ErrInvalid = Error.New("negative value or not a number")
)

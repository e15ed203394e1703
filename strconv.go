// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/avdva/bignum/internal/mathutil"
	"github.com/avdva/bignum/internal/strutil"
)

const (
	// values with exponents up to this one are formatted as integers.
	maxExpandedExponent = 3
	maxExpandedValue    = 10000
	scientificPrec      = 2
	groupSep            = ','
)

// Parse parses a string like "1.5e3" or "12345" into a value.
// Leading and trailing spaces are ignored, the exponent marker is case-insensitive.
// Significands may have any number of digits.
// Negative values and negative exponents are rejected.
// All syntax errors belong to ParseError; ErrExceededLimit is returned for values out of range.
func Parse(s string) (Value, error) {
	s, offset, err := strutil.Prepare(s)
	if err != nil {
		return zero, ParseError.Wrap(err)
	}
	sig, exp, hasExp := strutil.Split(s)
	if err := strutil.CheckSignificand(sig, offset); err != nil {
		return zero, ParseError.Wrap(err)
	}
	var e uint64
	if hasExp {
		digits, err := strutil.CheckExponent(exp, offset+len(sig)+1)
		if err != nil {
			return zero, ParseError.Wrap(err)
		}
		if e, err = strconv.ParseUint(digits, 10, 32); err != nil {
			return zero, ParseError.Wrap(err)
		}
	}
	sig, shift := strutil.ShiftPoint(sig)
	f, err := strconv.ParseFloat(sig, 64)
	if err != nil {
		return zero, ParseError.Wrap(err)
	}
	return normalize(f, e+uint64(shift))
}

// FromString is an alias for Parse.
func FromString(s string) (Value, error) {
	return Parse(s)
}

// MustFromString is like Parse, but panics on error.
func MustFromString(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns a string representation of the value.
// Values with exponents up to 3 are printed as integers, like "1500",
// other values use the scientific notation with two decimals, like "2.34e10".
func (v Value) String() string {
	var builder strings.Builder
	v.toStringsBuilder(&builder, false)
	return builder.String()
}

// Grouped is like String, but separates thousands with commas, like "1,500".
func (v Value) Grouped() string {
	var builder strings.Builder
	v.toStringsBuilder(&builder, true)
	return builder.String()
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {%v, %v}", v.base, v.exponent)
}

// Format implements fmt.Formatter.
// %e always uses the scientific notation, %#v is GoString, other verbs use String.
func (v Value) Format(fs fmt.State, c rune) {
	var builder strings.Builder
	switch {
	case c == 'e':
		v.writeScientific(&builder)
	case c == 'v' && fs.Flag('#'):
		builder.WriteString(v.GoString())
	default:
		v.toStringsBuilder(&builder, false)
	}
	fs.Write([]byte(builder.String()))
}

// MarshalText implements encoding.TextMarshaler.
// The result is lossless, the base is printed with the shortest float32 representation.
func (v Value) MarshalText() ([]byte, error) {
	b := strconv.AppendFloat(nil, float64(v.base), 'f', -1, 32)
	if v.exponent != 0 {
		b = append(b, 'e')
		b = strconv.AppendUint(b, uint64(v.exponent), 10)
	}
	return b, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// v is not changed on error.
func (v *Value) UnmarshalText(data []byte) error {
	value, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = value
	return nil
}

func (v Value) toStringsBuilder(builder *strings.Builder, grouped bool) {
	if v.exponent > maxExpandedExponent {
		v.writeScientific(builder)
		return
	}
	expanded := mathutil.RoundUint64(float64(v.base) * mathutil.Pow10(int(v.exponent)))
	if expanded >= maxExpandedValue { // rounded up to the next exponent
		v.writeScientific(builder)
		return
	}
	s := strconv.FormatUint(expanded, 10)
	if grouped {
		s = strutil.Group(s, groupSep)
	}
	builder.WriteString(s)
}

func (v Value) writeScientific(builder *strings.Builder) {
	base, e := strconv.FormatFloat(float64(v.base), 'f', scientificPrec, 32), v.exponent
	if base == "10.00" { // rounding carried into the next digit
		if e == math.MaxUint32 {
			base = "9.99"
		} else {
			base, e = "1.00", e+1
		}
	}
	builder.WriteString(base)
	builder.WriteByte('e')
	builder.WriteString(strconv.FormatUint(uint64(e), 10))
}

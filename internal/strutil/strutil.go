// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	delim       = '.'
	expMarker   = 'e'
	groupSize   = 3
	errEmpty    = "empty input"
	errNegative = "negative value"
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Pos returns the 1-based position of the symbol that caused err, if known.
func Pos(err error) (pos int, ok bool) {
	var pe *posError
	if !errors.As(err, &pe) {
		return 0, false
	}
	return pe.pos, true
}

// Prepare cleans the string from surrounding spaces and folds its case.
// Returns the number of bytes trimmed from the left.
func Prepare(s string) (prepared string, offset int, err error) {
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset = len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, errors.New(errEmpty)
	}
	if s[0] == '-' {
		return "", 0, errors.New(errNegative)
	}
	return strings.ToLower(s), offset, nil
}

// Split splits a prepared string at the exponent marker.
func Split(s string) (significand, exponent string, hasExponent bool) {
	idx := strings.IndexByte(s, expMarker)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}

// CheckSignificand checks that s is an unsigned decimal number,
// with an optional leading '+' and at most one delimiter.
// offset is the number of bytes preceding s in the original input.
func CheckSignificand(s string, offset int) error {
	delimPos, digits := -1, 0
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits++
		case r == delim:
			if delimPos >= 0 {
				return newPosError("unexpected delimiter", offset+i+1)
			}
			delimPos = i
		case r == '+' && i == 0:
		default:
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), offset+i+1)
		}
	}
	if digits == 0 {
		return newPosError("no digits in significand", offset+1)
	}
	return nil
}

// CheckExponent checks that s is an unsigned decimal integer with an optional leading '+'.
// Returns s without the sign.
func CheckExponent(s string, offset int) (string, error) {
	if len(s) == 0 {
		return "", newPosError("empty exponent", offset)
	}
	switch s[0] {
	case '-':
		return "", newPosError("negative exponent", offset+1)
	case '+':
		s = s[1:]
		offset++
		if len(s) == 0 {
			return "", newPosError("empty exponent", offset)
		}
	}
	for i, r := range s {
		if r < '0' || r > '9' {
			return "", newPosError(fmt.Sprintf("unexpected symbol %q", r), offset+i+1)
		}
	}
	return s, nil
}

// ShiftPoint moves the delimiter of a checked significand right after its first integer digit,
// so that long integer parts don't overflow float64.
// Returns the shifted significand and the number of positions the delimiter was moved by.
func ShiftPoint(s string) (shifted string, shift int) {
	s = strings.TrimPrefix(s, "+")
	integer, fraction := s, ""
	if idx := strings.IndexByte(s, delim); idx >= 0 {
		integer, fraction = s[:idx], s[idx+1:]
	}
	integer = strings.TrimLeft(integer, "0")
	if len(integer) <= 1 {
		return s, 0
	}
	return integer[:1] + string(delim) + integer[1:] + fraction, len(integer) - 1
}

// Group inserts sep between every three digits, counting from the right.
func Group(digits string, sep byte) string {
	if len(digits) <= groupSize {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/groupSize)
	head := len(digits) % groupSize
	if head == 0 {
		head = groupSize
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += groupSize {
		b.WriteByte(sep)
		b.WriteString(digits[i : i+groupSize])
	}
	return b.String()
}

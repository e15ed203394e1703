// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package field binds a bignum value to an editable text, as shown by an editor text box.
// The text is re-parsed on every edit. Invalid text stays displayed, but is not committed.
package field

import "github.com/avdva/bignum"

// Field is an editable value.
// It is not safe for concurrent use.
type Field struct {
	value bignum.Value
	text  string
	err   error
}

// New returns a field displaying v.
func New(v bignum.Value) *Field {
	f := &Field{}
	f.Set(v)
	return f
}

// Value returns the last committed value.
func (f *Field) Value() bignum.Value {
	return f.value
}

// Raw returns the stored fields of the committed value.
func (f *Field) Raw() (base float32, exponent uint32) {
	return f.value.Base(), f.value.Exponent()
}

// Text returns the displayed text.
func (f *Field) Text() string {
	return f.text
}

// Err returns the error of the last edit, if it was not committed.
func (f *Field) Err() error {
	return f.err
}

// Dirty returns true if the displayed text was not committed.
func (f *Field) Dirty() bool {
	return f.err != nil
}

// Set commits v and displays it.
func (f *Field) Set(v bignum.Value) {
	f.value, f.text, f.err = v, v.String(), nil
}

// Edit parses text and commits the result.
// On error the value stays untouched and text remains displayed.
func (f *Field) Edit(text string) error {
	v, err := bignum.Parse(text)
	if err != nil {
		f.text, f.err = text, err
		return err
	}
	f.Set(v)
	return nil
}

// Revert discards uncommitted text and displays the committed value.
func (f *Field) Revert() {
	f.Set(f.value)
}

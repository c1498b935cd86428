package io

import (
	"io"
)

// Tape writes emitted digits to an io.Writer as a comma separated list.
type Tape struct {
	Output io.Writer

	written int
}

var _ Channel = (*Tape)(nil)

// Rewind starts a new list; the next digit is written without a separator.
func (tc *Tape) Rewind() {
	tc.written = 0
}

// Send writes a digit, preceded by a comma unless it is the first since
// the last Rewind.
func (tc *Tape) Send(digit uint8) (err error) {
	if tc.Output == nil {
		return
	}

	buf := make([]byte, 0, 2)
	if tc.written > 0 {
		buf = append(buf, ',')
	}
	buf = append(buf, '0'+(digit&7))

	_, err = tc.Output.Write(buf)
	if err != nil {
		return
	}

	tc.written++

	return
}

// Written returns the count of digits written since the last Rewind.
func (tc *Tape) Written() int {
	return tc.written
}

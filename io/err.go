package io

import (
	"github.com/ezrec/tribit/translate"
)

var f = translate.From

// ErrMismatch reports the first emitted digit that did not match.
// Want is -1 when the digit arrived after the expected sequence ended.
type ErrMismatch struct {
	Index int
	Want  int
	Got   int
}

func (err *ErrMismatch) Error() string {
	if err.Want < 0 {
		return f("output %d: unexpected digit %d past end", err.Index, err.Got)
	}
	return f("output %d: got %d, want %d", err.Index, err.Got, err.Want)
}

// Is matches any *ErrMismatch.
func (err *ErrMismatch) Is(target error) (ok bool) {
	_, ok = target.(*ErrMismatch)
	return
}

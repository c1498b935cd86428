package emulator

import (
	"github.com/ezrec/tribit/cpu"
	"github.com/ezrec/tribit/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip   int
	Code cpu.Code
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("ip %02d (%v) %v", err.Ip, err.Code, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

package seed

import (
	"errors"

	"github.com/ezrec/tribit/translate"
)

var f = translate.From

var (
	ErrSearchDepth = errors.New(f("program longer than search depth"))
)

// ErrStructure reports a program that does not have the one digit per
// loop iteration shape the search depends on.
type ErrStructure struct {
	Reason string
}

func (err *ErrStructure) Error() string {
	return f("program structure: %v", err.Reason)
}

// Is matches any *ErrStructure.
func (err *ErrStructure) Is(target error) (ok bool) {
	_, ok = target.(*ErrStructure)
	return
}

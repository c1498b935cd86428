package cpu

import (
	"errors"

	"github.com/ezrec/tribit/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpHalted      = errors.New(f("ip halted"))
	ErrIpAlign       = errors.New(f("ip not aligned"))
	ErrTickLimit     = errors.New(f("tick limit exceeded"))
	ErrComboReserved = errors.New(f("combo operand 7 reserved"))
	ErrJumpTarget    = errors.New(f("jump target not aligned"))

	// Program errors
	ErrProgramOdd     = errors.New(f("program length odd"))
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrOperandInvalid = errors.New(f("operand invalid"))

	// Assembler errors
	ErrEquateSyntax      = errors.New(f(".equ syntax"))
	ErrEquateDuplicate   = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate    = errors.New(f("label duplicated"))
	ErrLabelRange        = errors.New(f("label out of literal range"))
	ErrOpcodeExtraArgs   = errors.New(f("excessive arguments"))
	ErrOperandMissing    = errors.New(f("operand missing"))
	ErrRegisterInvalid   = errors.New(f("register invalid"))
	ErrRegisterSyntax    = errors.New(f("register syntax"))
	ErrProgramMixed      = errors.New(f("Program: listing mixed with mnemonics"))
	ErrProgramDuplicate  = errors.New(f("Program: duplicated"))
	ErrExpressionInvalid = errors.New(f("expression invalid"))
)

// ErrOpcode identifies the instruction that failed.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode %d,%d (%v)", uint8(eo.Op), eo.Operand, Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrCell reports a program cell outside of the 0-7 range.
type ErrCell struct {
	Index int
	Value uint8
}

func (err ErrCell) Error() string {
	return f("cell %d value %d out of range", err.Index, err.Value)
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

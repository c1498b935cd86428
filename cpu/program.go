package cpu

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/tribit/internal"
)

// Program is an immutable sequence of 3-bit cells, read as
// (opcode, operand) pairs.
type Program struct {
	cells []uint8
}

// NewProgram validates and copies a cell sequence into a Program.
func NewProgram(cells []uint8) (prog *Program, err error) {
	if len(cells)%2 != 0 {
		err = ErrProgramOdd
		return
	}

	for n, cell := range cells {
		if cell > 7 {
			err = ErrCell{Index: n, Value: cell}
			return
		}
	}

	prog = &Program{
		cells: slices.Clone(cells),
	}

	return
}

// Len returns the number of cells in the program.
func (prog *Program) Len() int {
	return len(prog.cells)
}

// Cells returns a copy of the program cells.
func (prog *Program) Cells() []uint8 {
	return slices.Clone(prog.cells)
}

// Valid is true if ip addresses a whole instruction pair.
func (prog *Program) Valid(ip int) bool {
	return ip >= 0 && ip <= len(prog.cells)-2
}

// Code decodes the instruction at ip.
func (prog *Program) Code(ip int) (code Code, err error) {
	if !prog.Valid(ip) {
		err = ErrIpHalted
		return
	}
	if ip%2 != 0 {
		err = ErrIpAlign
		return
	}

	return DecodeCode(prog.cells[ip], prog.cells[ip+1])
}

// Codes iterates over the instruction pairs, with their ip.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for ip := 0; prog.Valid(ip); ip += 2 {
			code := Code{Op: Opcode(prog.cells[ip]), Operand: prog.cells[ip+1]}
			if !yield(ip, code) {
				return
			}
		}
	}
}

// Equal is true if the digit sequence is identical to the program cells.
func (prog *Program) Equal(digits []uint8) bool {
	return slices.Equal(prog.cells, digits)
}

// String returns the program as a comma separated cell list.
func (prog *Program) String() string {
	return internal.JoinDigits(prog.cells)
}

// Listing returns a disassembly of the program, one instruction per line.
func (prog *Program) Listing() string {
	var sb strings.Builder
	for ip, code := range prog.Codes() {
		fmt.Fprintf(&sb, "%02d: %v\n", ip, code)
	}
	return sb.String()
}

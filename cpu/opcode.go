package cpu

import (
	"errors"
	"fmt"
)

// Opcode is an instruction operation.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADV = Opcode(0) // adv
	OP_BXL = Opcode(1) // bxl
	OP_BST = Opcode(2) // bst
	OP_JNZ = Opcode(3) // jnz
	OP_BXC = Opcode(4) // bxc
	OP_OUT = Opcode(5) // out
	OP_BDV = Opcode(6) // bdv
	OP_CDV = Opcode(7) // cdv
)

// Register bank indexes.
const (
	REG_A = 0
	REG_B = 1
	REG_C = 2
)

// Combo operand values that resolve to a register, and the reserved value.
const (
	COMBO_A        = uint8(4)
	COMBO_B        = uint8(5)
	COMBO_C        = uint8(6)
	COMBO_RESERVED = uint8(7)
)

// OperandKind describes how an opcode interprets its operand.
type OperandKind int

const (
	OPERAND_COMBO   = OperandKind(0) // combo: literal 0-3, or register A/B/C
	OPERAND_LITERAL = OperandKind(1) // literal 0-7
	OPERAND_IGNORED = OperandKind(2) // operand is not used
)

// Operand returns how the opcode interprets its operand.
func (op Opcode) Operand() OperandKind {
	switch op {
	case OP_BXL, OP_JNZ:
		return OPERAND_LITERAL
	case OP_BXC:
		return OPERAND_IGNORED
	}
	return OPERAND_COMBO
}

// Code is a single decoded (opcode, operand) pair.
type Code struct {
	Op      Opcode
	Operand uint8
}

// DecodeCode decodes a pair of program cells.
func DecodeCode(op, operand uint8) (code Code, err error) {
	code = Code{Op: Opcode(op), Operand: operand}
	if op > 7 || operand > 7 {
		err = errors.Join(ErrOpcode(code), ErrOpcodeInvalid)
		return
	}
	return
}

// Cells returns the encoding of the code as program cells.
func (code Code) Cells() [2]uint8 {
	return [2]uint8{uint8(code.Op), code.Operand}
}

// comboName names the combo operands.
var comboName = [8]string{"0", "1", "2", "3", "a", "b", "c", "7"}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	switch code.Op.Operand() {
	case OPERAND_IGNORED:
		if code.Operand == 0 {
			out = code.Op.String()
		} else {
			out = fmt.Sprintf("%v %d", code.Op, code.Operand)
		}
	case OPERAND_LITERAL:
		out = fmt.Sprintf("%v %d", code.Op, code.Operand)
	default:
		operand := fmt.Sprintf("%d", code.Operand)
		if int(code.Operand) < len(comboName) {
			operand = comboName[code.Operand]
		}
		out = fmt.Sprintf("%v %v", code.Op, operand)
	}

	return
}

// Package cpu implements the three-bit register machine and its assembler.
//
// The machine has three unsigned registers (A, B, C) and an instruction
// pointer (IP) over an immutable program of 3-bit cells, read as
// (opcode, operand) pairs. Eight opcodes shift, xor, jump and emit digits.
// Operands are either literal, or "combo" operands resolving 0-3 to
// themselves and 4-6 to the live value of A, B or C.
//
// The assembler reads puzzle style listings ("Register A: 729",
// "Program: 0,1,5,4,3,0") as well as mnemonic source with labels, equates,
// and compile-time expression evaluation.
package cpu

package seed

import (
	"github.com/ezrec/tribit/cpu"
)

// CheckStructure verifies that a program is a single loop which emits one
// digit per pass and shifts A right by three bits per pass:
//   - the last instruction is `jnz 0`, and there is no other jnz
//   - there is exactly one `out`
//   - the only write to A is a single `adv 3`
//   - the digit emitted does not depend on B or C left over from the
//     previous pass
func CheckStructure(prog *cpu.Program) (err error) {
	n := prog.Len()
	if n < 2 {
		return &ErrStructure{Reason: f("no instructions")}
	}

	var outs, shifts, jumps int
	for ip, code := range prog.Codes() {
		switch code.Op {
		case cpu.OP_JNZ:
			if ip != n-2 {
				return &ErrStructure{Reason: f("%02d: %v before the end of the loop", ip, code)}
			}
			if code.Operand != 0 {
				return &ErrStructure{Reason: f("%02d: %v does not restart the loop", ip, code)}
			}
			jumps++
		case cpu.OP_OUT:
			outs++
		case cpu.OP_ADV:
			if code.Operand != 3 {
				return &ErrStructure{Reason: f("%02d: %v is not a 3 bit shift", ip, code)}
			}
			shifts++
		}
	}

	err = checkCarry(prog)
	if err != nil {
		return
	}

	switch {
	case jumps != 1:
		err = &ErrStructure{Reason: f("no closing jnz 0")}
	case outs != 1:
		err = &ErrStructure{Reason: f("%d out instructions, need 1", outs)}
	case shifts != 1:
		err = &ErrStructure{Reason: f("%d adv instructions, need 1", shifts)}
	}

	return
}

// checkCarry follows which of B and C still hold a value from the previous
// pass, and rejects a pass whose `out` reads one of them.
func checkCarry(prog *cpu.Program) (err error) {
	// B and C are stale at the start of a pass.
	stale := [3]bool{cpu.REG_B: true, cpu.REG_C: true}

	combo := func(operand uint8) bool {
		switch operand {
		case cpu.COMBO_B:
			return stale[cpu.REG_B]
		case cpu.COMBO_C:
			return stale[cpu.REG_C]
		}
		return false
	}

	for ip, code := range prog.Codes() {
		switch code.Op {
		case cpu.OP_BST, cpu.OP_BDV:
			stale[cpu.REG_B] = combo(code.Operand)
		case cpu.OP_CDV:
			stale[cpu.REG_C] = combo(code.Operand)
		case cpu.OP_BXC:
			stale[cpu.REG_B] = stale[cpu.REG_B] || stale[cpu.REG_C]
		case cpu.OP_OUT:
			if combo(code.Operand) {
				return &ErrStructure{Reason: f("%02d: %v reads a register from the previous pass", ip, code)}
			}
		}
	}

	return
}

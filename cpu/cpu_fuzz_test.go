package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzExecute(f *testing.F) {
	for op := range uint8(8) {
		for operand := range uint8(8) {
			f.Add(op, operand, uint64(0o1234567), uint64(5), uint64(9))
			f.Add(op, operand, uint64(0), uint64(0), uint64(0))
		}
	}

	f.Fuzz(func(t *testing.T, op uint8, operand uint8, a, b, c uint64) {
		assert := assert.New(t)

		op &= 7
		operand &= 7

		code := Code{Op: Opcode(op), Operand: operand}
		st := State{Register: [3]uint64{a, b, c}, Ip: 4}
		prior := st

		next, digit, emitted, err := st.Execute(code)

		// The receiver is never modified.
		assert.Equal(prior, st)

		if err != nil {
			switch {
			case errors.Is(err, ErrComboReserved):
				assert.Equal(COMBO_RESERVED, operand, code.String())
				assert.Equal(OPERAND_COMBO, code.Op.Operand(), code.String())
			case errors.Is(err, ErrJumpTarget):
				assert.Equal(OP_JNZ, code.Op)
				assert.NotEqual(uint64(0), a)
				assert.Equal(uint8(1), operand&1)
			default:
				assert.NoError(err, code.String())
			}
			assert.Equal(prior, next)
			return
		}

		assert.Equal(code.Op == OP_OUT, emitted, code.String())
		assert.LessOrEqual(digit, uint8(7))

		switch {
		case code.Op == OP_JNZ && a != 0:
			assert.Equal(int(operand), next.Ip)
		default:
			assert.Equal(prior.Ip+2, next.Ip, code.String())
		}

		// Only the documented register is written.
		switch code.Op {
		case OP_ADV:
			assert.Equal(prior.Register[1:], next.Register[1:])
			assert.LessOrEqual(next.Register[REG_A], a)
		case OP_BXL, OP_BST, OP_BXC, OP_BDV:
			assert.Equal(prior.Register[REG_A], next.Register[REG_A])
			assert.Equal(prior.Register[REG_C], next.Register[REG_C])
		case OP_CDV:
			assert.Equal(prior.Register[:2], next.Register[:2])
		case OP_JNZ, OP_OUT:
			assert.Equal(prior.Register, next.Register)
		}
	})
}

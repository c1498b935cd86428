package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram(t *testing.T) {
	assert := assert.New(t)

	cells := []uint8{0, 1, 5, 4, 3, 0}
	prog, err := NewProgram(cells)
	assert.NoError(err)
	assert.Equal(6, prog.Len())
	assert.Equal("0,1,5,4,3,0", prog.String())
	assert.True(prog.Equal([]uint8{0, 1, 5, 4, 3, 0}))
	assert.False(prog.Equal([]uint8{0, 1, 5, 4, 3}))

	// The program owns a copy of its cells.
	cells[0] = 7
	assert.Equal(uint8(0), prog.Cells()[0])
	prog.Cells()[1] = 7
	assert.Equal(uint8(1), prog.Cells()[1])

	assert.True(prog.Valid(0))
	assert.True(prog.Valid(4))
	assert.False(prog.Valid(5))
	assert.False(prog.Valid(6))
	assert.False(prog.Valid(-2))

	code, err := prog.Code(2)
	assert.NoError(err)
	assert.Equal(Code{Op: OP_OUT, Operand: COMBO_A}, code)

	_, err = prog.Code(6)
	assert.ErrorIs(err, ErrIpHalted)

	_, err = prog.Code(1)
	assert.ErrorIs(err, ErrIpAlign)
}

func TestProgramInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := NewProgram([]uint8{0, 1, 5})
	assert.ErrorIs(err, ErrProgramOdd)

	_, err = NewProgram([]uint8{0, 1, 8, 0})
	var cell ErrCell
	assert.True(errors.As(err, &cell))
	assert.Equal(2, cell.Index)
	assert.Equal(uint8(8), cell.Value)

	prog, err := NewProgram(nil)
	assert.NoError(err)
	assert.Equal(0, prog.Len())
	assert.False(prog.Valid(0))
}

func TestProgramCodes(t *testing.T) {
	assert := assert.New(t)

	prog, err := NewProgram([]uint8{2, 4, 1, 1, 7, 5, 4, 0, 5, 5, 3, 0})
	assert.NoError(err)

	var ips []int
	var codes []Code
	for ip, code := range prog.Codes() {
		ips = append(ips, ip)
		codes = append(codes, code)
	}

	assert.Equal([]int{0, 2, 4, 6, 8, 10}, ips)
	assert.Equal([]Code{
		{OP_BST, COMBO_A},
		{OP_BXL, 1},
		{OP_CDV, COMBO_B},
		{OP_BXC, 0},
		{OP_OUT, COMBO_B},
		{OP_JNZ, 0},
	}, codes)

	// Early stop.
	count := 0
	for range prog.Codes() {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestProgramListing(t *testing.T) {
	assert := assert.New(t)

	prog, err := NewProgram([]uint8{2, 4, 1, 7, 7, 5, 4, 3, 0, 3, 5, 2, 3, 0})
	assert.NoError(err)

	expected := "" +
		"00: bst a\n" +
		"02: bxl 7\n" +
		"04: cdv b\n" +
		"06: bxc 3\n" +
		"08: adv 3\n" +
		"10: out 2\n" +
		"12: jnz 0\n"
	assert.Equal(expected, prog.Listing())
}

func TestCodeString(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		code Code
		text string
	}{
		{Code{OP_ADV, 0}, "adv 0"},
		{Code{OP_ADV, COMBO_C}, "adv c"},
		{Code{OP_BXL, 6}, "bxl 6"},
		{Code{OP_BST, 3}, "bst 3"},
		{Code{OP_JNZ, 4}, "jnz 4"},
		{Code{OP_BXC, 0}, "bxc"},
		{Code{OP_OUT, COMBO_RESERVED}, "out 7"},
		{Code{OP_BDV, COMBO_A}, "bdv a"},
		{Code{OP_CDV, COMBO_B}, "cdv b"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.code.String())
	}

	assert.Equal("Opcode(9)", Opcode(9).String())
	assert.Equal([2]uint8{7, 5}, Code{OP_CDV, COMBO_B}.Cells())
}

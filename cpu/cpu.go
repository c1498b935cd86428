package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/tribit/io"
)

// Channel is an output channel interface.
type Channel = io.Channel

// DEFAULT_TICK_LIMIT bounds a run when Cpu.TickLimit is not set.
const DEFAULT_TICK_LIMIT = 1 << 20

// State is the complete register state of the machine.
type State struct {
	Register [3]uint64 // Register bank: A, B, C.
	Ip       int       // Current instruction pointer.
}

// combo resolves a combo operand.
func (st State) combo(operand uint8) (value uint64, err error) {
	switch operand {
	case 0, 1, 2, 3:
		value = uint64(operand)
	case COMBO_A:
		value = st.Register[REG_A]
	case COMBO_B:
		value = st.Register[REG_B]
	case COMBO_C:
		value = st.Register[REG_C]
	case COMBO_RESERVED:
		err = ErrComboReserved
	default:
		err = ErrOperandInvalid
	}
	return
}

// Execute applies a single instruction to the state, returning the next
// state, and the emitted digit if the instruction was an `out`.
// The receiver is not modified.
func (st State) Execute(code Code) (next State, digit uint8, emitted bool, err error) {
	defer func() {
		if err != nil {
			next = st
			digit = 0
			emitted = false
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	next = st
	next_ip := st.Ip + 2

	if code.Operand > 7 {
		err = ErrOperandInvalid
		return
	}

	a := st.Register[REG_A]

	switch code.Op {
	case OP_ADV, OP_BDV, OP_CDV:
		var shift uint64
		shift, err = st.combo(code.Operand)
		if err != nil {
			return
		}
		// Shifts of 64 or more yield 0, the same as the division.
		value := a >> shift
		switch code.Op {
		case OP_ADV:
			next.Register[REG_A] = value
		case OP_BDV:
			next.Register[REG_B] = value
		case OP_CDV:
			next.Register[REG_C] = value
		}
	case OP_BXL:
		next.Register[REG_B] ^= uint64(code.Operand)
	case OP_BST:
		var value uint64
		value, err = st.combo(code.Operand)
		if err != nil {
			return
		}
		next.Register[REG_B] = value & 7
	case OP_JNZ:
		if a != 0 {
			if code.Operand%2 != 0 {
				err = ErrJumpTarget
				return
			}
			next_ip = int(code.Operand)
		}
	case OP_BXC:
		next.Register[REG_B] ^= st.Register[REG_C]
	case OP_OUT:
		var value uint64
		value, err = st.combo(code.Operand)
		if err != nil {
			return
		}
		digit = uint8(value & 7)
		emitted = true
	default:
		err = ErrOpcodeInvalid
		return
	}

	next.Ip = next_ip

	return
}

// Cpu is a single run of a program.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program // Program being executed.
	State            // Registers and instruction pointer.

	Output    []uint8 // Digits emitted so far.
	Ticks     int     // Instructions executed since Reset.
	TickLimit int     // Maximum instructions per run; DEFAULT_TICK_LIMIT if 0.

	Channel Channel // If set, receives every emitted digit.
}

// NewCpu creates a new CPU for a program.
func NewCpu(prog *Program) (cpu *Cpu) {
	cpu = &Cpu{
		Program: prog,
	}

	return
}

// Reset the CPU state.
// - Loads the registers, and sets ip to 0.
// - Clears the output and the tick counter.
// - Rewinds the output channel.
func (cpu *Cpu) Reset(a, b, c uint64) {
	if cpu.Verbose {
		log.Printf("cpu: reset a=%d b=%d c=%d", a, b, c)
	}

	cpu.State = State{Register: [3]uint64{a, b, c}}
	cpu.Output = nil
	cpu.Ticks = 0

	if cpu.Channel != nil {
		cpu.Channel.Rewind()
	}
}

// Halted is true once ip has left the program.
func (cpu *Cpu) Halted() bool {
	return !cpu.Program.Valid(cpu.Ip)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("   ip: %02d\n", cpu.Ip)
	for n, reg := range []string{"a", "b", "c"} {
		val := cpu.Register[n]
		text += fmt.Sprintf("% 5s: %d (%#o)\n", reg, val, val)
	}
	text += fmt.Sprintf("ticks: %d\n", cpu.Ticks)

	return
}

// FetchCode fetches the instruction at ip.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	return cpu.Program.Code(cpu.Ip)
}

// tickLimit returns the effective tick limit.
func (cpu *Cpu) tickLimit() int {
	if cpu.TickLimit > 0 {
		return cpu.TickLimit
	}
	return DEFAULT_TICK_LIMIT
}

// Tick executes a single instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	if cpu.Ticks >= cpu.tickLimit() {
		err = ErrTickLimit
		return
	}

	if cpu.Verbose {
		log.Printf("%02d: %v", cpu.Ip, code)
	}

	next, digit, emitted, err := cpu.State.Execute(code)
	if err != nil {
		return
	}

	cpu.State = next
	cpu.Ticks++

	if emitted {
		cpu.Output = append(cpu.Output, digit)
		if cpu.Channel != nil {
			err = cpu.Channel.Send(digit)
			if err != nil {
				return
			}
		}
	}

	return
}

// Run ticks the CPU until it halts, and returns the output.
// On error, the output is not returned.
func (cpu *Cpu) Run() (output []uint8, err error) {
	for !cpu.Halted() {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	output = cpu.Output

	return
}

// RunIteration runs a single pass of the program's loop body:
// until the first emitted digit, and then up to the next jnz (the loop's
// back edge) or until halted. Returns the emitted digit, and the value of
// register A at that point. ok is false if the CPU halted with no output.
func (cpu *Cpu) RunIteration() (digit uint8, a uint64, ok bool, err error) {
	start := len(cpu.Output)
	for len(cpu.Output) == start {
		if cpu.Halted() {
			return
		}
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	digit = cpu.Output[start]

	for !cpu.Halted() {
		var code Code
		code, err = cpu.FetchCode()
		if err != nil {
			return
		}
		if code.Op == OP_JNZ {
			break
		}
		if len(cpu.Output) > start+1 {
			// A second digit before the back edge.
			break
		}
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	a = cpu.Register[REG_A]
	ok = true

	return
}

// Run executes a program from the given registers with the default
// tick limit, and returns its output.
func Run(prog *Program, a, b, c uint64) (output []uint8, err error) {
	cpu := NewCpu(prog)
	cpu.Reset(a, b, c)

	return cpu.Run()
}

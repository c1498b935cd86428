// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/tribit/cpu"
	"github.com/ezrec/tribit/io"
	"github.com/ezrec/tribit/seed"
)

// Emulator state. CPU + program image + output tape.
type Emulator struct {
	Verbose  bool       // If set, enables verbose logging.
	*cpu.Cpu            // Reference to the CPU simulation.
	Image    *cpu.Image // Reference to the currently loaded image.

	Tape io.Tape // Output tape.
}

// NewEmulator creates a new emulator, with an empty program loaded.
func NewEmulator() (emu *Emulator) {
	prog, _ := cpu.NewProgram(nil)

	emu = &Emulator{
		Cpu:   cpu.NewCpu(prog),
		Image: &cpu.Image{Program: prog},
	}

	emu.Cpu.Channel = &emu.Tape

	return
}

// Reset loads the image program and registers into the CPU.
func (emu *Emulator) Reset() (err error) {
	if emu.Image == nil || emu.Image.Program == nil {
		err = cpu.ErrIpHalted
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Program = emu.Image.Program

	reg := emu.Image.Register
	emu.Cpu.Reset(reg[cpu.REG_A], reg[cpu.REG_B], reg[cpu.REG_C])

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// Code returns the current instruction code.
func (emu *Emulator) Code() cpu.Code {
	code, _ := emu.Cpu.FetchCode()
	return code
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Ip()
	code := emu.Code()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Code: code, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()

	return
}

// Run ticks until the program halts, and returns its output.
func (emu *Emulator) Run() (output []uint8, err error) {
	for done := emu.Cpu.Halted(); !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d ticks", emu.Ticks())
	}

	output = emu.Cpu.Output

	return
}

// Search finds the self-reproducing seed of the loaded program.
func (emu *Emulator) Search(config seed.Config) (value uint64, ok bool, err error) {
	if emu.Image == nil || emu.Image.Program == nil {
		err = cpu.ErrIpHalted
		return
	}

	if config.TickLimit == 0 {
		config.TickLimit = emu.Cpu.TickLimit
	}
	config.Verbose = config.Verbose || emu.Verbose

	return seed.NewSearcher(emu.Image.Program, config).Find()
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ezrec/tribit/cpu"
	"github.com/ezrec/tribit/emulator"
	"github.com/ezrec/tribit/seed"
)

// runTape runs the loaded image, and writes its output line only if the
// run halts without error.
func runTape(emu *emulator.Emulator, ouf io.Writer) (err error) {
	var tape bytes.Buffer
	emu.Tape.Output = &tape

	err = emu.Reset()
	if err != nil {
		return
	}

	_, err = emu.Run()
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(ouf, tape.String())

	return
}

func main() {
	var compile string
	var output string
	var register_a string
	var listing bool
	var search bool
	var parallel bool
	var ticks int
	var verbose bool

	flag.StringVar(&compile, "c", "-", "Program listing to load")
	flag.StringVar(&output, "o", "-", "Output")
	flag.StringVar(&register_a, "a", "", "Override register A")
	flag.BoolVar(&listing, "l", false, "Print the disassembled program")
	flag.BoolVar(&search, "s", false, "Search for the self-reproducing A")
	flag.BoolVar(&parallel, "j", false, "Search leading digits in parallel")
	flag.IntVar(&ticks, "t", cpu.DEFAULT_TICK_LIMIT, "Tick limit per run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	inf := os.Stdin
	if compile != "-" {
		var err error
		inf, err = os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
	}

	asm := &cpu.Assembler{Verbose: verbose}
	image, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if len(register_a) != 0 {
		image.Register[cpu.REG_A], err = strconv.ParseUint(register_a, 0, 64)
		if err != nil {
			log.Fatalf("-a %v: %v", register_a, err)
		}
	}

	emu := emulator.NewEmulator()
	emu.Image = image
	emu.Verbose = verbose
	emu.Cpu.TickLimit = ticks

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}
	if listing {
		fmt.Fprint(ouf, image.Program.Listing())
	}

	err = runTape(emu, ouf)
	if err != nil {
		log.Fatal(err)
	}

	if search {
		value, ok, err := emu.Search(seed.Config{Parallel: parallel})
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			log.Fatalf("%v: no self-reproducing seed", compile)
		}
		fmt.Fprintln(ouf, value)
	}
}

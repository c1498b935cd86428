// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tribit/internal"
)

// Image is an assembled program, with its initial register values.
type Image struct {
	Register [3]uint64 // Initial A, B, C.
	Program  *Program
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":  "0",
	"COMBO_A": fmt.Sprintf("%d", COMBO_A),
	"COMBO_B": fmt.Sprintf("%d", COMBO_B),
	"COMBO_C": fmt.Sprintf("%d", COMBO_C),
}

// link is an unresolved jnz label.
type link struct {
	Index  int    // Cell index of the operand.
	Label  string // Label to resolve.
	LineNo int    // Source line.
	Line   string // Source text.
}

// Assembler reads puzzle listings and mnemonic source for the machine.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Cells    []uint8   // Generated program cells.
	Register [3]uint64 // Register initial values.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to cell indexes.
	Equate    map[string]string // Map of equates.

	links     []link
	raw       bool // A Program: line was seen.
	mnemonics bool // A mnemonic line was seen.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a number or equate.
func (asm *Assembler) valueOf(word string) (value uint64, err error) {
	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}

	value, err = strconv.ParseUint(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value64 uint64
		value64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeUint64(value64)
	}
	err = nil

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = errors.Join(ErrParseExpression(expr), ErrExpressionInvalid)
		return
	}
	value, ok = st_int.Uint64()
	if !ok {
		err = errors.Join(ErrParseExpression(expr), ErrExpressionInvalid)
		return
	}
	return
}

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine expands a single line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	return
}

// registerMap maps register names of a "Register X:" line.
var registerMap = map[string]int{
	"A": REG_A,
	"B": REG_B,
	"C": REG_C,
}

// parseRegister handles a "Register X: value" line.
func (asm *Assembler) parseRegister(words []string) (err error) {
	if len(words) != 3 || !strings.HasSuffix(words[1], ":") {
		err = ErrRegisterSyntax
		return
	}

	reg, ok := registerMap[strings.TrimSuffix(words[1], ":")]
	if !ok {
		err = ErrRegisterInvalid
		return
	}

	value, err := asm.valueOf(words[2])
	if err != nil {
		return
	}

	asm.Register[reg] = value

	return
}

// parseProgram handles a "Program: 0,1,..." line.
func (asm *Assembler) parseProgram(text string) (err error) {
	if asm.mnemonics {
		err = ErrProgramMixed
		return
	}
	if asm.raw {
		err = ErrProgramDuplicate
		return
	}
	asm.raw = true

	cells, err := internal.SplitDigits(text)
	if err != nil {
		err = errors.Join(ErrOperandInvalid, err)
		return
	}

	asm.Cells = append(asm.Cells, cells...)

	return
}

// opMap maps mnemonic names to opcodes.
var opMap = map[string]Opcode{
	OP_ADV.String(): OP_ADV,
	OP_BXL.String(): OP_BXL,
	OP_BST.String(): OP_BST,
	OP_JNZ.String(): OP_JNZ,
	OP_BXC.String(): OP_BXC,
	OP_OUT.String(): OP_OUT,
	OP_BDV.String(): OP_BDV,
	OP_CDV.String(): OP_CDV,
}

// comboMap maps register names usable as combo operands.
var comboMap = map[string]uint8{
	"a": COMBO_A,
	"b": COMBO_B,
	"c": COMBO_C,
}

// operand encodes the operand word of an opcode.
func (asm *Assembler) operand(op Opcode, word string) (operand uint8, label string, err error) {
	switch op.Operand() {
	case OPERAND_COMBO:
		combo, ok := comboMap[strings.ToLower(word)]
		if ok {
			operand = combo
			return
		}
	case OPERAND_LITERAL:
		if op == OP_JNZ {
			_, is_equ := asm.Equate[word]
			_, num_err := strconv.ParseUint(word, 0, 64)
			if !is_equ && num_err != nil {
				label = word
				return
			}
		}
	}

	value, err := asm.valueOf(word)
	if err != nil {
		return
	}

	switch {
	case op.Operand() == OPERAND_COMBO && value == uint64(COMBO_RESERVED):
		err = ErrComboReserved
	case value > 7:
		err = ErrOperandInvalid
	default:
		operand = uint8(value)
	}

	return
}

// parseWords assembles the words of a mnemonic line.
func (asm *Assembler) parseWords(words []string, lineno int, line string) (err error) {
	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = len(asm.Cells)
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	op, ok := opMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	if asm.raw {
		err = ErrProgramMixed
		return
	}
	asm.mnemonics = true

	args := words[1:]
	if len(args) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	var operand uint8
	switch {
	case len(args) == 1:
		var label string
		operand, label, err = asm.operand(op, args[0])
		if err != nil {
			return
		}
		if len(label) != 0 {
			asm.links = append(asm.links, link{
				Index:  len(asm.Cells) + 1,
				Label:  label,
				LineNo: lineno,
				Line:   line,
			})
		}
	case op.Operand() != OPERAND_IGNORED:
		err = ErrOperandMissing
		return
	}

	code := Code{Op: op, Operand: operand}
	cells := code.Cells()
	asm.Cells = append(asm.Cells, cells[:]...)

	if asm.Verbose {
		log.Printf("%02d: %v", len(asm.Cells)-2, code)
	}

	return
}

// Parse parses an input stream into an Image.
func (asm *Assembler) Parse(input io.Reader) (image *Image, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			var syntax_err ErrSyntax
			if !errors.As(err, &syntax_err) {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			}
		}
	}()

	asm.Cells = nil
	asm.Register = [3]uint64{}
	asm.Label = make(map[string]int, 16)
	asm.links = nil
	asm.raw = false
	asm.mnemonics = false
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		// Program: 0,1,5,4,3,0
		if rest, ok := strings.CutPrefix(line, "Program:"); ok {
			err = asm.parseProgram(rest)
			if err != nil {
				return
			}
			continue
		}

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "Register":
			err = asm.parseRegister(words)
		case ".equ":
			// .equ CONST VALUE
			if len(words) != 3 {
				err = ErrEquateSyntax
				return
			}
			_, ok := asm.Equate[words[1]]
			if ok {
				err = ErrEquateDuplicate
				return
			}
			asm.Equate[words[1]] = words[2]
		default:
			err = asm.parseWords(words, lineno, line)
		}
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of jump labels.
	for _, lnk := range asm.links {
		ip, ok := asm.Label[lnk.Label]
		switch {
		case !ok:
			err = ErrLabelMissing(lnk.Label)
		case ip > 7:
			err = ErrLabelRange
		}
		if err != nil {
			err = ErrSyntax{LineNo: lnk.LineNo, Line: lnk.Line, Err: err}
			return
		}
		asm.Cells[lnk.Index] = uint8(ip)
	}

	prog, err := NewProgram(asm.Cells)
	if err != nil {
		return
	}

	image = &Image{
		Register: asm.Register,
		Program:  prog,
	}

	return
}

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
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var parenExpr = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass assembler for the accumulator machine.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Symbols   *Symbols          // Variable addresses.
	Equate    map[string]string // Map of equates.

	// Mirror of the machine, advanced by every emitted instruction, so that
	// relative loads can be computed from the accumulator value they will see.
	shadow *Cpu
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a literal or equate.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key := range asm.Equate {
		var v int64
		v, err = asm.valueOf(key)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine splits a single line into words, processing directives and expressions.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = parenExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	// .equ CONST VALUE
	if len(words) > 0 && words[0] == ".equ" {
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
		words = words[:0]
		return
	}

	return
}

// currentIndex gets the index of the next instruction to be emitted.
func (asm *Assembler) currentIndex() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Index + len(last.Codes)
}

// Parse parses an input stream into a Program.
// Assembly stops at the first error, and no program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	if asm.Symbols == nil {
		asm.Symbols = NewSymbols()
	}
	asm.Symbols.Reset()
	asm.shadow = NewCpu()
	for name, value := range asm.predefine {
		arch, ok := _cpu_defines[name]
		if ok && arch != value {
			err = ErrEquateArch(name)
			return
		}
	}

	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, asm.predefine)
	maps.Copy(asm.Equate, _cpu_defines)

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.SplitN(text, ";", 2)
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Symbols: maps.Collect(asm.Symbols.All()),
	}

	return
}

// emit appends an instruction, and advances the shadow machine past it.
func (asm *Assembler) emit(codes []Code, op CodeOp, operand uint32) (out []Code, err error) {
	code := MakeCode(op, operand)
	err = asm.shadow.Execute(code)
	if err != nil {
		return
	}

	if asm.Verbose {
		data := code.Bytes()
		log.Printf("  %v => % x", code, data[:])
	}

	out = append(codes, code)
	return
}

// argCount checks the number of arguments of an instruction.
func argCount(words []string, count int) (err error) {
	switch {
	case len(words)-1 < count:
		err = errors.Join(ErrOperandMalformed, ErrOpcodeValueMissing)
	case len(words)-1 > count:
		err = errors.Join(ErrOperandMalformed, ErrOpcodeExtraArgs)
	}
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []Code

	// no-op
	if len(words) == 0 {
		return
	}

	defer func() {
		if err != nil || len(codes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Index: asm.currentIndex(), Words: words, Codes: codes}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	switch words[0] {
	case "set":
		// set VAR VALUE => ldc VALUE; st VAR
		err = argCount(words, 2)
		if err != nil {
			return
		}
		var value int64
		value, err = asm.valueOf(words[2])
		if err != nil {
			err = errors.Join(ErrOperandMalformed, err)
			return
		}
		if value < 0 || value > CONSTANT_MASK {
			err = ErrOperandOverflow{Value: value, Width: CONSTANT_WIDTH_BITS}
			return
		}
		var addr uint32
		addr, err = asm.Symbols.ResolveOrDeclare(words[1])
		if err != nil {
			err = errors.Join(ErrOperandMalformed, err)
			return
		}
		codes, err = asm.emit(codes, OP_LOAD_CONST, uint32(value))
		if err != nil {
			return
		}
		codes, err = asm.emit(codes, OP_STORE, addr)
	case "mov":
		// mov DST SRC => ldr (SRC - ac); st DST
		err = argCount(words, 2)
		if err != nil {
			return
		}
		var src, dst uint32
		src, err = asm.Symbols.Resolve(words[2])
		if err != nil {
			return
		}
		shift := (src - asm.shadow.Accumulator) & ADDRESS_MASK
		codes, err = asm.emit(codes, OP_LOAD_REL, shift)
		if err != nil {
			return
		}
		dst, err = asm.Symbols.ResolveOrDeclare(words[1])
		if err != nil {
			err = errors.Join(ErrOperandMalformed, err)
			return
		}
		codes, err = asm.emit(codes, OP_STORE, dst)
	case "bswap":
		err = argCount(words, 0)
		if err != nil {
			return
		}
		codes, err = asm.emit(codes, OP_BSWAP, 0)
	default:
		err = ErrInstructionInvalid
		return
	}

	return
}

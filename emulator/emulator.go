// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/accum/cpu"
	"github.com/ezrec/accum/internal"
	"github.com/ezrec/accum/io"
)

var _emulator_defines = map[string]string{
	"CODE_WIDTH_BYTES":    fmt.Sprintf("%v", cpu.CODE_WIDTH_BYTES),
	"OPERAND_WIDTH_BITS":  fmt.Sprintf("%v", cpu.OPERAND_WIDTH_BITS),
	"CONSTANT_WIDTH_BITS": fmt.Sprintf("%v", cpu.CONSTANT_WIDTH_BITS),
}

// Emulator state. CPU + loaded instruction stream.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the program listing, if known.

	Tape io.Tape // Instruction stream source. If no input, Program is used.

	codes []cpu.Code // Decoded instruction stream.
	index int        // Index of the next instruction.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset clears the machine and loads the instruction stream.
// The whole stream is decoded up front, so a corrupt stream is rejected
// before any instruction runs.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.codes = nil
	emu.index = 0

	var binary []byte
	switch {
	case emu.Tape.Input != nil:
		emu.Tape.Rewind()
		binary = slices.Collect(emu.Tape.Receive())
		err = emu.Tape.Err()
		if err != nil {
			return
		}
	case emu.Program != nil:
		binary = emu.Program.Binary()
	default:
		err = ErrNoProgram
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loading %d bytes", len(binary))
	}

	codes, err := cpu.Load(binary)
	if err != nil {
		var load *cpu.ErrLoad
		if errors.As(err, &load) {
			err = &ErrRuntime{LineNo: emu.lineOf(load.Index), Index: load.Index, Err: load.Err}
		}
		return
	}

	emu.codes = codes

	return
}

// lineOf returns the source line of an instruction index, or 0.
func (emu *Emulator) lineOf(index int) int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(index)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Len returns the number of instructions loaded.
func (emu *Emulator) Len() int {
	return len(emu.codes)
}

// Index returns the index of the next instruction to execute.
func (emu *Emulator) Index() int {
	return emu.index
}

// Code returns the next instruction code.
func (emu *Emulator) Code() (code cpu.Code, ok bool) {
	if emu.index >= len(emu.codes) {
		return
	}

	return emu.codes[emu.index], true
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	return emu.lineOf(emu.index)
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	code, ok := emu.Code()
	if !ok {
		done = true
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Execute(code)
	if err != nil {
		err = &ErrRuntime{LineNo: emu.LineNo(), Index: emu.index, Err: err}
		return
	}

	emu.index++

	return
}

// Run executes the remaining instructions.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

// Result returns a snapshot of the machine state.
func (emu *Emulator) Result() *io.Result {
	state := emu.Cpu.Clone()
	return &io.Result{
		Accumulator: state.Accumulator,
		Memory:      state.Memory,
		AddressBits: cpu.ADDRESS_WIDTH_BITS,
	}
}

// String renders the machine state as tables.
// Memory words are listed if non-zero or bound to a variable.
func (emu *Emulator) String() string {
	hex := func(val uint32) string {
		return fmt.Sprintf("%04X_%04X", val>>16, val&0xffff)
	}

	regTable := table.NewWriter()
	regTable.SetTitle(f("Registers"))
	regTable.AppendHeader(table.Row{f("Register"), f("Hex"), f("Decimal")})
	regTable.AppendRow(table.Row{"ac", hex(emu.Cpu.Accumulator), emu.Cpu.Accumulator})

	names := map[uint32]string{}
	if emu.Program != nil {
		for name, addr := range emu.Program.Variables() {
			names[addr] = name
		}
	}

	memTable := table.NewWriter()
	memTable.SetTitle(f("Memory"))
	memTable.AppendHeader(table.Row{f("Address"), f("Variable"), f("Hex"), f("Decimal")})
	for addr, val := range emu.Cpu.Memory {
		name, named := names[uint32(addr)]
		if val == 0 && !named {
			continue
		}
		memTable.AppendRow(table.Row{fmt.Sprintf("%03x", addr), name, hex(val), val})
	}

	return regTable.Render() + "\n" + memTable.Render() + "\n"
}

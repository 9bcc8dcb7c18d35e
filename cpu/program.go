package cpu

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Opcode represents a line of assembled code with its source location and generated instructions.
type Opcode struct {
	LineNo int      // Source line number.
	Index  int      // Index of the first instruction in the stream.
	Words  []string // Source words of the line.
	Codes  []Code   // Generated instructions.
}

// Program is an assembled instruction stream with its listing.
type Program struct {
	Opcodes []Opcode
	Symbols map[string]uint32 // Variable addresses.
}

// Debug locates an instruction within its source line.
type Debug struct {
	*Opcode
	Index int // Offset of the instruction within Opcode.Codes.
}

// Debug finds the source line of the instruction at an index in the stream.
func (prog *Program) Debug(index int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if index >= op.Index && index < op.Index+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  index - op.Index,
			}
			break
		}
	}

	return
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() (count int) {
	for _, op := range prog.Opcodes {
		count += len(op.Codes)
	}
	return
}

// Binary returns the encoded instruction stream.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, 0, prog.Len()*CODE_WIDTH_BYTES)
	for _, code := range prog.Codes() {
		data := code.Bytes()
		bin = append(bin, data[:]...)
	}

	return
}

// Codes iterates over the instructions with their stream index.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(index int, code Code) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Index+n, code) {
					return
				}
			}
		}
	}
}

// Variables iterates over the variable names in address order.
func (prog *Program) Variables() iter.Seq2[string, uint32] {
	names := slices.SortedFunc(maps.Keys(prog.Symbols), func(a, b string) int {
		return cmp.Compare(prog.Symbols[a], prog.Symbols[b])
	})
	return func(yield func(name string, addr uint32) bool) {
		for _, name := range names {
			if !yield(name, prog.Symbols[name]) {
				return
			}
		}
	}
}

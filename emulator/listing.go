package emulator

import (
	"github.com/ezrec/accum/cpu"
	"github.com/ezrec/accum/io"
)

// Listing builds the assembler trace of a program, one entry per instruction.
func Listing(prog *cpu.Program) (tr *io.Trace, err error) {
	tr = &io.Trace{}
	for _, code := range prog.Codes() {
		data := code.Bytes()
		err = tr.Append(int(code.Op), code.Operand, code.HasOperand(), data[:])
		if err != nil {
			return
		}
	}

	return
}

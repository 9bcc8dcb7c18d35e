package cpu

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// CodeOp is an instruction opcode.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_BSWAP      = CodeOp(0x2) // bswap
	OP_LOAD_CONST = CodeOp(0x8) // ldc
	OP_STORE      = CodeOp(0x9) // st
	OP_LOAD_REL   = CodeOp(0xa) // ldr
)

// Valid returns true if the opcode is one the machine can execute.
func (op CodeOp) Valid() bool {
	switch op {
	case OP_BSWAP, OP_LOAD_CONST, OP_STORE, OP_LOAD_REL:
		return true
	}
	return false
}

// Width returns the number of operand bits the opcode decodes.
func (op CodeOp) Width() int {
	switch op {
	case OP_LOAD_CONST:
		return CONSTANT_WIDTH_BITS
	case OP_STORE, OP_LOAD_REL:
		return ADDRESS_WIDTH_BITS
	}
	return 0
}

// Code is a single decoded instruction.
type Code struct {
	Op      CodeOp
	Operand uint32
}

// MakeCode creates an instruction, truncating the operand to its field width.
func MakeCode(op CodeOp, operand uint32) Code {
	return Code{
		Op:      op,
		Operand: operand & ((1 << op.Width()) - 1),
	}
}

// Encode packs an opcode and operand into an instruction word.
//
// The operand is taken modulo 2^28. The first byte holds the low operand
// nibble above the opcode; the remaining 24 operand bits follow least
// significant byte first.
func Encode(op CodeOp, operand uint32) (data [CODE_WIDTH_BYTES]byte) {
	word := ((operand & OPERAND_MASK) << OPCODE_WIDTH_BITS) | (uint32(op) & 0xf)
	binary.LittleEndian.PutUint32(data[:], word)
	return
}

// Decode unpacks an instruction word.
func Decode(data []byte) (code Code, err error) {
	if len(data) < CODE_WIDTH_BYTES {
		err = ErrCodeShort
		return
	}

	word := binary.LittleEndian.Uint32(data)

	op := CodeOp(word & 0xf)
	if !op.Valid() {
		err = ErrOpcode(op)
		return
	}

	code = MakeCode(op, word>>OPCODE_WIDTH_BITS)

	return
}

// Bytes returns the encoded instruction word.
func (code Code) Bytes() [CODE_WIDTH_BYTES]byte {
	return Encode(code.Op, code.Operand)
}

// HasOperand returns true if the instruction uses its operand field.
func (code Code) HasOperand() bool {
	return code.Op.Width() != 0
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	if !code.HasOperand() {
		return code.Op.String()
	}

	return fmt.Sprintf("%v %d", code.Op.String(), code.Operand)
}

// bswap reverses the byte order of a word.
func bswap(value uint32) uint32 {
	return bits.ReverseBytes32(value)
}

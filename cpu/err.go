package cpu

import (
	"errors"

	"github.com/ezrec/accum/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrCodeShort = errors.New(f("instruction word short"))

	// Symbol errors
	ErrSymbolsFull   = errors.New(f("memory exhausted by variables"))
	ErrSymbolInvalid = errors.New(f("variable name invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOperandMalformed   = errors.New(f("operand malformed"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrUndeclared is returned when a variable is read before it was declared.
type ErrUndeclared string

func (err ErrUndeclared) Error() string {
	return f("variable %v was not declared", string(err))
}

// ErrOpcode is returned when an instruction word has an unknown opcode.
type ErrOpcode CodeOp

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%x", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrLoad attributes a decode error to an instruction index in a stream.
type ErrLoad struct {
	Index int
	Err   error
}

func (err *ErrLoad) Error() string {
	return f("instruction %d %v", err.Index, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// ErrOperandOverflow is returned when a value does not fit its operand field.
type ErrOperandOverflow struct {
	Value int64
	Width int
}

func (err ErrOperandOverflow) Error() string {
	return f("%d does not fit in %d bits", err.Value, err.Width)
}

// ErrSyntax attributes an assembler error to a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrEquateArch is returned when a predefine would change an architecture equate.
type ErrEquateArch string

func (err ErrEquateArch) Error() string {
	return f("%v is fixed by the architecture", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

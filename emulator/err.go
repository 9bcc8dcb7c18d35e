package emulator

import (
	"errors"

	"github.com/ezrec/accum/translate"
)

var f = translate.From

var (
	ErrNoProgram = errors.New(f("no program loaded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int // Source line, or 0 if unknown.
	Index  int // Instruction index in the stream.
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("instruction %d %v", err.Index, err.Err)
	}
	return f("line %d instruction %d %v", err.LineNo, err.Index, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

package io

import (
	"errors"

	"github.com/ezrec/accum/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeNoInput  = errors.New(f("tape has no input"))
	ErrTapeNoOutput = errors.New(f("tape has no output"))

	// Artifact errors
	ErrTraceBytes   = errors.New(f("trace entry is not one instruction word"))
	ErrResultMemory = errors.New(f("result memory size does not match address width"))
)

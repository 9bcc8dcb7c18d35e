package io

import (
	"bufio"
	"io"
	"iter"
)

// Tape provides sequential access to a raw instruction stream.
// The stream has no header, magic number or length prefix.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	err error
}

// Rewind clears any read error. The underlying streams are not seekable.
func (tc *Tape) Rewind() {
	tc.err = nil
}

// Err returns the first non-EOF error seen by Receive.
func (tc *Tape) Err() error {
	return tc.err
}

// Receive returns an iterator that yields the bytes of the input stream.
func (tc *Tape) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		if tc.Input == nil {
			tc.err = ErrTapeNoInput
			return
		}
		in := bufio.NewReader(tc.Input)
		for {
			b, err := in.ReadByte()
			if err != nil {
				if err != io.EOF {
					tc.err = err
				}
				return
			}
			if !yield(b) {
				return
			}
		}
	}
}

// Send writes bytes to the output stream.
func (tc *Tape) Send(values ...byte) (err error) {
	if tc.Output == nil {
		err = ErrTapeNoOutput
		return
	}

	_, err = tc.Output.Write(values)

	return
}

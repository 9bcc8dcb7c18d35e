package io

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Result is the final machine state after execution.
type Result struct {
	Accumulator uint32
	Memory      []uint32 // One word per address, in address order.
	AddressBits int      // Width of an address, used to name memory entries.
}

// MarshalJSON encodes the result as
// {"accumulator": N, "memory": [{"0b0..0": V}, ...]}.
func (res Result) MarshalJSON() (data []byte, err error) {
	if len(res.Memory) != 1<<res.AddressBits {
		err = ErrResultMemory
		return
	}

	var buf bytes.Buffer

	buf.WriteString(`{"accumulator":`)
	buf.WriteString(strconv.FormatUint(uint64(res.Accumulator), 10))
	buf.WriteString(`,"memory":[`)
	for addr, value := range res.Memory {
		if addr > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"0b%0*b":%d}`, res.AddressBits, addr, value)
	}
	buf.WriteString(`]}`)

	data = buf.Bytes()
	return
}

// WriteTo writes the result as JSON.
func (res *Result) WriteTo(w io.Writer) (n int64, err error) {
	data, err := res.MarshalJSON()
	if err != nil {
		return
	}

	wrote, err := w.Write(data)
	n = int64(wrote)

	return
}

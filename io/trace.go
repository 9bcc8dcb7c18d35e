package io

import (
	"encoding/json"
	"fmt"
	"io"
)

// TraceEntry records one emitted instruction.
type TraceEntry struct {
	Opcode  int      `json:"opcode"`
	Operand *uint32  `json:"operand,omitempty"` // Absent for instructions without an operand.
	Bytes   []string `json:"bytes"`             // Hex strings, in stream order.
}

// Trace is the assembler listing, in emission order.
type Trace struct {
	Entries []TraceEntry
}

// Append records an instruction word.
func (tr *Trace) Append(opcode int, operand uint32, hasOperand bool, data []byte) (err error) {
	if len(data) != 4 {
		err = ErrTraceBytes
		return
	}

	entry := TraceEntry{
		Opcode: opcode,
		Bytes:  make([]string, len(data)),
	}
	if hasOperand {
		entry.Operand = &operand
	}
	for n, b := range data {
		entry.Bytes[n] = fmt.Sprintf("%#x", b)
	}

	tr.Entries = append(tr.Entries, entry)

	return
}

// WriteTo writes the trace as a JSON array.
func (tr *Trace) WriteTo(w io.Writer) (n int64, err error) {
	entries := tr.Entries
	if entries == nil {
		entries = []TraceEntry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return
	}

	wrote, err := w.Write(data)
	n = int64(wrote)

	return
}

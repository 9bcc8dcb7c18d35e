package io

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	assert := assert.New(t)

	res := &Result{
		Accumulator: 0x0a000000,
		Memory:      []uint32{5, 10, 0, 0},
		AddressBits: 2,
	}

	var buf bytes.Buffer
	n, err := res.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(buf.Len()), n)
	assert.JSONEq(`{
		"accumulator": 167772160,
		"memory": [{"0b00": 5}, {"0b01": 10}, {"0b10": 0}, {"0b11": 0}]
	}`, buf.String())

	// Entries stay in address order.
	var decoded struct {
		Memory []map[string]uint32 `json:"memory"`
	}
	assert.NoError(json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(4, len(decoded.Memory))
	assert.Equal(uint32(10), decoded.Memory[1]["0b01"])
}

func TestResult_Mismatch(t *testing.T) {
	assert := assert.New(t)

	res := Result{Memory: []uint32{1, 2, 3}, AddressBits: 2}
	_, err := json.Marshal(res)
	assert.ErrorIs(err, ErrResultMemory)
}

func TestResult_Wide(t *testing.T) {
	assert := assert.New(t)

	res := Result{Memory: make([]uint32, 2048), AddressBits: 11}
	res.Memory[2047] = 1

	data, err := json.Marshal(res)
	assert.NoError(err)
	assert.Contains(string(data), `{"0b00000000000":0}`)
	assert.Contains(string(data), `{"0b11111111111":1}`)
}

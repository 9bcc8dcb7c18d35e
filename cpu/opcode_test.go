package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		op      CodeOp
		operand uint32
		data    [4]byte
	}){
		{"ldc_5", OP_LOAD_CONST, 5, [4]byte{0x58, 0x00, 0x00, 0x00}},
		{"ldc_10", OP_LOAD_CONST, 10, [4]byte{0xa8, 0x00, 0x00, 0x00}},
		{"st_0", OP_STORE, 0, [4]byte{0x09, 0x00, 0x00, 0x00}},
		{"st_1", OP_STORE, 1, [4]byte{0x19, 0x00, 0x00, 0x00}},
		{"bswap", OP_BSWAP, 0, [4]byte{0x02, 0x00, 0x00, 0x00}},
		{"ldr_2041", OP_LOAD_REL, 2041, [4]byte{0x9a, 0x7f, 0x00, 0x00}},
		{"ldc_wide", OP_LOAD_CONST, 0x1234567, [4]byte{0x78, 0x56, 0x34, 0x12}},
		{"ldc_max", OP_LOAD_CONST, 0xfffffff, [4]byte{0xf8, 0xff, 0xff, 0xff}},
		{"ldc_truncated", OP_LOAD_CONST, 0x10000005, [4]byte{0x58, 0x00, 0x00, 0x00}},
	}

	for _, entry := range table {
		assert.Equal(entry.data, Encode(entry.op, entry.operand), entry.name)
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		data []byte
		code Code
	}){
		{"ldc_5", []byte{0x58, 0x00, 0x00, 0x00}, Code{OP_LOAD_CONST, 5}},
		{"st_1", []byte{0x19, 0x00, 0x00, 0x00}, Code{OP_STORE, 1}},
		{"ldr_2041", []byte{0x9a, 0x7f, 0x00, 0x00}, Code{OP_LOAD_REL, 2041}},
		{"bswap", []byte{0x02, 0x00, 0x00, 0x00}, Code{OP_BSWAP, 0}},
		{"bswap_ignored", []byte{0xf2, 0xff, 0xff, 0xff}, Code{OP_BSWAP, 0}},
		{"ldc_wide", []byte{0x78, 0x56, 0x34, 0x12}, Code{OP_LOAD_CONST, 0x1234567}},
		{"ldc_top_bit", []byte{0x08, 0x00, 0x00, 0x80}, Code{OP_LOAD_CONST, 0}},
		{"st_wide", []byte{0xf9, 0xff, 0x00, 0x00}, Code{OP_STORE, 0x7ff}},
	}

	for _, entry := range table {
		code, err := Decode(entry.data)
		assert.NoError(err, entry.name)
		assert.Equal(entry.code, code, entry.name)
	}
}

func TestDecode_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode([]byte{0x58, 0x00})
	assert.ErrorIs(err, ErrCodeShort)

	for _, op := range []byte{0x0, 0x1, 0x3, 0x7, 0xb, 0xf} {
		_, err = Decode([]byte{0x50 | op, 0x00, 0x00, 0x00})
		assert.ErrorIs(err, ErrOpcode(0), "opcode %x", op)
		var eo ErrOpcode
		assert.True(errors.As(err, &eo))
		assert.Equal(ErrOpcode(op), eo)
	}
}

func TestCodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	operands := []uint32{0, 1, 2, 0x7f, 0x100, 0x7ff, 0x800, 0x12345, 0x7ffffff}
	for _, op := range []CodeOp{OP_BSWAP, OP_LOAD_CONST, OP_STORE, OP_LOAD_REL} {
		for _, operand := range operands {
			if op.Width() == 0 {
				operand = 0
			} else if operand >= (1 << op.Width()) {
				continue
			}
			code := MakeCode(op, operand)
			assert.Equal(operand, code.Operand)
			data := code.Bytes()
			decoded, err := Decode(data[:])
			assert.NoError(err)
			assert.Equal(code, decoded, "%v", code)
		}
	}
}

func TestCodeOp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ldc", OP_LOAD_CONST.String())
	assert.Equal("st", OP_STORE.String())
	assert.Equal("ldr", OP_LOAD_REL.String())
	assert.Equal("bswap", OP_BSWAP.String())
	assert.Equal("CodeOp(7)", CodeOp(7).String())

	assert.True(OP_LOAD_REL.Valid())
	assert.False(CodeOp(0).Valid())

	assert.Equal(27, OP_LOAD_CONST.Width())
	assert.Equal(ADDRESS_WIDTH_BITS, OP_STORE.Width())
	assert.Equal(ADDRESS_WIDTH_BITS, OP_LOAD_REL.Width())
	assert.Equal(0, OP_BSWAP.Width())
}

func TestCodeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ldc 5", MakeCode(OP_LOAD_CONST, 5).String())
	assert.Equal("st 2", MakeCode(OP_STORE, 2).String())
	assert.Equal("ldr 2041", MakeCode(OP_LOAD_REL, 2041).String())
	assert.Equal("bswap", MakeCode(OP_BSWAP, 99).String())
}

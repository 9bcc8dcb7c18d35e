package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCode(f *testing.F) {
	for _, op := range []CodeOp{OP_BSWAP, OP_LOAD_CONST, OP_STORE, OP_LOAD_REL} {
		f.Add(uint8(op), uint32(0))
		f.Add(uint8(op), uint32(0xffffffff))
		f.Add(uint8(op), uint32(0x5a5a5a5))
	}

	f.Fuzz(func(t *testing.T, op uint8, operand uint32) {
		assert := assert.New(t)

		data := Encode(CodeOp(op&0xf), operand)
		code, err := Decode(data[:])
		if !CodeOp(op & 0xf).Valid() {
			assert.ErrorIs(err, ErrOpcode(0))
			return
		}

		assert.NoError(err)
		assert.Equal(MakeCode(CodeOp(op&0xf), operand), code)

		again := code.Bytes()
		redecoded, err := Decode(again[:])
		assert.NoError(err)
		assert.Equal(code, redecoded)
	})
}

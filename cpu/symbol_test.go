package cpu

import (
	"errors"
	"fmt"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbols(t *testing.T) {
	assert := assert.New(t)

	sym := NewSymbols()
	assert.Equal(0, sym.Len())

	for n, name := range []string{"x", "y", "z"} {
		addr, err := sym.ResolveOrDeclare(name)
		assert.NoError(err)
		assert.Equal(uint32(n), addr, name)
	}

	// Reuse returns the same address every time.
	for range 3 {
		addr, err := sym.ResolveOrDeclare("y")
		assert.NoError(err)
		assert.Equal(uint32(1), addr)
	}

	addr, err := sym.Resolve("z")
	assert.NoError(err)
	assert.Equal(uint32(2), addr)
	assert.Equal(3, sym.Len())

	assert.Equal(map[string]uint32{"x": 0, "y": 1, "z": 2}, maps.Collect(sym.All()))

	var names []string
	for name := range sym.All() {
		names = append(names, name)
	}
	assert.Equal([]string{"x", "y", "z"}, names)
}

func TestSymbols_Undeclared(t *testing.T) {
	assert := assert.New(t)

	sym := NewSymbols()
	_, err := sym.Resolve("b")
	var undeclared ErrUndeclared
	assert.True(errors.As(err, &undeclared))
	assert.Equal(ErrUndeclared("b"), undeclared)

	// Resolve never declares.
	assert.Equal(0, sym.Len())
}

func TestSymbols_Invalid(t *testing.T) {
	assert := assert.New(t)

	sym := NewSymbols()
	for _, name := range []string{"1x", "a-b", "", "$x"} {
		_, err := sym.ResolveOrDeclare(name)
		assert.ErrorIs(err, ErrSymbolInvalid, name)
	}
	assert.Equal(0, sym.Len())

	addr, err := sym.ResolveOrDeclare("_ok9")
	assert.NoError(err)
	assert.Equal(uint32(0), addr)
}

func TestSymbols_Full(t *testing.T) {
	assert := assert.New(t)

	sym := NewSymbols()
	for n := range MEMORY_SIZE {
		addr, err := sym.ResolveOrDeclare(fmt.Sprintf("v%d", n))
		assert.NoError(err)
		assert.Equal(uint32(n), addr)
	}

	_, err := sym.ResolveOrDeclare("one_too_many")
	assert.ErrorIs(err, ErrSymbolsFull)

	// Existing names still resolve.
	addr, err := sym.ResolveOrDeclare("v2047")
	assert.NoError(err)
	assert.Equal(uint32(ADDRESS_MASK), addr)
}

func TestSymbols_Reset(t *testing.T) {
	assert := assert.New(t)

	sym := NewSymbols()
	_, _ = sym.ResolveOrDeclare("a")
	_, _ = sym.ResolveOrDeclare("b")
	sym.Reset()

	assert.Equal(0, sym.Len())
	addr, err := sym.ResolveOrDeclare("b")
	assert.NoError(err)
	assert.Equal(uint32(0), addr)
}

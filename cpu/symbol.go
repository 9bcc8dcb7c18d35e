package cpu

import (
	"iter"
	"regexp"
)

var symbolName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Symbols maps variable names to memory addresses.
//
// Addresses are allocated in order of first declaration, starting at 0,
// and are never reused.
type Symbols struct {
	address map[string]uint32
	order   []string
	last    int // Last allocated address, -1 when empty.
}

// NewSymbols creates an empty symbol table.
func NewSymbols() (sym *Symbols) {
	sym = &Symbols{}
	sym.Reset()
	return
}

// Reset forgets all declared variables.
func (sym *Symbols) Reset() {
	sym.address = make(map[string]uint32)
	sym.order = sym.order[:0]
	sym.last = -1
}

// Len returns the number of declared variables.
func (sym *Symbols) Len() int {
	return len(sym.order)
}

// Resolve returns the address of a declared variable.
func (sym *Symbols) Resolve(name string) (addr uint32, err error) {
	addr, ok := sym.address[name]
	if !ok {
		err = ErrUndeclared(name)
		return
	}

	return
}

// ResolveOrDeclare returns the address of a variable, allocating the next
// free address if it has not been seen before.
func (sym *Symbols) ResolveOrDeclare(name string) (addr uint32, err error) {
	addr, ok := sym.address[name]
	if ok {
		return
	}

	if !symbolName.MatchString(name) {
		err = ErrSymbolInvalid
		return
	}

	if sym.last+1 >= MEMORY_SIZE {
		err = ErrSymbolsFull
		return
	}

	sym.last++
	addr = uint32(sym.last)
	sym.address[name] = addr
	sym.order = append(sym.order, name)

	return
}

// All returns the declared variables in allocation order.
func (sym *Symbols) All() iter.Seq2[string, uint32] {
	return func(yield func(name string, addr uint32) bool) {
		for _, name := range sym.order {
			if !yield(name, sym.address[name]) {
				return
			}
		}
	}
}

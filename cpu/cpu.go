package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/accum/internal"
)

var _cpu_defines = map[string]string{
	"ADDRESS_WIDTH_BITS": fmt.Sprintf("%d", ADDRESS_WIDTH_BITS),
	"MEMORY_SIZE":        fmt.Sprintf("%d", MEMORY_SIZE),
	"ADDRESS_MASK":       fmt.Sprintf("%#x", ADDRESS_MASK),
	"CONSTANT_MASK":      fmt.Sprintf("%#x", CONSTANT_MASK),
}

// Cpu is the simulation context for the accumulator machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Accumulator uint32   // The only general purpose register.
	Memory      []uint32 // Word addressed memory of MEMORY_SIZE words.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with zeroed memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Memory: make([]uint32, MEMORY_SIZE),
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the accumulator and memory.
// - Zeros the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	if len(cpu.Memory) != MEMORY_SIZE {
		cpu.Memory = make([]uint32, MEMORY_SIZE)
	}
	clear(cpu.Memory)
	cpu.Accumulator = 0
	cpu.Ticks = 0
}

// Clone returns an independent copy of the CPU state.
func (cpu *Cpu) Clone() *Cpu {
	return &Cpu{
		Verbose:     cpu.Verbose,
		Accumulator: cpu.Accumulator,
		Memory:      slices.Clone(cpu.Memory),
		Ticks:       cpu.Ticks,
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	val := cpu.Accumulator
	text = fmt.Sprintf("   ac: %04X_%04X\n", val>>16, val&0xffff)
	for addr, val := range cpu.Memory {
		if val == 0 {
			continue
		}
		text += fmt.Sprintf("  %03x: %04X_%04X\n", addr, val>>16, val&0xffff)
	}

	return
}

// Load splits an instruction stream into decoded instructions.
// An incomplete trailing word is zero padded. The whole stream is decoded
// before returning, so a bad opcode anywhere rejects all of it.
func Load(binary []byte) (codes []Code, err error) {
	index := 0
	for data := range internal.IterSeqGroup(slices.Values(binary), CODE_WIDTH_BYTES) {
		var code Code
		code, err = Decode(data)
		if err != nil {
			err = &ErrLoad{Index: index, Err: err}
			codes = nil
			return
		}
		codes = append(codes, code)
		index++
	}

	return
}

// Run resets the CPU, then loads and executes an instruction stream.
func (cpu *Cpu) Run(binary []byte) (err error) {
	codes, err := Load(binary)
	if err != nil {
		return
	}

	cpu.Reset()

	for _, code := range codes {
		err = cpu.Execute(code)
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.Ticks, code)
	}

	if len(cpu.Memory) != MEMORY_SIZE {
		cpu.Reset()
	}

	switch code.Op {
	case OP_LOAD_CONST:
		cpu.Accumulator = code.Operand & CONSTANT_MASK
	case OP_STORE:
		cpu.Memory[code.Operand&ADDRESS_MASK] = cpu.Accumulator
	case OP_LOAD_REL:
		addr := (cpu.Accumulator + code.Operand) & ADDRESS_MASK
		cpu.Accumulator = cpu.Memory[addr]
	case OP_BSWAP:
		cpu.Accumulator = bswap(cpu.Memory[cpu.Accumulator&ADDRESS_MASK])
	default:
		err = ErrOpcode(code.Op)
		return
	}

	cpu.Ticks++

	return
}

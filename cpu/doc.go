// Package cpu implements the accumulator machine and its assembler.
//
// The machine has a single 32-bit accumulator, a word addressed memory of
// MEMORY_SIZE words, and four instructions: load constant, store, load
// relative to the accumulator, and byte swap of the memory word addressed by
// the accumulator. Every instruction is a 4-byte word holding a 4-bit opcode
// and a 28-bit operand.
//
// The assembler translates one instruction per line into that stream,
// allocating memory for variables in order of first use, and supports
// equates and compile-time expression evaluation.
package cpu

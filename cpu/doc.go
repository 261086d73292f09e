// Package cpu implements the processor and assembler for the Little Man Computer.
//
// The CPU consists of a program counter, a single accumulator with a
// negative flag, and two scalar I/O channels (inbox and outbox). Memory is
// a bounded array of three digit decimal words, supplied by package memory.
//
// The assembler translates the LMC mnemonic language into words, resolving
// labels to absolute memory slots in two passes. Operands may also be
// compile-time $(...) expressions.
package cpu

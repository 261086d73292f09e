// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the mailbox store of the Little Man Computer.
package memory

import (
	"log"
	"slices"
)

const (
	DEFAULT_CAPACITY = 100 // Traditional number of mailboxes.
)

// Memory is a fixed capacity array of machine words.
type Memory struct {
	Verbose bool // If set, logs every write.
	Writes  int  // Count of writes since the last reset.

	cell []int
}

// NewMemory creates a new, zero filled, memory.
func NewMemory(capacity int) (mem *Memory) {
	mem = &Memory{
		cell: make([]int, capacity),
	}

	return
}

// Capacity returns the number of slots.
func (mem *Memory) Capacity() int {
	return len(mem.cell)
}

// Reset zeros all slots and the statistics.
func (mem *Memory) Reset() {
	clear(mem.cell)
	mem.Writes = 0
}

// Read gets the value of a slot.
func (mem *Memory) Read(index int) (value int, err error) {
	if index < 0 || index >= len(mem.cell) {
		err = ErrAddress(index)
		return
	}

	value = mem.cell[index]
	return
}

// Write sets the value of a slot.
func (mem *Memory) Write(index int, value int) (err error) {
	if index < 0 || index >= len(mem.cell) {
		err = ErrAddress(index)
		return
	}

	if mem.Verbose {
		log.Printf("memory: [%02d] %03d => %03d", index, mem.cell[index], value)
	}

	mem.cell[index] = value
	mem.Writes++

	return
}

// Load replaces the memory contents with a program.
// The low slots receive the program in order, the remainder are zeroed.
func (mem *Memory) Load(words []int) (err error) {
	if len(words) > len(mem.cell) {
		err = ErrProgramTooLarge{Length: len(words), Capacity: len(mem.cell)}
		return
	}

	mem.Reset()
	copy(mem.cell, words)

	return
}

// Words returns a snapshot of all slots.
func (mem *Memory) Words() []int {
	return slices.Clone(mem.cell)
}

// All iterates over every slot and its value.
func (mem *Memory) All(yield func(index int, value int) bool) {
	for n, value := range mem.cell {
		if !yield(n, value) {
			break
		}
	}
}

package cpu

import (
	"maps"
	"strings"
)

// Opcode represents a line of assembled code with its source location and generated word.
type Opcode struct {
	LineNo int      // Source line, or 0 for words loaded from an image.
	Slot   int      // Memory slot the word is loaded into.
	Words  []string // Source tokens, including any label.
	Word   Word     // Encoded word.
	Label  string   // Label defined on this line, if any.
}

// Program is an assembled program listing, in slot order.
type Program struct {
	Opcodes []Opcode
	Label   map[string]int // Map of labels to slots.
}

// NewProgram creates a listing for words loaded without source.
func NewProgram(words []Word) (prog *Program) {
	prog = &Program{}
	for n, word := range words {
		prog.Opcodes = append(prog.Opcodes, Opcode{
			Slot:  n,
			Words: strings.Fields(word.String()),
			Word:  word,
		})
	}

	return
}

// Debug returns the opcode loaded at a slot, or nil.
func (prog *Program) Debug(slot int) (op *Opcode) {
	if slot >= 0 && slot < len(prog.Opcodes) && prog.Opcodes[slot].Slot == slot {
		op = &prog.Opcodes[slot]
	}

	return
}

// Words returns the tokenized instruction sequence.
func (prog *Program) Words() (words []Word) {
	for _, op := range prog.Opcodes {
		words = append(words, op.Word)
	}

	return
}

// Binary returns the words as memory cell values.
func (prog *Program) Binary() (bins []int) {
	for _, op := range prog.Opcodes {
		bins = append(bins, int(op.Word))
	}

	return
}

// Labels returns a copy of the label table.
func (prog *Program) Labels() map[string]int {
	return maps.Clone(prog.Label)
}

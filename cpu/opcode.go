package cpu

import (
	"fmt"
	"slices"
	"strings"
)

// Word is a single machine word.
type Word int

const (
	WORD_MIN     = Word(0)   // Smallest storable word.
	WORD_MAX     = Word(999) // Largest storable word.
	WORD_MODULUS = 1000      // Arithmetic wraps modulo this value.
	WORD_DIGITS  = 3         // Decimal digits per word in a binary image.
	OPERAND_MAX  = 99        // Largest encodable operand.
)

// CodeClass is the opcode class, the hundreds digit of a word.
type CodeClass int

//go:generate go tool stringer -linecomment -type=CodeClass
const (
	OP_HLT = CodeClass(0) // HLT
	OP_ADD = CodeClass(1) // ADD
	OP_SUB = CodeClass(2) // SUB
	OP_STA = CodeClass(3) // STA
	OP_RSV = CodeClass(4) // RSV
	OP_LDA = CodeClass(5) // LDA
	OP_BRA = CodeClass(6) // BRA
	OP_BRZ = CodeClass(7) // BRZ
	OP_BRP = CodeClass(8) // BRP
	OP_IO  = CodeClass(9) // IO
)

// Addressable returns true if the class takes a memory slot operand.
func (class CodeClass) Addressable() bool {
	return class >= OP_ADD && class <= OP_BRP && class != OP_RSV
}

// CodeChannel is an IO channel index, the operand of an IO class word.
type CodeChannel int

//go:generate go tool stringer -linecomment -type=CodeChannel
const (
	CHANNEL_ID_INBOX  = CodeChannel(1) // inbox
	CHANNEL_ID_OUTBOX = CodeChannel(2) // outbox
)

// Fixed instruction words.
const (
	WORD_HLT = Word(0)
	WORD_INP = Word(int(OP_IO)*100 + int(CHANNEL_ID_INBOX))
	WORD_OUT = Word(int(OP_IO)*100 + int(CHANNEL_ID_OUTBOX))
)

// Reserved mnemonics, in opcode order. DAT is the storage pseudo-op.
var mnemonics = []string{
	"HLT", "ADD", "SUB", "STA", "LDA", "BRA", "BRZ", "BRP", "INP", "OUT", "DAT",
}

// IsMnemonic returns true if the word, in any case, is a reserved mnemonic.
func IsMnemonic(word string) bool {
	return slices.Contains(mnemonics, strings.ToUpper(word))
}

// MakeWord creates an instruction word from a class and an operand.
func MakeWord(class CodeClass, operand int) Word {
	return Word(int(class)*100 + operand)
}

// MakeCodeIo creates an IO instruction for a channel.
func MakeCodeIo(channel CodeChannel) Word {
	return MakeWord(OP_IO, int(channel))
}

// Valid returns true if the word is within the storable range.
func (word Word) Valid() bool {
	return word >= WORD_MIN && word <= WORD_MAX
}

// Class returns the opcode class of the word.
func (word Word) Class() CodeClass {
	return CodeClass((int(word) / 100) % 10)
}

// Operand returns the low two digits of the word.
func (word Word) Operand() int {
	return int(word) % 100
}

// Executable returns true if the word decodes to an instruction.
func (word Word) Executable() bool {
	if !word.Valid() {
		return false
	}

	switch word.Class() {
	case OP_HLT:
		return word == WORD_HLT
	case OP_RSV:
		return false
	case OP_IO:
		return word == WORD_INP || word == WORD_OUT
	}

	return true
}

// String returns the assembly language representation of the word.
// Words that do not decode to an instruction are shown as DAT.
func (word Word) String() string {
	if !word.Executable() {
		return fmt.Sprintf("DAT %d", int(word))
	}

	switch word {
	case WORD_HLT:
		return "HLT"
	case WORD_INP:
		return "INP"
	case WORD_OUT:
		return "OUT"
	}

	return fmt.Sprintf("%v %02d", word.Class(), word.Operand())
}

package cpu

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("halted"))
	ErrChannelInvalid = errors.New(f("channel invalid"))
	ErrInputExhausted = errors.New(f("input exhausted"))

	// Instruction decode errors
	ErrOpcodeReserved = errors.New(f("reserved opcode class"))
	ErrOpcodeData     = errors.New(f("data executed as instruction"))

	// Assembler errors
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrLabelInvalid string

func (el ErrLabelInvalid) Error() string {
	return f("'%v' is not a valid label", string(el))
}

type ErrOperandRange int

func (err ErrOperandRange) Error() string {
	return f("operand %d outside 0..%d", int(err), OPERAND_MAX)
}

type ErrWordRange int

func (err ErrWordRange) Error() string {
	return f("value %d outside word range %d..%d", int(err), int(WORD_MIN), int(WORD_MAX))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrImageLength is returned when a binary image is not a whole number of words.
type ErrImageLength int

func (err ErrImageLength) Error() string {
	return f("image length %d is not a multiple of %d", int(err), WORD_DIGITS)
}

// ErrImageDigit is returned when a binary image word is not decimal.
type ErrImageDigit struct {
	Offset int
	Chunk  string
}

func (err ErrImageDigit) Error() string {
	return f("image offset %d '%v' is not a word", err.Offset, err.Chunk)
}

// ErrFault records the machine state at the point of a runtime fault.
type ErrFault struct {
	Pc          int
	Word        Word
	Accumulator Word
	Err         error
}

func (err *ErrFault) Error() string {
	return f("fault at pc %02d word %03d acc %03d: %v", err.Pc, int(err.Word), int(err.Accumulator), err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

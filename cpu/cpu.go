package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/lmc/io"
	"github.com/ezrec/lmc/memory"
)

// Channel is an I/O channel interface.
type Channel io.Channel

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

// Cpu is the simulation context for the Little Man Computer.
//
// Arithmetic wraps modulo WORD_MODULUS, so the accumulator always holds a
// storable word. Negative is set when the last ADD, SUB or INP produced a
// value below zero before wrapping, and is what BRP tests.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory *memory.Memory // Reference to the mailboxes.

	Pc          int   // Slot of the next instruction.
	Accumulator Word  // Accumulator register.
	Negative    bool  // Negative flag.
	State       State // Execution state.
	Fault       error // Fault that stopped execution, if any.

	Ticks int // CPU ticks counter.

	channel [OPERAND_MAX + 1]Channel // IO channels.
}

// NewCpu creates a new CPU attached to a memory.
func NewCpu(mem *memory.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: mem,
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "acc", "neg", "state", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02d", cpu.Pc)
		case "acc":
			strval = fmt.Sprintf("%03d", int(cpu.Accumulator))
		case "neg":
			strval = "false"
			if cpu.Negative {
				strval = "true"
			}
		case "state":
			strval = cpu.State.String()
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears the accumulator and flags.
// - Sets the program counter to slot 0.
// - Rewinds all IO channels.
//
// Memory is left untouched, so a loaded program can be run again.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Pc = 0
	cpu.Accumulator = 0
	cpu.Negative = false
	cpu.State = STATE_RUNNING
	cpu.Fault = nil
	cpu.Ticks = 0

	for _, channel := range cpu.channel {
		if channel == nil {
			continue
		}
		channel.Rewind()
	}
}

// SetChannel sets a channel index to a channel simulation model.
func (cpu *Cpu) SetChannel(index CodeChannel, channel Channel) {
	cpu.channel[int(index)] = channel
}

// GetChannel gets the channel simulation model by index.
func (cpu *Cpu) GetChannel(ch CodeChannel) (channel Channel, err error) {
	index := int(ch)
	if index < 0 || index >= len(cpu.channel) || cpu.channel[index] == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel[index]
	return
}

// FetchCode fetches the word at the program counter.
func (cpu *Cpu) FetchCode() (word Word, err error) {
	value, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	word = Word(value)
	return
}

// Tick executes a single CPU instruction cycle.
// Once halted, Tick returns ErrHalted. Once faulted, Tick returns the
// same *ErrFault on every call.
func (cpu *Cpu) Tick() (err error) {
	switch cpu.State {
	case STATE_HALTED:
		return ErrHalted
	case STATE_FAULTED:
		return cpu.Fault
	}

	word, err := cpu.FetchCode()
	if err == nil {
		err = cpu.Execute(word)
	}
	if err != nil {
		cpu.State = STATE_FAULTED
		cpu.Fault = &ErrFault{
			Pc:          cpu.Pc,
			Word:        word,
			Accumulator: cpu.Accumulator,
			Err:         err,
		}
		if cpu.Verbose {
			log.Printf("cpu: %v", cpu.Fault)
		}
		return cpu.Fault
	}

	cpu.Ticks += 1

	return
}

// setAccumulator stores a raw arithmetic result, wrapping it into range.
func (cpu *Cpu) setAccumulator(raw int) {
	cpu.Negative = raw < 0
	raw %= WORD_MODULUS
	if raw < 0 {
		raw += WORD_MODULUS
	}
	cpu.Accumulator = Word(raw)
}

// Execute executes a single decoded instruction.
// The program counter only changes if the instruction succeeds.
func (cpu *Cpu) Execute(word Word) (err error) {
	if cpu.Verbose {
		log.Printf("%02d: %03d %v", cpu.Pc, int(word), word)
	}

	if !word.Valid() {
		err = ErrWordRange(word)
		return
	}

	next_pc := cpu.Pc + 1

	operand := word.Operand()

	switch word.Class() {
	case OP_HLT:
		if word != WORD_HLT {
			err = ErrOpcodeData
			return
		}
		cpu.State = STATE_HALTED
	case OP_ADD:
		var value int
		value, err = cpu.Memory.Read(operand)
		if err != nil {
			return
		}
		cpu.setAccumulator(int(cpu.Accumulator) + value)
	case OP_SUB:
		var value int
		value, err = cpu.Memory.Read(operand)
		if err != nil {
			return
		}
		cpu.setAccumulator(int(cpu.Accumulator) - value)
	case OP_STA:
		err = cpu.Memory.Write(operand, int(cpu.Accumulator))
		if err != nil {
			return
		}
	case OP_LDA:
		var value int
		value, err = cpu.Memory.Read(operand)
		if err != nil {
			return
		}
		cpu.setAccumulator(value)
	case OP_BRA, OP_BRZ, OP_BRP:
		if operand >= cpu.Memory.Capacity() {
			err = memory.ErrAddress(operand)
			return
		}
		var taken bool
		switch word.Class() {
		case OP_BRA:
			taken = true
		case OP_BRZ:
			taken = cpu.Accumulator == 0
		case OP_BRP:
			taken = !cpu.Negative
		}
		if taken {
			next_pc = operand
		}
	case OP_IO:
		var channel Channel
		channel, err = cpu.GetChannel(CodeChannel(operand))
		if err != nil {
			return
		}
		switch CodeChannel(operand) {
		case CHANNEL_ID_INBOX:
			var value int
			value, err = channel.Receive()
			if errors.Is(err, io.ErrChannelEmpty) {
				err = ErrInputExhausted
			}
			if err != nil {
				return
			}
			cpu.setAccumulator(value)
		case CHANNEL_ID_OUTBOX:
			err = channel.Send(int(cpu.Accumulator))
			if err != nil {
				return
			}
		default:
			err = ErrChannelInvalid
			return
		}
	case OP_RSV:
		err = ErrOpcodeReserved
		return
	}

	cpu.Pc = next_pc

	return
}

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/io"
	"github.com/ezrec/lmc/memory"
)

const (
	MEMORY_SIZE = memory.DEFAULT_CAPACITY // Mailboxes in the machine.
)

// Emulator state. CPU + Memory + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // Tape IO channel, serving both inbox and outbox.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(memory.NewMemory(MEMORY_SIZE)),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetChannel(cpu.CHANNEL_ID_INBOX, &emu.Tape)
	emu.Cpu.SetChannel(cpu.CHANNEL_ID_OUTBOX, &emu.Tape)

	return
}

// Reset loads the program into memory and resets the CPU.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Memory.Verbose = emu.Verbose

	err = emu.Cpu.Memory.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	emu.Cpu.Reset()

	return
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// Word returns the word at the program counter.
func (emu *Emulator) Word() cpu.Word {
	word, _ := emu.Cpu.FetchCode()
	return word
}

// LineNo returns the source line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	op := emu.Program.Debug(emu.Cpu.Pc)
	if op != nil {
		return op.LineNo
	}

	return 0
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Cpu.State == cpu.STATE_HALTED

	return
}

// Run ticks the emulator until it halts or faults.
// A positive limit bounds the number of ticks.
func (emu *Emulator) Run(limit int) (err error) {
	for ticks := 0; limit <= 0 || ticks < limit; ticks++ {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrTickLimit}

	return
}

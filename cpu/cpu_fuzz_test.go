package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lmc/io"
	"github.com/ezrec/lmc/memory"
)

func FuzzCpu(f *testing.F) {
	for _, word := range []int{0, 1, 105, 250, 399, 412, 500, 699, 750, 800, 900, 901, 902, 999, 1000, -1} {
		f.Add(word, 0, 42)
		f.Add(word, 999, 1)
	}

	f.Fuzz(func(t *testing.T, opcode int, acc int, data int) {
		assert := assert.New(t)

		word := Word(opcode)

		mem := memory.NewMemory(memory.DEFAULT_CAPACITY)
		for n := range mem.Capacity() {
			assert.NoError(mem.Write(n, ((data%WORD_MODULUS)+WORD_MODULUS)%WORD_MODULUS))
		}
		assert.NoError(mem.Write(10, opcode))

		inbox := &io.Temporary{Data: []int{data}}
		outbox := &io.Temporary{}

		cpu := NewCpu(mem)
		cpu.SetChannel(CHANNEL_ID_INBOX, inbox)
		cpu.SetChannel(CHANNEL_ID_OUTBOX, outbox)
		cpu.Reset()
		cpu.Pc = 10
		cpu.setAccumulator(acc)

		err := cpu.Tick()

		assert.True(cpu.Accumulator.Valid())
		if !word.Executable() {
			assert.Error(err)
			assert.Equal(STATE_FAULTED, cpu.State)
			assert.Equal(10, cpu.Pc)
			return
		}

		assert.NoError(err)

		switch word.Class() {
		case OP_HLT:
			assert.Equal(STATE_HALTED, cpu.State)
			assert.Equal(11, cpu.Pc)
		case OP_BRA:
			assert.Equal(word.Operand(), cpu.Pc)
		case OP_BRZ, OP_BRP:
			assert.True(cpu.Pc == word.Operand() || cpu.Pc == 11)
		default:
			assert.Equal(STATE_RUNNING, cpu.State)
			assert.Equal(11, cpu.Pc)
		}

		if word == WORD_OUT {
			assert.Equal(1, len(outbox.Values()))
		}
	})
}

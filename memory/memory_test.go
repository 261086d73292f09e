// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(DEFAULT_CAPACITY)

	assert.Equal(100, mem.Capacity())
	for n, value := range mem.All {
		assert.Equal(0, value, n)
	}
}

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		index int
		value int
		err   error
	}){
		{0, 901, nil},
		{99, 42, nil},
		{50, 0, nil},
		{100, 1, ErrAddress(100)},
		{-1, 1, ErrAddress(-1)},
		{1000, 1, ErrAddress(1000)},
	}

	mem := NewMemory(DEFAULT_CAPACITY)

	for _, entry := range table {
		err := mem.Write(entry.index, entry.value)
		assert.Equal(entry.err, err, entry.index)

		value, err := mem.Read(entry.index)
		assert.Equal(entry.err, err, entry.index)
		if entry.err == nil {
			assert.Equal(entry.value, value, entry.index)
		}
	}

	assert.Equal(3, mem.Writes)
}

func TestMemory_ErrAddress(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(10)
	_, err := mem.Read(10)
	assert.True(errors.Is(err, ErrAddress(0)))
	assert.Equal(ErrAddress(10), err)
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(5)
	assert.NoError(mem.Write(4, 123))

	err := mem.Load([]int{901, 902, 0})
	assert.NoError(err)
	assert.Equal([]int{901, 902, 0, 0, 0}, mem.Words())
	assert.Equal(0, mem.Writes)

	err = mem.Load([]int{1, 2, 3, 4, 5, 6})
	assert.Equal(ErrProgramTooLarge{Length: 6, Capacity: 5}, err)
	assert.Equal([]int{901, 902, 0, 0, 0}, mem.Words())

	err = mem.Load([]int{1, 2, 3, 4, 5})
	assert.NoError(err)
	assert.Equal([]int{1, 2, 3, 4, 5}, mem.Words())
}

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(3)
	assert.NoError(mem.Load([]int{7, 8, 9}))
	mem.Reset()
	assert.Equal([]int{0, 0, 0}, mem.Words())
}

package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemporary(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{}
	assert.Equal(0, temp.Size())

	_, err := temp.Receive()
	assert.Equal(ErrChannelEmpty, err)

	assert.NoError(temp.Send(1))
	assert.NoError(temp.Send(2))
	assert.NoError(temp.Send(3))
	assert.Equal(3, temp.Size())

	value, err := temp.Receive()
	assert.NoError(err)
	assert.Equal(1, value)
	assert.Equal(2, temp.Size())

	temp.Rewind()
	assert.Equal(3, temp.Size())
	assert.Equal([]int{1, 2, 3}, temp.Values())

	temp.Reset()
	assert.Equal(0, temp.Size())
	assert.Empty(temp.Values())
}

func TestTemporary_Capacity(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}

	assert.NoError(temp.Send(1))
	assert.NoError(temp.Send(2))

	// Should be full now
	err := temp.Send(3)
	assert.Equal(ErrChannelFull, err)
}

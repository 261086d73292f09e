package io

import (
	"slices"
)

// Temporary implements an in-memory FIFO of values.
// A zero Capacity is unbounded.
type Temporary struct {
	Capacity int

	ReadIndex int
	Data      []int
}

var _ Channel = (*Temporary)(nil)

// Rewind restarts reading from the first value sent.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
}

// Reset empties the buffer.
func (temp *Temporary) Reset() {
	temp.ReadIndex = 0
	temp.Data = temp.Data[:0]
}

// Size returns the number of unread values.
func (temp *Temporary) Size() int {
	return len(temp.Data) - temp.ReadIndex
}

// Receive reads the oldest unread value.
func (temp *Temporary) Receive() (value int, err error) {
	if temp.Size() <= 0 {
		err = ErrChannelEmpty
		return
	}

	value = temp.Data[temp.ReadIndex]
	temp.ReadIndex++

	return
}

// Send appends a value to the buffer.
// Returns ErrChannelFull if the buffer has reached capacity.
func (temp *Temporary) Send(value int) (err error) {
	if temp.Capacity > 0 && len(temp.Data) >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	temp.Data = append(temp.Data, value)

	return
}

// Values returns a copy of every value sent.
func (temp *Temporary) Values() []int {
	return slices.Clone(temp.Data)
}

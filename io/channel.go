// Package io provides the scalar I/O channels of the Little Man Computer.
// The inbox feeds INP instructions and the outbox collects OUT values.
package io

// Channel defines the interface for all I/O channels.
// Channels carry one machine word at a time.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive reads the next value, or ErrChannelEmpty when none remain.
	Receive() (value int, err error)
	// Send writes a single value to the channel.
	Send(value int) error
}

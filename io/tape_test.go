package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("42 7\n\n  -3\t999\n")}

	var values []int
	for {
		value, err := tape.Receive()
		if errors.Is(err, ErrChannelEmpty) {
			break
		}
		assert.NoError(err)
		values = append(values, value)
	}

	assert.Equal([]int{42, 7, -3, 999}, values)

	// Exhausted tapes stay exhausted.
	_, err := tape.Receive()
	assert.Equal(ErrChannelEmpty, err)
}

func TestTape_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	_, err := tape.Receive()
	assert.Equal(ErrChannelEmpty, err)
}

func TestTape_Receive_Invalid(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("12 twelve 13")}

	value, err := tape.Receive()
	assert.NoError(err)
	assert.Equal(12, value)

	_, err = tape.Receive()
	assert.Equal(ErrParseValue("twelve"), err)

	value, err = tape.Receive()
	assert.NoError(err)
	assert.Equal(13, value)
}

func TestTape_Receive_NewInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1")}
	value, err := tape.Receive()
	assert.NoError(err)
	assert.Equal(1, value)

	tape.Input = strings.NewReader("2")
	value, err = tape.Receive()
	assert.NoError(err)
	assert.Equal(2, value)
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(42))
	assert.NoError(tape.Send(0))
	assert.NoError(tape.Send(999))

	assert.Equal("42\n0\n999\n", output.String())
}

func TestTape_Send_NoOutput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.Equal(ErrChannelFull, tape.Send(1))
}

package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Tape provides sequential I/O of decimal values over byte streams.
// Input is whitespace separated decimal numbers, output is one
// number per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	source  io.Reader
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive reads the next decimal value from the input stream.
func (tc *Tape) Receive() (value int, err error) {
	if tc.Input == nil {
		err = ErrChannelEmpty
		return
	}

	// Input may be swapped between runs.
	if tc.scanner == nil || tc.source != tc.Input {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(bufio.ScanWords)
		tc.source = tc.Input
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrChannelEmpty
		}
		return
	}

	word := tc.scanner.Text()
	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrParseValue(word)
		return
	}

	return
}

// Send writes a value to the output stream as a line of text.
func (tc *Tape) Send(value int) (err error) {
	if tc.Output == nil {
		err = ErrChannelFull
		return
	}

	_, err = fmt.Fprintln(tc.Output, value)

	return
}

package io

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull  = errors.New(f("channel full"))
	ErrChannelEmpty = errors.New(f("channel empty"))
)

// ErrParseValue is returned when tape input is not a decimal number.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a number", string(err))
}

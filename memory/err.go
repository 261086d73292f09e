package memory

import (
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

// ErrAddress is returned when a slot index falls outside the memory.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %d out of range", int(ea))
}

// Is matches any ErrAddress, regardless of the index.
func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrProgramTooLarge is returned when a program does not fit in memory.
type ErrProgramTooLarge struct {
	Length   int
	Capacity int
}

func (err ErrProgramTooLarge) Error() string {
	return f("program of %d words exceeds memory of %d slots", err.Length, err.Capacity)
}

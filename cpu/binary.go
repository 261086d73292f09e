package cpu

import (
	"fmt"
	"io"
)

// MarshalWords writes words as a binary image. Each word is stored as
// WORD_DIGITS zero padded ASCII decimal digits, with no separators.
// Nothing is written if any word is outside the storable range.
func MarshalWords(file io.Writer, words []Word) (err error) {
	buf := make([]byte, 0, len(words)*WORD_DIGITS)
	for _, word := range words {
		if !word.Valid() {
			err = ErrWordRange(word)
			return
		}
		buf = fmt.Appendf(buf, "%03d", int(word))
	}

	_, err = file.Write(buf)

	return
}

// Marshal writes the program as a binary image.
func (prog *Program) Marshal(file io.Writer) (err error) {
	return MarshalWords(file, prog.Words())
}

// Unmarshal reads the words of a binary image.
func Unmarshal(file io.Reader) (words []Word, err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	if len(data)%WORD_DIGITS != 0 {
		err = ErrImageLength(len(data))
		return
	}

	words = make([]Word, 0, len(data)/WORD_DIGITS)
	for offset := 0; offset < len(data); offset += WORD_DIGITS {
		chunk := data[offset : offset+WORD_DIGITS]
		var value int
		for _, digit := range chunk {
			if digit < '0' || digit > '9' {
				words = nil
				err = ErrImageDigit{Offset: offset, Chunk: string(chunk)}
				return
			}
			value = value*10 + int(digit-'0')
		}
		words = append(words, Word(value))
	}

	return
}

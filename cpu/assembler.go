// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler is a two pass assembler for the Little Man Computer.
//
// The first pass binds every label to the slot of the line it prefixes.
// The second pass encodes each line, resolving label operands against
// the table built by the first.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	Label map[string]int // Map of labels to memory slots.
}

// Source is a cleaned line of assembly text.
type Source struct {
	LineNo int      // Line number in the input.
	Line   string   // Line as written, for error reports.
	Words  []string // Whitespace separated tokens, comment removed.
	Exprs  []string // Text of $(...) expressions, referenced as $N tokens.
}

// classMap maps addressable mnemonics to their opcode class.
var classMap = map[string]CodeClass{
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"STA": OP_STA,
	"LDA": OP_LDA,
	"BRA": OP_BRA,
	"BRZ": OP_BRZ,
	"BRP": OP_BRP,
}

// fixedMap maps operand-less mnemonics to their word.
var fixedMap = map[string]Word{
	"HLT": WORD_HLT,
	"INP": WORD_INP,
	"OUT": WORD_OUT,
}

var exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// cleanLine strips comments and splits a line into words.
func cleanLine(text string, lineno int) (src Source) {
	src.LineNo = lineno
	src.Line = text

	line, _, _ := strings.Cut(text, "//")

	// Expressions may contain spaces, so lift them out before splitting.
	line = exprRegexp.ReplaceAllStringFunc(line, func(expr string) string {
		src.Exprs = append(src.Exprs, expr[2:len(expr)-1])
		return fmt.Sprintf(" $%d ", len(src.Exprs)-1)
	})

	src.Words = strings.Fields(line)

	return
}

// isIdentifier returns true for a word that could name a label.
func isIdentifier(word string) bool {
	for n, r := range word {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case n > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return len(word) > 0
}

// valueOf returns the value of a decimal literal.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations, with labels predeclared.
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for label, slot := range asm.Label {
		pred[label] = starlark.MakeInt(slot)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// exprOf returns the value of a $N expression token.
func (asm *Assembler) exprOf(word string, exprs []string) (value int, ok bool, err error) {
	if !strings.HasPrefix(word, "$") {
		return
	}

	index, err := strconv.Atoi(word[1:])
	if err != nil || index < 0 || index >= len(exprs) {
		err = ErrParseExpression(word)
		return
	}

	ok = true
	value, err = asm.parenEval(exprs[index])
	return
}

// operandOf resolves an operand as a label, expression or literal.
func (asm *Assembler) operandOf(word string, exprs []string) (value int, err error) {
	slot, ok := asm.Label[word]
	if ok {
		value = slot
		return
	}

	value, ok, err = asm.exprOf(word, exprs)
	if ok || err != nil {
		return
	}

	value, err = asm.valueOf(word)
	if err != nil && isIdentifier(word) {
		err = ErrLabelMissing(word)
	}

	return
}

// Scan reads and cleans all lines of an input stream.
func (asm *Assembler) Scan(input io.Reader) (lines []Source, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno += 1
		lines = append(lines, cleanLine(scanner.Text(), lineno))
	}

	err = scanner.Err()

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := asm.Scan(input)
	if err != nil {
		return
	}

	clear(asm.Label)
	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	asm.Opcode = asm.Opcode[:0]

	var src Source
	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: src.LineNo, Line: src.Line, Err: err}
		}
	}()

	// Pass 1: bind labels to slots.
	slot := 0
	for _, src = range lines {
		if len(src.Words) == 0 {
			continue
		}

		label := src.Words[0]
		if !IsMnemonic(label) {
			if !isIdentifier(label) {
				err = ErrLabelInvalid(label)
				return
			}
			_, ok := asm.Label[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			asm.Label[label] = slot
			if asm.Verbose {
				log.Printf("%v: label %v = %02d", src.LineNo, label, slot)
			}
		}

		slot++
	}

	// Pass 2: encode.
	for _, src = range lines {
		if len(src.Words) == 0 {
			continue
		}

		if asm.Verbose {
			log.Printf("%v: %v", src.LineNo, src.Line)
		}

		err = asm.parseWords(src)
		if err != nil {
			return
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Label:   maps.Clone(asm.Label),
	}

	return
}

// parseWords encodes the words of a single non-blank line.
func (asm *Assembler) parseWords(src Source) (err error) {
	var word Word
	var label string

	words := src.Words
	if !IsMnemonic(words[0]) {
		label = words[0]
		words = words[1:]
	}

	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	mnemonic := strings.ToUpper(words[0])
	args := words[1:]

	if len(args) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	class, ok := classMap[mnemonic]
	switch {
	case ok:
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		var operand int
		operand, err = asm.operandOf(args[0], src.Exprs)
		if err != nil {
			return
		}
		if operand < 0 || operand > OPERAND_MAX {
			err = ErrOperandRange(operand)
			return
		}
		word = MakeWord(class, operand)
	case mnemonic == "DAT":
		if len(args) == 1 {
			var value int
			value, ok, err = asm.exprOf(args[0], src.Exprs)
			if err != nil {
				return
			}
			if !ok {
				value, err = asm.valueOf(args[0])
				if err != nil {
					return
				}
			}
			word = Word(value)
			if !word.Valid() {
				err = ErrWordRange(value)
				return
			}
		}
	default:
		word, ok = fixedMap[mnemonic]
		if !ok {
			err = ErrInstructionInvalid
			return
		}
		if len(args) != 0 {
			err = ErrOpcodeExtraArgs
			return
		}
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo: src.LineNo,
		Slot:   len(asm.Opcode),
		Words:  src.Words,
		Word:   word,
		Label:  label,
	})

	return
}

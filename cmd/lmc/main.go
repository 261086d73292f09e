// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/tebeka/atexit"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/emulator"
)

const (
	DEFAULT_OUTPUT = "build.lmc" // Binary written by build when no output is named.
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage:\n")
	fmt.Fprintf(out, "\t%v build <source> [output]\tAssemble source to a binary (default %v)\n", os.Args[0], DEFAULT_OUTPUT)
	fmt.Fprintf(out, "\t%v run <binary>\t\tRun a binary, reading INP values from stdin\n", os.Args[0])
}

func build(source string, output string) {
	log.Printf("Building Source To: %v", output)

	inf, err := os.Open(source)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}
	atexit.Register(func() { inf.Close() })

	asm := &cpu.Assembler{Verbose: verbose()}
	prog, err := asm.Parse(inf)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	ouf, err := os.Create(output)
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	err = prog.Marshal(ouf)
	if err == nil {
		err = ouf.Close()
	} else {
		ouf.Close()
	}
	if err != nil {
		os.Remove(output)
		atexit.Fatalf("%v: %v", output, err)
	}
}

func run(binary string) {
	log.Printf("Running File: %v", binary)

	inf, err := os.Open(binary)
	if err != nil {
		atexit.Fatalf("%v: %v", binary, err)
	}
	atexit.Register(func() { inf.Close() })

	words, err := cpu.Unmarshal(inf)
	if err != nil {
		atexit.Fatalf("%v: %v", binary, err)
	}

	emu := emulator.NewEmulator()
	emu.Program = cpu.NewProgram(words)
	emu.Verbose = verbose()
	emu.Tape.Input = os.Stdin
	emu.Tape.Output = os.Stdout

	err = emu.Reset()
	if err != nil {
		atexit.Fatalf("%v: %v", binary, err)
	}

	err = emu.Run(0)
	if err != nil {
		log.Print(emu.Cpu.String())
		atexit.Fatalf("%v: %v", binary, err)
	}
}

// verbose reports whether LMC_VERBOSE requests tracing.
func verbose() bool {
	on, _ := strconv.ParseBool(os.Getenv("LMC_VERBOSE"))
	return on
}

func main() {
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		atexit.Exit(2)
	}

	switch {
	case args[0] == "build" && len(args) >= 2 && len(args) <= 3:
		output := DEFAULT_OUTPUT
		if len(args) == 3 {
			output = args[2]
		}
		build(args[1], output)
	case args[0] == "run" && len(args) == 2:
		run(args[1])
	default:
		log.Printf("%v: Unknown arguments: %v", os.Args[0], args)
		flag.Usage()
		atexit.Exit(2)
	}

	atexit.Exit(0)
}

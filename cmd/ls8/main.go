// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

const (
	EXIT_RUNTIME = 1 // Program faulted while running.
	EXIT_LOAD    = 2 // Program could not be read, parsed, loaded or saved.
)

func main() {
	var assemble bool
	var save bool
	var output string
	var verbose bool

	flag.BoolVar(&assemble, "a", false, "Input is assembler source, not an .ls8 image")
	flag.BoolVar(&save, "s", false, "Write the .ls8 image to output, do not execute")
	flag.StringVar(&output, "o", "-", "Output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [options] FILE\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(EXIT_LOAD)
	}

	source := flag.Arg(0)

	inf, err := os.Open(source)
	if err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		os.Exit(EXIT_LOAD)
	}
	defer inf.Close()

	var prog *cpu.Program
	if assemble {
		asm := &cpu.Assembler{Verbose: verbose}
		prog, err = asm.Parse(inf)
	} else {
		prog, err = cpu.ReadImage(inf)
	}
	if err != nil {
		log.Printf("%v: %v", source, err)
		os.Exit(EXIT_LOAD)
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Printf("%v: %v", output, err)
			os.Exit(EXIT_LOAD)
		}
		defer ouf.Close()
	}

	if save {
		err = prog.WriteImage(ouf)
		if err != nil {
			log.Printf("%v: %v", output, err)
			os.Exit(EXIT_LOAD)
		}
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.SetOutput(ouf)

	err = emu.Reset()
	if err != nil {
		log.Printf("%v: %v", source, err)
		os.Exit(EXIT_LOAD)
	}

	err = emu.Run()
	if err != nil {
		log.Printf("%v: %v", source, err)
		os.Exit(EXIT_RUNTIME)
	}
}

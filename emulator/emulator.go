// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator binds an LS-8 program to a CPU and its output channels.
package emulator

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	ls8io "github.com/ezrec/ls8/io"
)

// Emulator state. CPU + program + output channels.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Number ls8io.Tape // PRN output channel.
	Char   ls8io.Tape // PRA output channel.
}

// NewEmulator creates a new emulator, printing to os.Stdout.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.SetOutput(os.Stdout)

	emu.Cpu.SetChannel(cpu.CHANNEL_ID_NUMBER, &emu.Number)
	emu.Cpu.SetChannel(cpu.CHANNEL_ID_CHAR, &emu.Char)

	return
}

// SetOutput directs both print channels to a writer.
func (emu *Emulator) SetOutput(w io.Writer) {
	emu.Number = ls8io.Tape{Output: w, Format: ls8io.TAPE_DECIMAL}
	emu.Char = ls8io.Tape{Output: w, Format: ls8io.TAPE_ASCII}
}

// Reset the CPU, and load the program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %d lines, %d bytes", len(emu.Program.Lines), emu.Program.Size())
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// LineNo returns the source line number for the instruction at the PC.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Address: pc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("\n%v", emu.Cpu.String())
	}

	done = emu.Cpu.Halted
	return
}

// Run ticks the emulator until the program halts or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

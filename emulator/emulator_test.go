package emulator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ls8/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
	assert.Equal(uint8(cpu.STACK_TOP), emu.Cpu.Register[cpu.SP])
}

func loadFile(t *testing.T, name string) (prog *cpu.Program) {
	inf, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer inf.Close()

	if filepath.Ext(name) == ".asm" {
		asm := &cpu.Assembler{}
		prog, err = asm.Parse(inf)
	} else {
		prog, err = cpu.ReadImage(inf)
	}
	require.NoError(t, err, name)

	return
}

func doRun(t *testing.T, prog *cpu.Program) (output string, err error) {
	emu := NewEmulator()
	emu.Program = prog

	out := &bytes.Buffer{}
	emu.SetOutput(out)

	err = emu.Reset()
	require.NoError(t, err)

	err = emu.Run()
	output = out.String()
	return
}

func TestEmulatorPrograms(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		file   string
		output string
	}){
		{"print8.ls8", "8\n"},
		{"mult.ls8", "72\n"},
		{"stack.ls8", "2\n4\n1\n"},
		{"call.ls8", "20\n30\n"},
		{"countdown.asm", "5\n4\n3\n2\n1\n!\n"},
	}

	for _, entry := range table {
		prog := loadFile(t, entry.file)
		output, err := doRun(t, prog)
		assert.NoError(err, entry.file)
		assert.Equal(entry.output, output, entry.file)
	}
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"LDI R0,8",
		"LDI R1,9",
		"MUL R0,R1",
		"PRN R0",
		"HLT",
	}

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)

	emu := NewEmulator()
	emu.Program = prog
	out := &bytes.Buffer{}
	emu.SetOutput(out)
	require.NoError(t, emu.Reset())

	for n, line := range prog.Lines {
		here := program[line.LineNo-1]
		assert.Equal(line.LineNo, emu.LineNo(), here)
		assert.Equal(line.Address, emu.Pc(), here)
		assert.Equal(n, emu.Ticks(), here)

		done, err := emu.Tick()
		assert.NoError(err, here)
		assert.Equal(n == len(prog.Lines)-1, done, here)
	}

	// Ticking a halted CPU is not a fault.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(len(prog.Lines), emu.Ticks())

	assert.Equal("72\n", out.String())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = loadFile(t, "mult.ls8")
	out := &bytes.Buffer{}
	emu.SetOutput(out)

	for range 2 {
		assert.NoError(emu.Reset())
		assert.Equal(0, emu.Pc())
		assert.NoError(emu.Run())
	}

	assert.Equal("72\n72\n", out.String())
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	prog := loadFile(t, "divzero.asm")
	_, err := doRun(t, prog)

	assert.ErrorIs(err, cpu.ErrArithmetic)
	assert.ErrorIs(err, cpu.ErrDivideByZero)
	assert.ErrorIs(err, cpu.ErrOpcode{Address: 6, Opcode: cpu.DIV})

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(3, rt.LineNo)
		assert.Equal(6, rt.Address)
		assert.True(strings.HasPrefix(rt.Error(), "line 3 address 0x06 "), rt.Error())
	}
}

func TestEmulatorUnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	prog, err := cpu.ReadImage(strings.NewReader("# bad\n00000010\n"))
	require.NoError(t, err)

	_, err = doRun(t, prog)
	assert.ErrorIs(err, cpu.ErrDecode)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(2, rt.LineNo)
		assert.Equal(0, rt.Address)
	}
}

func TestEmulatorRunOff(t *testing.T) {
	assert := assert.New(t)

	// No HLT: the CPU executes the zeroed memory as NOP until it runs
	// off the end.
	prog, err := cpu.ReadImage(strings.NewReader("00000000\n"))
	require.NoError(t, err)

	_, err = doRun(t, prog)
	assert.ErrorIs(err, cpu.ErrBounds)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(0, rt.LineNo)
		assert.Equal(cpu.MEMORY_SIZE, rt.Address)
		assert.True(strings.HasPrefix(rt.Error(), "address 0x100 "), rt.Error())
	}
}

func TestErrRuntime(t *testing.T) {
	assert := assert.New(t)

	err := &ErrRuntime{LineNo: 4, Address: 0x10, Err: cpu.ErrHalted}
	assert.ErrorIs(err, cpu.ErrHalted)
	assert.Equal("line 4 address 0x10 "+cpu.ErrHalted.Error(), err.Error())
}

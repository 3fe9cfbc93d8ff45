package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

// Channel is an output channel interface.
type Channel io.Channel

// CodeChannel is an output channel index.
type CodeChannel int

const (
	CHANNEL_ID_NUMBER = CodeChannel(0) // PRN output.
	CHANNEL_ID_CHAR   = CodeChannel(1) // PRA output.
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("0x%x", STACK_TOP),
	"SP":          fmt.Sprintf("R%v", SP),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory   // Main memory, holding program and stack.
	Register [8]uint8 // Register bank. Register[SP] is the stack pointer.
	Pc       int      // Address of the next instruction.
	Flags    Flags    // Result of the last CMP.
	Halted   bool     // Set by HLT.

	Ticks int // Instructions executed since reset.

	channel [2]Channel // Output channels.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu, including one OP_<mnemonic> per instruction.
func Defines() iter.Seq2[string, string] {
	opcodes := func(yield func(string, string) bool) {
		for _, op := range Opcodes {
			if !yield("OP_"+op.String(), fmt.Sprintf("0x%02x", uint8(op))) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(maps.All(_cpu_defines), opcodes)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"fl",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6",
		"sp",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "fl":
			strval = cpu.Flags.String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6":
			strval = fmt.Sprintf("%02X", cpu.Register[reg[1]-'0'])
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Register[SP])
		case "stack":
			val, err := cpu.Peek()
			if err == nil {
				strval = fmt.Sprintf("%02X", val)
			} else {
				strval = "--"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears the registers, flags and memory.
// - Sets the stack pointer to STACK_TOP.
// - Zeros statistics counters.
// - Rewinds all output channels.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Register[SP] = STACK_TOP
	cpu.Pc = 0
	cpu.Flags = Flags{}
	cpu.Halted = false
	cpu.Ticks = 0

	for _, channel := range cpu.channel {
		if channel == nil {
			continue
		}
		channel.Rewind()
	}
}

// Load resets the CPU, then places the program image at address 0.
func (cpu *Cpu) Load(image []uint8) (err error) {
	cpu.Reset()

	err = cpu.Memory.Load(image)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// SetChannel sets a channel index to a channel model.
// A nil channel detaches the index.
func (cpu *Cpu) SetChannel(index CodeChannel, channel Channel) {
	cpu.channel[int(index)] = channel
}

// GetChannel gets the channel model by index.
func (cpu *Cpu) GetChannel(ch CodeChannel) (channel Channel, err error) {
	index := int(ch)
	if index < 0 || index >= len(cpu.channel) || cpu.channel[index] == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel[index]
	return
}

// Fetch reads the instruction at the PC, and its operand bytes.
func (cpu *Cpu) Fetch() (op Opcode, args [2]uint8, err error) {
	code, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	op = Opcode(code)
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Address: cpu.Pc, Opcode: op}, err)
		}
	}()

	count := op.Operands()
	if count > len(args) {
		err = errors.Join(ErrDecode, ErrOperandsInvalid)
		return
	}

	for n := range count {
		args[n], err = cpu.Memory.Read(cpu.Pc + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	op, args, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(op, args)
	return
}

// Run ticks the CPU until it halts, or an instruction faults.
func (cpu *Cpu) Run() (err error) {
	for !cpu.Halted {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// register returns the register selected by an operand byte.
func (cpu *Cpu) register(index uint8) (reg *uint8, err error) {
	if int(index) >= len(cpu.Register) {
		err = errors.Join(ErrDecode, ErrRegisterInvalid)
		return
	}

	reg = &cpu.Register[index]
	return
}

// registers returns the registers selected by both operand bytes.
func (cpu *Cpu) registers(args [2]uint8) (reg_a, reg_b *uint8, err error) {
	reg_a, err = cpu.register(args[0])
	if err != nil {
		return
	}

	reg_b, err = cpu.register(args[1])
	return
}

// taken returns true if the conditional jump op is satisfied by the flags.
func (cpu *Cpu) taken(op Opcode) bool {
	fl := cpu.Flags
	switch op {
	case JEQ:
		return fl.Equal
	case JNE:
		return !fl.Equal
	case JGT:
		return fl.Greater
	case JLT:
		return fl.Less
	case JLE:
		return fl.Less || fl.Equal
	case JGE:
		return fl.Greater || fl.Equal
	}

	// JMP
	return true
}

// Execute executes a single decoded instruction located at the PC.
func (cpu *Cpu) Execute(op Opcode, args [2]uint8) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Address: cpu.Pc, Opcode: op}, err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%02x: %v %02x %02x", cpu.Pc, op, args[0], args[1])
	}

	next_pc := cpu.Pc + op.Size()

	switch op {
	case NOP:
		// pass
	case HLT:
		cpu.Halted = true
	case LDI:
		var reg *uint8
		reg, err = cpu.register(args[0])
		if err != nil {
			return
		}
		*reg = args[1]
	case LD:
		var reg_a, reg_b *uint8
		reg_a, reg_b, err = cpu.registers(args)
		if err != nil {
			return
		}
		var value uint8
		value, err = cpu.Memory.Read(int(*reg_b))
		if err != nil {
			return
		}
		*reg_a = value
	case ST:
		var reg_a, reg_b *uint8
		reg_a, reg_b, err = cpu.registers(args)
		if err != nil {
			return
		}
		err = cpu.Memory.Write(int(*reg_a), *reg_b)
		if err != nil {
			return
		}
	case PRN, PRA:
		var reg *uint8
		reg, err = cpu.register(args[0])
		if err != nil {
			return
		}
		index := CHANNEL_ID_NUMBER
		if op == PRA {
			index = CHANNEL_ID_CHAR
		}
		var channel Channel
		channel, err = cpu.GetChannel(index)
		if err != nil {
			return
		}
		err = channel.Send(*reg)
		if err != nil {
			return
		}
	case PUSH:
		var reg *uint8
		reg, err = cpu.register(args[0])
		if err != nil {
			return
		}
		err = cpu.Push(*reg)
		if err != nil {
			return
		}
	case POP:
		var reg *uint8
		reg, err = cpu.register(args[0])
		if err != nil {
			return
		}
		var value uint8
		value, err = cpu.Pop()
		if err != nil {
			return
		}
		*reg = value
	case CALL:
		var reg *uint8
		reg, err = cpu.register(args[0])
		if err != nil {
			return
		}
		target := int(*reg)
		if next_pc >= MEMORY_SIZE {
			// The return address does not fit in a byte.
			err = errors.Join(ErrBounds, ErrAddress(next_pc))
			return
		}
		err = cpu.Push(uint8(next_pc))
		if err != nil {
			return
		}
		next_pc = target
	case RET:
		var value uint8
		value, err = cpu.Pop()
		if err != nil {
			return
		}
		next_pc = int(value)
	case CMP:
		var reg_a, reg_b *uint8
		reg_a, reg_b, err = cpu.registers(args)
		if err != nil {
			return
		}
		cpu.Flags = Compare(*reg_a, *reg_b)
	case JMP, JEQ, JNE, JGT, JLT, JLE, JGE:
		var reg *uint8
		reg, err = cpu.register(args[0])
		if err != nil {
			return
		}
		if cpu.taken(op) {
			next_pc = int(*reg)
		}
	case INC, DEC, NOT:
		var reg *uint8
		reg, err = cpu.register(args[0])
		if err != nil {
			return
		}
		var output uint8
		output, err = Alu(op, *reg, 0)
		if err != nil {
			return
		}
		*reg = output
	case ADD, SUB, MUL, DIV, MOD, AND, OR, XOR, SHL, SHR:
		var reg_a, reg_b *uint8
		reg_a, reg_b, err = cpu.registers(args)
		if err != nil {
			return
		}
		var output uint8
		output, err = Alu(op, *reg_a, *reg_b)
		if err != nil {
			return
		}
		*reg_a = output
	default:
		err = ErrDecode
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}

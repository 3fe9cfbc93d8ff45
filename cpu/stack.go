package cpu

import (
	"errors"
)

// SP is the register index of the stack pointer.
const SP = 7

// Push decrements the stack pointer, then stores value at the new top.
func (cpu *Cpu) Push(value uint8) (err error) {
	sp := cpu.Register[SP]
	if sp == 0 {
		err = errors.Join(ErrBounds, ErrStackFull)
		return
	}

	sp--
	err = cpu.Memory.Write(int(sp), value)
	if err != nil {
		return
	}

	cpu.Register[SP] = sp
	return
}

// Pop reads the value at the top of stack, then increments the stack pointer.
func (cpu *Cpu) Pop() (value uint8, err error) {
	value, err = cpu.Peek()
	if err != nil {
		return
	}

	cpu.Register[SP]++
	return
}

// Peek returns the value at the top of stack.
func (cpu *Cpu) Peek() (value uint8, err error) {
	if cpu.StackEmpty() {
		err = errors.Join(ErrBounds, ErrStackEmpty)
		return
	}

	return cpu.Memory.Read(int(cpu.Register[SP]))
}

// StackEmpty returns true if nothing has been pushed since reset.
func (cpu *Cpu) StackEmpty() bool {
	return cpu.Register[SP] >= STACK_TOP
}

// StackDepth returns the number of bytes on the stack.
func (cpu *Cpu) StackDepth() int {
	if cpu.StackEmpty() {
		return 0
	}

	return STACK_TOP - int(cpu.Register[SP])
}

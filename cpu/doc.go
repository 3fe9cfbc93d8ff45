// Package cpu implements the LS-8 microprocessor, its program loader and
// its assembler.
//
// The CPU consists of a program counter (PC), eight 8-bit registers (R0-R7,
// with R7 serving as the stack pointer), an ALU, a three-bit flags register
// written only by CMP, and 256 bytes of memory. The stack grows downward
// from STACK_TOP in the same memory that holds the program.
//
// Instructions are one byte, optionally followed by one or two operand
// bytes. The top two bits of the instruction byte give the operand count.
//
// The loader reads the textual .ls8 image format (one binary literal per
// line). The assembler provides a mnemonic language for the same
// instruction set, supporting labels, equates, and compile-time expression
// evaluation.
package cpu

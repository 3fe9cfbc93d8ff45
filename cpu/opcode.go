package cpu

// Opcode is an LS-8 instruction byte.
//
// The byte is laid out as AABCDDDD, where AA is the operand count, B marks
// an ALU operation, C marks an instruction that may set the PC, and DDDD
// identifies the instruction.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	NOP  = Opcode(0b0000_0000) // NOP
	HLT  = Opcode(0b0000_0001) // HLT
	RET  = Opcode(0b0001_0001) // RET
	PUSH = Opcode(0b0100_0101) // PUSH
	POP  = Opcode(0b0100_0110) // POP
	PRN  = Opcode(0b0100_0111) // PRN
	PRA  = Opcode(0b0100_1000) // PRA
	CALL = Opcode(0b0101_0000) // CALL
	JMP  = Opcode(0b0101_0100) // JMP
	JEQ  = Opcode(0b0101_0101) // JEQ
	JNE  = Opcode(0b0101_0110) // JNE
	JGT  = Opcode(0b0101_0111) // JGT
	JLT  = Opcode(0b0101_1000) // JLT
	JLE  = Opcode(0b0101_1001) // JLE
	JGE  = Opcode(0b0101_1010) // JGE
	INC  = Opcode(0b0110_0101) // INC
	DEC  = Opcode(0b0110_0110) // DEC
	NOT  = Opcode(0b0110_1001) // NOT
	LDI  = Opcode(0b1000_0010) // LDI
	LD   = Opcode(0b1000_0011) // LD
	ST   = Opcode(0b1000_0100) // ST
	ADD  = Opcode(0b1010_0000) // ADD
	SUB  = Opcode(0b1010_0001) // SUB
	MUL  = Opcode(0b1010_0010) // MUL
	DIV  = Opcode(0b1010_0011) // DIV
	MOD  = Opcode(0b1010_0100) // MOD
	CMP  = Opcode(0b1010_0111) // CMP
	AND  = Opcode(0b1010_1000) // AND
	OR   = Opcode(0b1010_1010) // OR
	XOR  = Opcode(0b1010_1011) // XOR
	SHL  = Opcode(0b1010_1100) // SHL
	SHR  = Opcode(0b1010_1101) // SHR
)

// Opcodes lists every defined instruction, in encoding order.
var Opcodes = []Opcode{
	NOP, HLT, RET,
	PUSH, POP, PRN, PRA,
	CALL, JMP, JEQ, JNE, JGT, JLT, JLE, JGE,
	INC, DEC, NOT,
	LDI, LD, ST,
	ADD, SUB, MUL, DIV, MOD, CMP, AND, OR, XOR, SHL, SHR,
}

// Operands returns the number of operand bytes following the opcode.
// A result of 3 is reserved and never a valid instruction.
func (op Opcode) Operands() int {
	return int(op>>6) & 0x3
}

// Size returns the total instruction length in bytes.
func (op Opcode) Size() int {
	return 1 + op.Operands()
}

// IsAlu returns true if the instruction is executed by the ALU.
func (op Opcode) IsAlu() bool {
	return (op>>5)&1 == 1
}

// SetsPc returns true if the instruction may set the PC itself.
func (op Opcode) SetsPc() bool {
	return (op>>4)&1 == 1
}

// Valid returns true if the opcode is a defined instruction.
func (op Opcode) Valid() bool {
	_, ok := _Opcode_map[op]
	return ok
}

// LookupOpcode returns the opcode for an upper-case mnemonic.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	for _, op = range Opcodes {
		if op.String() == mnemonic {
			return op, true
		}
	}

	return
}

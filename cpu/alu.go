package cpu

import (
	"errors"
)

// Flags is the result of the last CMP. All false means no CMP has run yet.
type Flags struct {
	Equal   bool
	Greater bool
	Less    bool
}

// Compare compares two unsigned values, setting exactly one flag.
func Compare(a, b uint8) (fl Flags) {
	switch {
	case a == b:
		fl.Equal = true
	case a > b:
		fl.Greater = true
	default:
		fl.Less = true
	}

	return
}

// String returns the flags in LS-8 FL register order (L, G, E).
func (fl Flags) String() string {
	out := []byte("---")
	if fl.Less {
		out[0] = 'L'
	}
	if fl.Greater {
		out[1] = 'G'
	}
	if fl.Equal {
		out[2] = 'E'
	}

	return string(out)
}

// Alu performs the ALU operation op on the register values a and b,
// and returns the value to be stored in the first register operand.
// Single operand operations ignore b.
func Alu(op Opcode, a, b uint8) (output uint8, err error) {
	switch op {
	case ADD:
		output = a + b
	case SUB:
		output = a - b
	case MUL:
		output = a * b
	case DIV:
		if b == 0 {
			err = errors.Join(ErrArithmetic, ErrDivideByZero)
			return
		}
		output = a / b
	case MOD:
		if b == 0 {
			err = errors.Join(ErrArithmetic, ErrDivideByZero)
			return
		}
		output = a % b
	case AND:
		output = a & b
	case OR:
		output = a | b
	case XOR:
		output = a ^ b
	case SHL:
		// Shifts of 8 or more clear the register.
		output = a << b
	case SHR:
		output = a >> b
	case INC:
		output = a + 1
	case DEC:
		output = a - 1
	case NOT:
		output = ^a
	default:
		err = ErrOpcodeAlu
	}

	return
}

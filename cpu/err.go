package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Fault kinds. Every execution fault matches exactly one of these
	// with errors.Is().
	ErrDecode     = errors.New(f("decode"))
	ErrBounds     = errors.New(f("bounds"))
	ErrArithmetic = errors.New(f("arithmetic"))

	// Cpu errors
	ErrHalted          = errors.New(f("halted"))
	ErrStackEmpty      = errors.New(f("stack empty"))
	ErrStackFull       = errors.New(f("stack full"))
	ErrDivideByZero    = errors.New(f("divide by zero"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrOperandsInvalid = errors.New(f("operand count reserved"))
	ErrChannelInvalid  = errors.New(f("channel invalid"))
	ErrOpcodeAlu       = errors.New(f("not an alu operation"))

	// Loader errors
	ErrImageSyntax = errors.New(f("not an 8-bit binary literal"))
	ErrImageSize   = errors.New(f("image exceeds memory"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOrgSyntax          = errors.New(f(".org syntax"))
	ErrOrgBackwards       = errors.New(f(".org moves backwards"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrValueRange         = errors.New(f("value out of 8-bit range"))
)

// ErrOpcode locates a fault at an instruction.
type ErrOpcode struct {
	Address int
	Opcode  Opcode
}

func (eo ErrOpcode) Error() string {
	return f("opcode 0x%02x %v at 0x%02x", uint8(eo.Opcode), eo.Opcode.String(), eo.Address)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress is a memory address outside of the 256 byte memory.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address 0x%x out of range", int(ea))
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrBounds
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

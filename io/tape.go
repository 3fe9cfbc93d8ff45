package io

import (
	"io"
	"strconv"
)

// TapeFormat selects how a Tape renders each byte.
type TapeFormat int

const (
	TAPE_DECIMAL = TapeFormat(0) // Decimal value, one per line.
	TAPE_ASCII   = TapeFormat(1) // Raw byte.
)

// Tape provides sequential output of bytes to an io.Writer.
type Tape struct {
	Output io.Writer
	Format TapeFormat

	buf []byte
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Send writes a byte to the output stream in the tape's format.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelOutput
		return
	}

	tc.buf = tc.buf[:0]
	switch tc.Format {
	case TAPE_ASCII:
		tc.buf = append(tc.buf, value)
	default:
		tc.buf = strconv.AppendUint(tc.buf, uint64(value), 10)
		tc.buf = append(tc.buf, '\n')
	}

	_, err = tc.Output.Write(tc.buf)
	return
}

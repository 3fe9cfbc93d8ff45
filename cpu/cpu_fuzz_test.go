package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

func FuzzCpu(f *testing.F) {
	for _, op := range Opcodes {
		f.Add(uint8(op), uint8(0), uint8(0), uint8(0))
		f.Add(uint8(op), uint8(8), uint8(9), uint8(1))
		f.Add(uint8(op), uint8(0xff), uint8(0x80), uint8(4))
	}
	f.Add(uint8(0xff), uint8(1), uint8(2), uint8(2))

	f.Fuzz(func(t *testing.T, opcode uint8, a uint8, b uint8, flags uint8) {
		assert := assert.New(t)

		op := Opcode(opcode)

		cpu := NewCpu()
		temp := &io.Temporary{Capacity: 4}
		cpu.SetChannel(CHANNEL_ID_NUMBER, temp)
		cpu.SetChannel(CHANNEL_ID_CHAR, temp)
		assert.NoError(cpu.Load([]uint8{opcode, 0, 1, uint8(HLT)}))

		cpu.Register[0] = a
		cpu.Register[1] = b
		fl := Flags{
			Equal:   flags&1 != 0,
			Greater: flags&2 != 0,
			Less:    flags&4 != 0,
		}
		cpu.Flags = fl

		err := cpu.Tick()

		if !op.Valid() {
			assert.ErrorIs(err, ErrDecode)
			assert.Equal(0, cpu.Pc)
			return
		}

		if err != nil {
			kinds := 0
			for _, kind := range []error{ErrDecode, ErrBounds, ErrArithmetic} {
				if errors.Is(err, kind) {
					kinds++
				}
			}
			assert.Equal(1, kinds, err)
			assert.ErrorIs(err, ErrOpcode{})
			assert.Equal(0, cpu.Pc)
			return
		}

		assert.Equal(1, cpu.Ticks)

		if op == CMP {
			assert.Equal(Compare(a, b), cpu.Flags)
		} else {
			assert.Equal(fl, cpu.Flags)
		}

		if !op.SetsPc() {
			assert.Equal(op.Size(), cpu.Pc)
		}

		if op == HLT {
			assert.True(cpu.Halted)
		} else {
			assert.False(cpu.Halted)
		}
	})
}

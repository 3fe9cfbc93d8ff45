package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	for _, addr := range []int{0, 1, 0x7f, 0xff} {
		assert.NoError(mem.Write(addr, uint8(addr^0x5a)))
		value, err := mem.Read(addr)
		assert.NoError(err)
		assert.Equal(uint8(addr^0x5a), value)
	}
}

func TestMemory_Bounds(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	for _, addr := range []int{-1, MEMORY_SIZE, 0x1000} {
		_, err := mem.Read(addr)
		assert.Equal(ErrAddress(addr), err)
		assert.ErrorIs(err, ErrBounds)

		err = mem.Write(addr, 1)
		assert.Equal(ErrAddress(addr), err)
		assert.ErrorIs(err, ErrBounds)
	}
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem[10] = 0xff

	assert.NoError(mem.Load([]uint8{1, 2, 3}))
	assert.Equal(uint8(1), mem[0])
	assert.Equal(uint8(3), mem[2])
	assert.Equal(uint8(0), mem[10])

	assert.NoError(mem.Load(make([]uint8, MEMORY_SIZE)))
	assert.Equal(ErrImageSize, mem.Load(make([]uint8, MEMORY_SIZE+1)))
}

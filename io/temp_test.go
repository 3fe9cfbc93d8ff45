package io

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemporary_SendReceive(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 4}
	temp.Rewind()

	for _, value := range []uint8{1, 2, 3} {
		assert.NoError(temp.Send(value))
	}
	assert.Equal(3, temp.Size)

	assert.Equal([]uint8{1, 2, 3}, slices.Collect(temp.Receive()))
	assert.Equal(0, temp.Size)
}

func TestTemporary_Full(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}
	temp.Rewind()

	assert.NoError(temp.Send(1))
	assert.NoError(temp.Send(2))
	assert.Equal(ErrChannelFull, temp.Send(3))
}

func TestTemporary_Wrap(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 3}
	temp.Rewind()

	assert.NoError(temp.Send(1))
	assert.NoError(temp.Send(2))
	for value := range temp.Receive() {
		assert.Equal(uint8(1), value)
		break
	}

	assert.NoError(temp.Send(3))
	assert.NoError(temp.Send(4))
	assert.Equal(1, temp.WriteIndex)

	assert.Equal([]uint8{2, 3, 4}, slices.Collect(temp.Receive()))
}

func TestTemporary_LazyRewind(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 8}
	assert.NoError(temp.Send(42))

	assert.Equal([]uint8{42}, slices.Collect(temp.Receive()))
}

func TestTemporary_Rewind(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 8}
	temp.Rewind()
	assert.NoError(temp.Send(42))

	temp.Rewind()
	assert.Equal(0, temp.Size)
	assert.Empty(slices.Collect(temp.Receive()))
}

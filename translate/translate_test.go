package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales("en-US")
	assert.Equal("bad opcode 0xff at 0x10", From("bad opcode %#02x at %#02x", 0xff, 0x10))
	assert.Equal("stack empty", From("stack empty"))
}

func TestSetLocales_Default(t *testing.T) {
	assert := assert.New(t)

	SetLocales()
	assert.NotNil(printer)
	assert.Equal("line 3", From("line %d", 3))
}

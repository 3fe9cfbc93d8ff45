package cpu

const (
	MEMORY_SIZE = 256  // Bytes of addressable memory.
	STACK_TOP   = 0xf4 // Initial stack pointer; the stack grows down from here.
)

// Memory is the flat LS-8 address space. Addresses do not wrap.
type Memory [MEMORY_SIZE]uint8

// Read returns the byte at addr.
func (mem *Memory) Read(addr int) (value uint8, err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrAddress(addr)
		return
	}

	value = mem[addr]
	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr int, value uint8) (err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrAddress(addr)
		return
	}

	mem[addr] = value
	return
}

// Load copies data into memory starting at address 0, and clears the rest.
func (mem *Memory) Load(data []uint8) (err error) {
	if len(data) > len(mem) {
		err = ErrImageSize
		return
	}

	clear(mem[:])
	copy(mem[:], data)
	return
}

// Package io provides the output channels for the LS-8 emulator.
// The print instructions send one byte per instruction to a channel:
// sequential output to a writer (Tape), or bounded in-memory capture
// (Temporary).
package io

// Channel defines the interface for all output channels of the LS-8.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single byte to the channel.
	Send(value uint8) error
}

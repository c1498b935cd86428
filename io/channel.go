// Package io provides output channels for the three-bit machine.
// A channel receives every digit emitted by an `out` instruction, in order.
// Tape renders digits as text on an io.Writer; Match compares them against
// an expected sequence so a run can be abandoned at the first divergence.
package io

// Channel defines the interface for all machine output channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send delivers a single emitted digit to the channel.
	// A non-nil error aborts the run that emitted it.
	Send(digit uint8) error
}

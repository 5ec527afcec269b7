// Package io provides the output stream models for the simulator.
// The supervisor writes every SVC_WRITE payload to a single Stream.
package io

// Stream is the interface for the single logical output stream.
type Stream interface {
	// Rewind resets the stream to its initial state.
	Rewind()
	// Send writes data to the stream, returning the count accepted.
	// A short count is not an error.
	Send(data []byte) (n int)
}

package io

import (
	"io"
)

// Console adapts an io.Writer to a Stream.
type Console struct {
	Output io.Writer // Destination of accepted bytes.
	Limit  int       // If non-zero, most bytes accepted by one Send.

	Sent int   // Bytes accepted since the last Rewind.
	Err  error // First error from Output since the last Rewind.
}

var _ Stream = (*Console)(nil)

// Rewind clears the counters. The underlying writer cannot be rewound.
func (con *Console) Rewind() {
	con.Sent = 0
	con.Err = nil
}

// Send writes up to Limit bytes of data to Output. After the first write
// error, nothing more is accepted.
func (con *Console) Send(data []byte) (n int) {
	if con.Err != nil {
		return
	}

	if con.Output == nil {
		con.Err = ErrOutputMissing
		return
	}

	if con.Limit > 0 && len(data) > con.Limit {
		data = data[:con.Limit]
	}

	n, err := con.Output.Write(data)
	if err != nil {
		con.Err = err
	}
	n = max(0, min(n, len(data)))
	con.Sent += n

	return
}

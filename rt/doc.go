// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package rt is the runtime substrate linked into every hosted program.
//
// It provides the only legal path into supervisor mode (Terminate, Write,
// WriteBytes, WriteText), a bump allocator over a fixed heap region
// (Heap, Runtime.Sbrk), stubs for the services the supervisor does not
// offer, and the fault reporter used by every fatal path.
//
// Every fatal condition writes one diagnostic line to the output stream
// and terminates the process with a code from the Code table. Nothing is
// recovered locally: once a Runtime terminates, control unwinds to
// Runtime.Run (or Runtime.Catch) and never returns to the caller.
package rt

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rt

import (
	"strconv"
)

// Kind classifies a fatal condition.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_ASSERTION_FAILED      = Kind(0) // AssertionFailed
	KIND_RESOURCE_EXHAUSTED    = Kind(1) // ResourceExhausted
	KIND_UNSUPPORTED_OPERATION = Kind(2) // UnsupportedOperation
)

// prefix starts every diagnostic line of this kind.
func (kind Kind) prefix() string {
	if kind == KIND_ASSERTION_FAILED {
		return "Assertion Failed:"
	}
	return "Error:"
}

// Location is a position in the program source.
type Location struct {
	Source string
	Line   int32
}

// Fault is a diagnostic, built at the moment of failure.
type Fault struct {
	Kind     Kind
	Code     Code      // Exit status.
	Message  string    // Optional.
	Location *Location // Optional.
}

// Report writes the diagnostic for fault and terminates with fault.Code.
// It never returns.
//
// The line written is
//
//	<prefix>[ <message>][ <source> line <n>]\n
//
// where prefix is "Assertion Failed:" for assertions and "Error:"
// otherwise. Programs built with the rtquiet tag write nothing.
func (rt *Runtime) Report(fault Fault) {
	if faultText {
		emit(rt, fault.Kind.prefix())
		if fault.Message != "" {
			emit(rt, " ")
			emit(rt, fault.Message)
		}
		if loc := fault.Location; loc != nil {
			if loc.Source != "" {
				emit(rt, " ")
				emit(rt, loc.Source)
			}
			emit(rt, " line ")
			var digits [11]byte
			emit(rt, strconv.AppendInt(digits[:0], int64(loc.Line), 10))
		}
		emit(rt, "\n")
	}

	rt.Terminate(int32(fault.Code))
}

// emit stages text through the scratch buffer and writes it, one
// buffer-full at a time. A short write resends the remainder; a write of
// nothing abandons the text.
func emit[T string | []byte](rt *Runtime, text T) {
	mem := rt.Cpu.Memory

	for len(text) > 0 {
		chunk := text[:min(len(text), int(rt.ScratchSize))]
		if len(chunk) == 0 {
			return
		}

		if err := mem.Write(rt.Scratch, []byte(chunk)); err != nil {
			rt.Abort(err)
		}

		sent := uint32(0)
		for sent < uint32(len(chunk)) {
			n := rt.WriteBytes(rt.Scratch+sent, uint32(len(chunk))-sent)
			if n == 0 {
				return
			}
			sent += n
		}

		text = text[len(chunk):]
	}
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rt

import (
	"fmt"
	"iter"

	"github.com/ezrec/svcsim/cpu"
)

// Code is a process exit status that identifies which fatal path was
// taken.
type Code int32

//go:generate go tool stringer -type=Code
const (
	CODE_OK             = Code(0)
	CODE_ASSERTION      = Code(1)
	CODE_HEAP_EXHAUSTED = Code(12)
	CODE_POOL_EXHAUSTED = Code(13)

	CODE_UNIMPLEMENTED_READ   = Code(100)
	CODE_UNIMPLEMENTED_LSEEK  = Code(101)
	CODE_UNIMPLEMENTED_KILL   = Code(102)
	CODE_UNIMPLEMENTED_GETPID = Code(103)
	CODE_UNIMPLEMENTED_CLOSE  = Code(104)
	CODE_UNIMPLEMENTED_ISATTY = Code(105)

	CODE_SUPERVISOR_FAULT = Code(cpu.EXIT_SUPERVISOR_FAULT)
)

// codes lists every documented exit status.
var codes = []Code{
	CODE_OK,
	CODE_ASSERTION,
	CODE_HEAP_EXHAUSTED,
	CODE_POOL_EXHAUSTED,
	CODE_UNIMPLEMENTED_READ,
	CODE_UNIMPLEMENTED_LSEEK,
	CODE_UNIMPLEMENTED_KILL,
	CODE_UNIMPLEMENTED_GETPID,
	CODE_UNIMPLEMENTED_CLOSE,
	CODE_UNIMPLEMENTED_ISATTY,
	CODE_SUPERVISOR_FAULT,
}

// Defines returns the exit code table as name, value pairs.
func Defines() iter.Seq2[string, string] {
	return func(yield func(name string, value string) bool) {
		for _, code := range codes {
			if !yield(code.String(), fmt.Sprintf("%d", int32(code))) {
				return
			}
		}
	}
}

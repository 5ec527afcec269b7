// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rt

import (
	"errors"

	"github.com/ezrec/svcsim/translate"
)

var f = translate.From

var (
	// Heap errors
	ErrHeapExhausted = errors.New(f("heap exhausted"))

	// Runtime errors
	ErrTerminated = errors.New(f("runtime terminated"))
)

// Exit is the unwinding value of a terminated program. It is recovered
// by Runtime.Run and Runtime.Catch.
type Exit struct {
	Code int32
}

func (err *Exit) Error() string {
	return f("exit %d", err.Code)
}

// ErrSupervisor reports that the supervisor refused or failed a trap.
// The process has been killed; Code is its final exit status.
type ErrSupervisor struct {
	Code int32
	Err  error
}

func (err *ErrSupervisor) Error() string {
	return f("supervisor fault: %v", err.Err)
}

func (err *ErrSupervisor) Unwrap() error {
	return err.Err
}

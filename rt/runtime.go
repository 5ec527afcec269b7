// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rt

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/ezrec/svcsim/cpu"
)

// SCRATCH_SIZE is the default size of the diagnostic staging buffer.
const SCRATCH_SIZE = 64

// Runtime is the process-wide runtime context of one hosted program.
//
// A Runtime is not safe for concurrent use, with the exception of its
// Heap.
type Runtime struct {
	Verbose bool // If set, logs runtime entry points.

	Cpu  *cpu.Cpu // Processor the program runs on.
	Heap *Heap    // Heap region.

	Scratch     uint32 // Address of the diagnostic staging buffer.
	ScratchSize uint32 // Size of the staging buffer.
}

// NewRuntime creates a runtime for c. The staging buffer must be mapped
// writable at scratch.
func NewRuntime(c *cpu.Cpu, heap *Heap, scratch uint32, scratchSize uint32) (rt *Runtime) {
	rt = &Runtime{
		Cpu:         c,
		Heap:        heap,
		Scratch:     scratch,
		ScratchSize: scratchSize,
	}

	return
}

// Reset returns the runtime and its processor to the initial state.
func (rt *Runtime) Reset() {
	rt.Cpu.Reset()
	if rt.Heap != nil {
		rt.Heap.Reset()
	}
}

// Catch runs fn, converting a termination or supervisor fault raised
// inside it into an error. A termination is returned as *Exit.
func (rt *Runtime) Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *Exit:
			err = e
		case *ErrSupervisor:
			err = e
		default:
			panic(r)
		}
	}()

	if rt.Cpu.State == cpu.STATE_TERMINATED {
		err = ErrTerminated
		return
	}

	fn()
	return
}

// Run executes program to completion and returns its exit status.
// Returning from program is the same as Terminate(0).
func (rt *Runtime) Run(program func(rt *Runtime)) (status int32, err error) {
	err = rt.Catch(func() {
		program(rt)
		rt.Terminate(0)
	})

	var exit *Exit
	if errors.As(err, &exit) {
		status = exit.Code
		err = nil
		return
	}

	status = rt.Cpu.ExitCode
	return
}

// Abort kills the program after a supervisor or memory fault. It never
// returns.
func (rt *Runtime) Abort(err error) {
	if rt.Verbose {
		log.Error(f("runtime: %v", err))
	}

	rt.Cpu.Abort()
	panic(&ErrSupervisor{Code: rt.Cpu.ExitCode, Err: err})
}

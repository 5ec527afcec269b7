// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package host runs Starlark programs against the runtime substrate.
//
// A program sees the runtime through builtins named after the newlib
// calls they stand for (exit, write, sbrk, read, fstat, ...), plus the
// integer constants of the machine (SVC_EXIT, ARENA_HEAP, CODE_*, ...).
// String literals passed to write and cstring are placed in a literal
// pool in simulated memory, as a compiler would place them in .rodata.
package host

import (
	"errors"
	"iter"
	"strconv"

	"github.com/charmbracelet/log"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/svcsim/internal"
	"github.com/ezrec/svcsim/rt"
)

// Program is a Starlark program bound to a runtime.
type Program struct {
	Verbose bool

	Runtime *rt.Runtime               // Runtime the program calls into.
	Pool    *rt.Heap                  // Literal pool, mapped read-write.
	Defines iter.Seq2[string, string] // Predeclared integer constants.
	Print   func(text string)         // Destination of print(); defaults to the log.

	literal map[string]uint32
	exit    *rt.Exit
}

// NewProgram creates a program for runtime, placing literals in pool.
func NewProgram(runtime *rt.Runtime, pool *rt.Heap) (prog *Program) {
	prog = &Program{
		Runtime: runtime,
		Pool:    pool,
	}

	return
}

// predeclared builds the global environment of the program.
func (prog *Program) predeclared() (env starlark.StringDict, err error) {
	env = starlark.StringDict{}

	if prog.Defines != nil {
		names, values := internal.SortedDefines(prog.Defines)
		for _, name := range names {
			var value int64
			value, err = strconv.ParseInt(values[name], 0, 64)
			if err != nil {
				err = &ErrDefine{Name: name, Err: err}
				return
			}
			env[name] = starlark.MakeInt64(value)
		}
	}

	for name, fn := range prog.builtins() {
		env[name] = starlark.NewBuiltin(name, fn)
	}

	return
}

// Run executes the program source and returns its exit status. Falling
// off the end of the program is exit(0).
//
// src may be a string, []byte or io.Reader, as for starlark.ExecFile.
func (prog *Program) Run(filename string, src any) (status int32, err error) {
	prog.exit = nil
	prog.literal = map[string]uint32{}

	env, err := prog.predeclared()
	if err != nil {
		return
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if prog.Print != nil {
				prog.Print(msg)
			} else {
				log.Info(msg, "program", filename)
			}
		},
	}

	opts := &syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
		Recursion:       true,
	}

	_, err = starlark.ExecFileOptions(opts, thread, filename, src, env)
	if prog.exit != nil {
		status = prog.exit.Code
		err = nil
		return
	}

	if err == nil {
		err = prog.call(func() { prog.Runtime.Terminate(0) })
		if prog.exit != nil {
			status = prog.exit.Code
			err = nil
			return
		}
	}

	var sup *rt.ErrSupervisor
	if errors.As(err, &sup) {
		status = sup.Code
	} else {
		status = int32(rt.CODE_SUPERVISOR_FAULT)
	}

	return
}

// call runs fn inside the runtime, recording a termination.
func (prog *Program) call(fn func()) (err error) {
	err = prog.Runtime.Catch(fn)

	var exit *rt.Exit
	if errors.As(err, &exit) {
		prog.exit = exit
	}

	return
}

// intern places text in the literal pool and returns its address.
// Identical literals share an address.
func (prog *Program) intern(text string) (addr uint32, err error) {
	addr, ok := prog.literal[text]
	if ok {
		return
	}

	addr, err = prog.Pool.Extend(uint32(len(text)))
	if err != nil {
		err = ErrPoolFull
		return
	}

	err = prog.Runtime.Cpu.Memory.Write(addr, []byte(text))
	if err != nil {
		return
	}

	prog.literal[text] = addr
	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/charmbracelet/log"

	"github.com/ezrec/svcsim/cpu"
	"github.com/ezrec/svcsim/host"
	"github.com/ezrec/svcsim/internal"
	"github.com/ezrec/svcsim/io"
	"github.com/ezrec/svcsim/rt"
)

// Emulator state. CPU + memory map + runtime + program host.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Config  Config        // Machine configuration.
	Console io.Console    // Output stream of the program.
	Runtime *rt.Runtime   // Runtime substrate.
	Program *host.Program // Program host.

	defines map[string]string
}

// NewEmulator creates a new emulator for cfg.
func NewEmulator(cfg Config) (emu *Emulator, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	emu = &Emulator{
		Verbose: cfg.Verbose,
		Config:  cfg,
	}
	emu.Console.Limit = cfg.Limit

	emu.defines = map[string]string{
		"HEAP_SIZE":    fmt.Sprintf("%v", cfg.Heap),
		"STACK_SIZE":   fmt.Sprintf("%v", cfg.Stack),
		"POOL_SIZE":    fmt.Sprintf("%v", cfg.Pool),
		"SCRATCH_SIZE": fmt.Sprintf("%v", rt.SCRATCH_SIZE),
	}

	mem := &cpu.Memory{}
	regions := [](struct {
		base uint32
		size uint32
	}){
		{cpu.ARENA_TEXT, cfg.Pool},
		{cpu.ARENA_SCRATCH, rt.SCRATCH_SIZE},
		{cpu.ARENA_HEAP, cfg.Heap},
		{cpu.ARENA_STACK - cfg.Stack, cfg.Stack},
	}
	for _, region := range regions {
		err = mem.Mmap(region.base, make([]byte, region.size), true)
		if err != nil {
			emu = nil
			return
		}
	}

	emu.Cpu = cpu.NewCpu(mem, &emu.Console)
	emu.Cpu.Stack.Size = cfg.Stack

	heap := rt.NewHeap(cpu.ARENA_HEAP, cfg.Heap)
	emu.Runtime = rt.NewRuntime(emu.Cpu, heap, cpu.ARENA_SCRATCH, rt.SCRATCH_SIZE)

	emu.Program = host.NewProgram(emu.Runtime, rt.NewHeap(cpu.ARENA_TEXT, cfg.Pool))
	emu.Program.Defines = emu.Defines()

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		seq := internal.IterSeq2Concat(maps.All(emu.defines),
			emu.Cpu.Defines(),
			rt.Defines(),
		)
		seq(yield)
	}
}

// Reset the machine: registers, memory, heap, pool and output.
func (emu *Emulator) Reset() {
	for _, region := range emu.Cpu.Memory.Regions {
		clear(region.Data)
	}

	emu.Runtime.Reset()
	emu.Program.Pool.Reset()

	emu.Cpu.Verbose = emu.Verbose
	emu.Runtime.Verbose = emu.Verbose
	emu.Program.Verbose = emu.Verbose
}

// Run resets the machine, then runs the Starlark program src named name
// to termination. The program's exit status is returned; err is set
// only when the program could not run to a termination of its own.
func (emu *Emulator) Run(name string, src any) (status int32, err error) {
	emu.Reset()

	if emu.Verbose {
		log.Debug(f("emulator: run"), "program", name)
	}

	status, err = emu.Program.Run(name, src)
	if err != nil {
		err = &ErrRuntime{Name: name, Err: err}
	}

	if emu.Verbose {
		log.Debug(f("emulator: exit"), "program", name, "status", status, "ticks", emu.Ticks())
	}

	return
}

// Ticks returns the total supervisor calls since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Status returns the exit status of the last run.
func (emu *Emulator) Status() int32 {
	return emu.Cpu.ExitCode
}

package cpu

import (
	"fmt"
	"iter"
	"maps"

	"github.com/charmbracelet/log"

	"github.com/ezrec/svcsim/io"
)

// Stream is the output stream written by SVC_WRITE.
type Stream io.Stream

var _cpu_defines = map[string]string{
	"SVC_EXIT":      fmt.Sprintf("%d", SVC_EXIT),
	"SVC_WRITE":     fmt.Sprintf("%d", SVC_WRITE),
	"ARENA_TEXT":    fmt.Sprintf("0x%x", ARENA_TEXT),
	"ARENA_SCRATCH": fmt.Sprintf("0x%x", ARENA_SCRATCH),
	"ARENA_HEAP":    fmt.Sprintf("0x%x", ARENA_HEAP),
	"ARENA_STACK":   fmt.Sprintf("0x%x", ARENA_STACK),
}

// Cpu is the simulation context for the processor and its supervisor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REG_COUNT]uint32 // Register bank.
	Psr      uint32            // Program status register.
	Memory   *Memory           // Address space.
	Stack    Stack             // Stack region.
	Output   Stream            // Logical output stream.

	State    State // Process state.
	ExitCode int32 // Exit status, valid once terminated.
	Ticks    int   // Supervisor calls serviced.

	inTrap bool
}

// NewCpu creates a CPU over mem, writing to output.
func NewCpu(mem *Memory, output Stream) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: mem,
		Output: output,
		Stack:  Stack{Top: ARENA_STACK, Size: STACK_SIZE},
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers.
// - Points sp at the top of the stack.
// - Returns the process to the running state.
// - Rewinds the output stream.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Debug(f("cpu: reset"))
	}

	clear(cpu.Register[:])
	cpu.Psr = 0
	cpu.Register[REG_SP] = cpu.Stack.Top
	cpu.State = STATE_RUNNING
	cpu.ExitCode = 0
	cpu.Ticks = 0
	cpu.inTrap = false

	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for reg := REG_R0; reg < REG_COUNT; reg++ {
		val := cpu.Register[reg]
		text += fmt.Sprintf("% 5s: %04X_%04X\n", reg, val>>16, val&0xffff)
	}
	text += fmt.Sprintf("% 5s: %04X_%04X\n", "psr", cpu.Psr>>16, cpu.Psr&0xffff)
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)
	if cpu.State == STATE_TERMINATED {
		text += fmt.Sprintf("% 5s: %d\n", "exit", cpu.ExitCode)
	}

	return
}

// terminate moves the process to the terminated state.
func (cpu *Cpu) terminate(code int32) {
	cpu.State = STATE_TERMINATED
	cpu.ExitCode = code
}

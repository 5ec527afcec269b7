package cpu

import (
	"errors"

	"github.com/charmbracelet/log"
)

// EXIT_SUPERVISOR_FAULT is the exit status of a process killed by the
// supervisor.
const EXIT_SUPERVISOR_FAULT = int32(-1)

type svcHandler func(cpu *Cpu) error

// svcTable is the supervisor dispatch table.
var svcTable = map[SvcOp]svcHandler{
	SVC_EXIT:  (*Cpu).svcExit,
	SVC_WRITE: (*Cpu).svcWrite,
}

// Svc executes a supervisor call with immediate operand imm.
//
// An unknown service, or a fault while servicing a known one, terminates
// the process with EXIT_SUPERVISOR_FAULT.
func (cpu *Cpu) Svc(imm uint8) (err error) {
	op := SvcOp(imm)
	defer func() {
		if err != nil {
			err = errors.Join(ErrSvc(op), err)
		}
	}()

	if cpu.State == STATE_TERMINATED {
		err = ErrTerminated
		return
	}

	if cpu.inTrap {
		err = ErrSvcReentrant
		return
	}

	cpu.inTrap = true
	defer func() { cpu.inTrap = false }()

	cpu.Ticks++

	if cpu.Verbose {
		log.Debug(f("svc #%d", imm), "op", op, "r0", cpu.Register[REG_R0], "r1", cpu.Register[REG_R1])
	}

	handler, ok := svcTable[op]
	if !ok {
		log.Warn(f("unknown svc #%d", imm))
		cpu.terminate(EXIT_SUPERVISOR_FAULT)
		err = ErrSvcUnknown
		return
	}

	err = handler(cpu)
	if err != nil {
		cpu.terminate(EXIT_SUPERVISOR_FAULT)
	}

	return
}

// Abort kills the process as the supervisor does on a data abort.
func (cpu *Cpu) Abort() {
	if cpu.State == STATE_RUNNING {
		cpu.terminate(EXIT_SUPERVISOR_FAULT)
	}
}

// svcExit terminates the process with status r0.
func (cpu *Cpu) svcExit() (err error) {
	code := int32(cpu.Register[REG_R0])
	cpu.terminate(code)

	if cpu.Verbose {
		log.Info(f("program exited with code: %d", code))
	}

	return
}

// svcWrite sends r1 bytes at r0 to the output stream. The count accepted
// is returned in r0, the count refused is left in r2.
func (cpu *Cpu) svcWrite() (err error) {
	addr := cpu.Register[REG_R0]
	length := cpu.Register[REG_R1]

	data, err := cpu.Memory.Read(addr, length)
	if err != nil {
		return
	}

	var accepted uint32
	if len(data) > 0 && cpu.Output != nil {
		n := cpu.Output.Send(data)
		if n > 0 {
			accepted = min(uint32(n), length)
		}
	}

	cpu.Register[REG_R0] = accepted
	cpu.Register[REG_R2] = length - accepted

	return
}

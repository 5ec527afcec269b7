// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rt

import (
	"github.com/charmbracelet/log"

	"github.com/ezrec/svcsim/cpu"
)

// trap is the single path from the runtime into supervisor mode.
//
// The call frame lives only for the duration of the trap: the registers
// clobbered by op are spilled to the stack, args are bound to r0 upwards,
// svc #op is executed, r0 is read back as the result, and the spilled
// registers are restored. Any supervisor fault kills the program.
func (rt *Runtime) trap(op cpu.SvcOp, args ...uint32) (result uint32) {
	c := rt.Cpu
	clobbers := op.Clobbers()

	for _, reg := range clobbers {
		if err := c.Push(c.Register[reg]); err != nil {
			rt.Abort(err)
		}
	}

	for n, arg := range args {
		c.Register[cpu.REG_R0+cpu.Reg(n)] = arg
	}

	if err := c.Svc(uint8(op)); err != nil {
		rt.Abort(err)
	}

	result = c.Register[cpu.REG_R0]

	for n := len(clobbers) - 1; n >= 0; n-- {
		value, err := c.Pop()
		if err != nil {
			rt.Abort(err)
		}
		c.Register[clobbers[n]] = value
	}

	return
}

// Terminate ends the program with status code. It never returns.
func (rt *Runtime) Terminate(code int32) {
	if rt.Verbose {
		log.Debug(f("runtime: terminate"), "code", code)
	}

	rt.trap(cpu.SVC_EXIT, uint32(code))

	panic(&Exit{Code: rt.Cpu.ExitCode})
}

// WriteBytes transfers length bytes at addr to the output stream in one
// supervisor call, and returns the count accepted. A short count is not
// retried.
func (rt *Runtime) WriteBytes(addr uint32, length uint32) (n uint32) {
	n = rt.trap(cpu.SVC_WRITE, addr, length)

	if rt.Verbose && n != length {
		log.Debug(f("runtime: short write"), "want", length, "got", n)
	}

	return
}

// Write is WriteBytes with the newlib signature. There is one output
// stream, so handle is ignored.
func (rt *Runtime) Write(handle uint32, addr uint32, length uint32) (n uint32) {
	return rt.WriteBytes(addr, length)
}

// WriteText writes the NUL terminated string at addr.
func (rt *Runtime) WriteText(addr uint32) (n uint32) {
	length := uint32(0)
	for {
		b, err := rt.Cpu.Memory.ReadByte(addr + length)
		if err != nil {
			rt.Abort(err)
		}
		if b == 0 {
			break
		}
		length++
	}

	return rt.WriteBytes(addr, length)
}

// WriteStaged copies text into the scratch buffer and writes it, one
// buffer-full per supervisor call. It stops at the first short write and
// returns the total count accepted.
func (rt *Runtime) WriteStaged(text []byte) (n uint32) {
	for len(text) > 0 {
		chunk := text[:min(len(text), int(rt.ScratchSize))]
		if len(chunk) == 0 {
			return
		}

		if err := rt.Cpu.Memory.Write(rt.Scratch, chunk); err != nil {
			rt.Abort(err)
		}

		sent := rt.WriteBytes(rt.Scratch, uint32(len(chunk)))
		n += sent
		if sent < uint32(len(chunk)) {
			return
		}

		text = text[len(chunk):]
	}

	return
}

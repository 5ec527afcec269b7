// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rt

import (
	"iter"

	"github.com/charmbracelet/log"
)

// Service is a runtime service the supervisor does not provide.
type Service int

//go:generate go tool stringer -linecomment -type=Service
const (
	SERVICE_READ   = Service(0) // read
	SERVICE_LSEEK  = Service(1) // lseek
	SERVICE_KILL   = Service(2) // kill
	SERVICE_GETPID = Service(3) // getpid
	SERVICE_CLOSE  = Service(4) // close
	SERVICE_ISATTY = Service(5) // isatty
)

// stubCode maps each unimplemented service to its exit status.
var stubCode = [...]Code{
	SERVICE_READ:   CODE_UNIMPLEMENTED_READ,
	SERVICE_LSEEK:  CODE_UNIMPLEMENTED_LSEEK,
	SERVICE_KILL:   CODE_UNIMPLEMENTED_KILL,
	SERVICE_GETPID: CODE_UNIMPLEMENTED_GETPID,
	SERVICE_CLOSE:  CODE_UNIMPLEMENTED_CLOSE,
	SERVICE_ISATTY: CODE_UNIMPLEMENTED_ISATTY,
}

// Code returns the exit status of the service's stub.
func (svc Service) Code() Code {
	if svc < 0 || int(svc) >= len(stubCode) {
		return CODE_SUPERVISOR_FAULT
	}
	return stubCode[svc]
}

// Services iterates over all stubbed services.
func Services() iter.Seq[Service] {
	return func(yield func(svc Service) bool) {
		for n := range stubCode {
			if !yield(Service(n)) {
				return
			}
		}
	}
}

// Unimplemented reports svc as unimplemented and terminates with its
// code. It never returns.
func (rt *Runtime) Unimplemented(svc Service) {
	if rt.Verbose {
		log.Warn(f("runtime: %v unimplemented", svc))
	}

	rt.Report(Fault{
		Kind:    KIND_UNSUPPORTED_OPERATION,
		Code:    svc.Code(),
		Message: svc.String() + " unimplemented",
	})
}

// Read is unimplemented.
func (rt *Runtime) Read(handle uint32, addr uint32, length uint32) (n uint32) {
	rt.Unimplemented(SERVICE_READ)
	return
}

// Lseek is unimplemented.
func (rt *Runtime) Lseek(handle uint32, offset int32, whence uint32) (pos int32) {
	rt.Unimplemented(SERVICE_LSEEK)
	return
}

// Kill is unimplemented.
func (rt *Runtime) Kill(pid int32, signal int32) (rc int32) {
	rt.Unimplemented(SERVICE_KILL)
	return
}

// Getpid is unimplemented.
func (rt *Runtime) Getpid() (pid int32) {
	rt.Unimplemented(SERVICE_GETPID)
	return
}

// Close is unimplemented.
func (rt *Runtime) Close(handle uint32) (rc int32) {
	rt.Unimplemented(SERVICE_CLOSE)
	return
}

// Isatty is unimplemented.
func (rt *Runtime) Isatty(handle uint32) (rc int32) {
	rt.Unimplemented(SERVICE_ISATTY)
	return
}

// S_IFCHR is the character device file type of a stat mode word.
const S_IFCHR = 0o020000

// STAT_MODE_OFFSET is the offset of st_mode in a newlib struct stat.
const STAT_MODE_OFFSET = 4

// Fstat classifies every handle as a character device. If addr is not
// zero, the st_mode word of the struct stat at addr is set. Returns 0.
func (rt *Runtime) Fstat(handle uint32, addr uint32) (rc int32) {
	if addr == 0 {
		return
	}

	if err := rt.Cpu.Memory.WriteWord(addr+STAT_MODE_OFFSET, S_IFCHR); err != nil {
		rt.Abort(err)
	}

	return
}

package cpu

import (
	"errors"

	"github.com/ezrec/svcsim/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrMemoryRange    = errors.New(f("address out of range"))
	ErrMemoryReadOnly = errors.New(f("address read only"))
	ErrMemoryOverlap  = errors.New(f("region overlap"))

	// Stack errors
	ErrStackEmpty = errors.New(f("stack empty"))
	ErrStackFull  = errors.New(f("stack full"))

	// Supervisor errors
	ErrSvcUnknown   = errors.New(f("svc unknown"))
	ErrSvcReentrant = errors.New(f("svc reentrant"))
	ErrTerminated   = errors.New(f("process terminated"))
)

// ErrSvc tags an error with the supervisor call that raised it.
type ErrSvc SvcOp

func (es ErrSvc) Error() string {
	return f("svc #%d %v", uint8(es), SvcOp(es).String())
}

func (es ErrSvc) Is(err error) (ok bool) {
	_, ok = err.(ErrSvc)
	return
}

// ErrAddress reports a faulting memory access.
type ErrAddress struct {
	Addr   uint32
	Length uint32
	Err    error
}

func (err *ErrAddress) Error() string {
	return f("0x%08x+%d %v", err.Addr, err.Length, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}

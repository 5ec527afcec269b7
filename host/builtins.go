// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package host

import (
	"errors"
	"path/filepath"

	"github.com/charmbracelet/log"
	"go.starlark.net/starlark"

	"github.com/ezrec/svcsim/rt"
)

type builtinFunc func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// stubCall invokes each stubbed service. The stubs ignore their
// arguments, and so do the builtins.
var stubCall = map[string]func(r *rt.Runtime){
	"read":   func(r *rt.Runtime) { r.Read(0, 0, 0) },
	"lseek":  func(r *rt.Runtime) { r.Lseek(0, 0, 0) },
	"kill":   func(r *rt.Runtime) { r.Kill(0, 0) },
	"getpid": func(r *rt.Runtime) { r.Getpid() },
	"close":  func(r *rt.Runtime) { r.Close(0) },
	"isatty": func(r *rt.Runtime) { r.Isatty(0) },
}

// builtins returns the collaborator interface of the runtime.
func (prog *Program) builtins() map[string]builtinFunc {
	builtins := map[string]builtinFunc{
		"exit":        prog.builtinExit,
		"write":       prog.builtinWrite,
		"write_bytes": prog.builtinWriteBytes,
		"write_text":  prog.builtinWriteText,
		"cstring":     prog.builtinCstring,
		"sbrk":        prog.builtinSbrk,
		"store":       prog.builtinStore,
		"peek":        prog.builtinPeek,
		"assert":      prog.builtinAssert,
		"fstat":       prog.builtinFstat,
	}

	for name, call := range stubCall {
		builtins[name] = prog.builtinStub(call)
	}

	return builtins
}

// textOf accepts a string or bytes value.
func textOf(fn string, v starlark.Value) (text string, err error) {
	switch v := v.(type) {
	case starlark.String:
		text = string(v)
	case starlark.Bytes:
		text = string(v)
	default:
		err = &ErrArgType{Builtin: fn, Got: v.Type()}
	}

	return
}

func (prog *Program) builtinExit(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	var code int32
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "code?", &code)
	if err != nil {
		return
	}

	err = prog.call(func() { prog.Runtime.Terminate(code) })
	return starlark.None, err
}

func (prog *Program) builtinWrite(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	var value starlark.Value
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &value)
	if err != nil {
		return
	}

	text, err := textOf(b.Name(), value)
	if err != nil {
		return
	}

	var n uint32
	err = prog.call(func() { n = prog.Runtime.WriteStaged([]byte(text)) })
	return starlark.MakeUint(uint(n)), err
}

func (prog *Program) builtinWriteBytes(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	var addr, length uint32
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "length", &length)
	if err != nil {
		return
	}

	var n uint32
	err = prog.call(func() { n = prog.Runtime.WriteBytes(addr, length) })
	return starlark.MakeUint(uint(n)), err
}

func (prog *Program) builtinWriteText(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	var addr uint32
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr)
	if err != nil {
		return
	}

	var n uint32
	err = prog.call(func() { n = prog.Runtime.WriteText(addr) })
	return starlark.MakeUint(uint(n)), err
}

func (prog *Program) builtinCstring(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	var value starlark.Value
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &value)
	if err != nil {
		return
	}

	text, err := textOf(b.Name(), value)
	if err != nil {
		return
	}

	addr, err := prog.intern(text + "\x00")
	if errors.Is(err, ErrPoolFull) {
		err = prog.call(func() {
			prog.Runtime.Report(rt.Fault{
				Kind:    rt.KIND_RESOURCE_EXHAUSTED,
				Code:    rt.CODE_POOL_EXHAUSTED,
				Message: "OUT OF LITERAL SPACE",
			})
		})
		return starlark.None, err
	}
	if err != nil {
		return
	}

	return starlark.MakeUint(uint(addr)), nil
}

func (prog *Program) builtinSbrk(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	var length int64
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "length", &length)
	if err != nil {
		return
	}
	if length < 0 {
		err = ErrNegativeCount
		return
	}

	var addr uint32
	if length > int64(^uint32(0)) {
		length = int64(^uint32(0))
	}
	err = prog.call(func() { addr = prog.Runtime.Sbrk(uint32(length)) })
	return starlark.MakeUint(uint(addr)), err
}

func (prog *Program) builtinStore(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	var addr uint32
	var value starlark.Value
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "data", &value)
	if err != nil {
		return
	}

	text, err := textOf(b.Name(), value)
	if err != nil {
		return
	}

	err = prog.call(func() {
		if err := prog.Runtime.Cpu.Memory.Write(addr, []byte(text)); err != nil {
			prog.Runtime.Abort(err)
		}
	})
	return starlark.None, err
}

func (prog *Program) builtinPeek(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	var addr, length uint32
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "length", &length)
	if err != nil {
		return
	}

	var data []byte
	err = prog.call(func() {
		view, err := prog.Runtime.Cpu.Memory.Read(addr, length)
		if err != nil {
			prog.Runtime.Abort(err)
		}
		data = append(data, view...)
	})
	return starlark.Bytes(data), err
}

func (prog *Program) builtinAssert(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	var cond starlark.Value
	var msg string
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "cond", &cond, "msg?", &msg)
	if err != nil {
		return
	}

	if cond.Truth() {
		return starlark.None, nil
	}

	pos := thread.CallFrame(1).Pos
	loc := rt.Location{Source: filepath.Base(pos.Filename()), Line: pos.Line}

	if prog.Verbose {
		log.Debug(f("host: assertion failed"), "source", loc.Source, "line", loc.Line)
	}

	err = prog.call(func() { prog.Runtime.AssertFailed(msg, loc) })
	return starlark.None, err
}

func (prog *Program) builtinFstat(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	var handle, addr uint32
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "handle", &handle, "addr?", &addr)
	if err != nil {
		return
	}

	var rc int32
	err = prog.call(func() { rc = prog.Runtime.Fstat(handle, addr) })
	return starlark.MakeInt(int(rc)), err
}

func (prog *Program) builtinStub(call func(r *rt.Runtime)) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
		err = prog.call(func() { call(prog.Runtime) })
		return starlark.None, err
	}
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rt

import (
	"path/filepath"
	"runtime"
)

// Assert terminates with CODE_ASSERTION if cond is false, reporting the
// caller's source location.
func (rt *Runtime) Assert(cond bool) {
	if cond {
		return
	}

	rt.AssertFailed("", callerLocation(2))
}

// AssertMsg is Assert with a message naming the failed check.
func (rt *Runtime) AssertMsg(cond bool, msg string) {
	if cond {
		return
	}

	rt.AssertFailed(msg, callerLocation(2))
}

// AssertAt is Assert with an explicit source location.
func (rt *Runtime) AssertAt(cond bool, source string, line int32) {
	if cond {
		return
	}

	rt.AssertFailed("", Location{Source: source, Line: line})
}

// AssertFailed reports a failed assertion at loc and terminates. It is
// for hosts that capture the location themselves.
func (rt *Runtime) AssertFailed(msg string, loc Location) {
	rt.Report(Fault{
		Kind:     KIND_ASSERTION_FAILED,
		Code:     CODE_ASSERTION,
		Message:  msg,
		Location: &loc,
	})
}

func callerLocation(skip int) (loc Location) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return
	}

	loc.Source = filepath.Base(file)
	loc.Line = int32(line)
	return
}

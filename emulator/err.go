// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"strings"

	"github.com/ezrec/svcsim/translate"
)

var f = translate.From

var (
	ErrConfigHeap  = errors.New(f("heap does not fit between the heap arena and the stack"))
	ErrConfigStack = errors.New(f("stack size must be a non-zero multiple of 4"))
	ErrConfigPool  = errors.New(f("literal pool does not fit below the scratch arena"))
	ErrConfigLimit = errors.New(f("console limit must not be negative"))
)

// ErrRuntime indicates the program a runtime error came from.
type ErrRuntime struct {
	Name string
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrConfigKey lists configuration keys that were not understood.
type ErrConfigKey struct {
	Keys []string
}

func (err *ErrConfigKey) Error() string {
	return f("unknown configuration keys: %v", strings.Join(err.Keys, ", "))
}

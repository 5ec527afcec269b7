// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package host

import (
	"errors"

	"github.com/ezrec/svcsim/translate"
)

var f = translate.From

var (
	ErrPoolFull      = errors.New(f("literal pool full"))
	ErrNegativeCount = errors.New(f("negative count"))
)

// ErrDefine reports a predeclared constant that is not an integer.
type ErrDefine struct {
	Name string
	Err  error
}

func (err *ErrDefine) Error() string {
	return f("define %v: %v", err.Name, err.Err)
}

func (err *ErrDefine) Unwrap() error {
	return err.Err
}

// ErrArgType reports an argument that is neither a string nor bytes.
type ErrArgType struct {
	Builtin string
	Got     string
}

func (err *ErrArgType) Error() string {
	return f("%v: got %v, want string or bytes", err.Builtin, err.Got)
}

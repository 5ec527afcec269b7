//go:build !rtquiet

package rt

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		fault  Fault
		output string
	}){
		{"bare", Fault{Kind: KIND_RESOURCE_EXHAUSTED, Code: 12}, "Error:\n"},
		{"message", Fault{Kind: KIND_UNSUPPORTED_OPERATION, Code: 100, Message: "read unimplemented"},
			"Error: read unimplemented\n"},
		{"location", Fault{Kind: KIND_ASSERTION_FAILED, Code: 1, Location: &Location{Source: "src", Line: 42}},
			"Assertion Failed: src line 42\n"},
		{"no_source", Fault{Kind: KIND_ASSERTION_FAILED, Code: 1, Location: &Location{Line: 7}},
			"Assertion Failed: line 7\n"},
		{"all", Fault{Kind: KIND_ASSERTION_FAILED, Code: 1, Message: "x < y", Location: &Location{Source: "test.c", Line: 30}},
			"Assertion Failed: x < y test.c line 30\n"},
		{"min_line", Fault{Kind: KIND_ASSERTION_FAILED, Code: 1, Location: &Location{Source: "s", Line: -2147483648}},
			"Assertion Failed: s line -2147483648\n"},
		{"max_line", Fault{Kind: KIND_ASSERTION_FAILED, Code: 1, Location: &Location{Source: "s", Line: 2147483647}},
			"Assertion Failed: s line 2147483647\n"},
	}

	for _, entry := range table {
		rt, out := newTestRuntime(64, 0)
		status, err := rt.Run(func(rt *Runtime) {
			rt.Report(entry.fault)
		})
		assert.NoError(err, entry.name)
		assert.Equal(int32(entry.fault.Code), status, entry.name)
		assert.Equal(entry.output, out.String(), entry.name)
	}
}

func TestReport_Chunked(t *testing.T) {
	assert := assert.New(t)

	message := "a diagnostic message much longer than the staging buffer"
	for _, size := range []uint32{1, 3, 8, SCRATCH_SIZE} {
		for _, limit := range []int{0, 1, 5} {
			rt, out := newTestRuntime(64, limit)
			rt.ScratchSize = size
			status, err := rt.Run(func(rt *Runtime) {
				rt.Report(Fault{Kind: KIND_RESOURCE_EXHAUSTED, Code: 12, Message: message})
			})
			name := fmt.Sprintf("size %d limit %d", size, limit)
			assert.NoError(err, name)
			assert.Equal(int32(12), status, name)
			assert.Equal("Error: "+message+"\n", out.String(), name)
		}
	}
}

func TestAssert(t *testing.T) {
	assert := assert.New(t)

	rt, out := newTestRuntime(64, 0)
	status, err := rt.Run(func(rt *Runtime) {
		rt.Assert(true)
		rt.AssertMsg(1 < 2, "1 < 2")
		rt.AssertAt(true, "src", 42)
	})
	assert.NoError(err)
	assert.Equal(int32(0), status)
	assert.Empty(out.String())

	rt, out = newTestRuntime(64, 0)
	status, err = rt.Run(func(rt *Runtime) {
		rt.AssertAt(false, "src", 42)
	})
	assert.NoError(err)
	assert.Equal(int32(CODE_ASSERTION), status)
	assert.Contains(out.String(), "42")
	assert.Equal("Assertion Failed: src line 42\n", out.String())
}

func TestAssert_Caller(t *testing.T) {
	assert := assert.New(t)

	var line int
	rt, out := newTestRuntime(64, 0)
	status, err := rt.Run(func(rt *Runtime) {
		_, _, line, _ = runtime.Caller(0)
		rt.Assert(false)
	})
	assert.NoError(err)
	assert.Equal(int32(CODE_ASSERTION), status)
	assert.Equal(fmt.Sprintf("Assertion Failed: fault_test.go line %d\n", line+1), out.String())

	rt, out = newTestRuntime(64, 0)
	status, err = rt.Run(func(rt *Runtime) {
		_, _, line, _ = runtime.Caller(0)
		rt.AssertMsg(2 < 1, "2 < 1")
	})
	assert.NoError(err)
	assert.Equal(int32(CODE_ASSERTION), status)
	assert.Equal(fmt.Sprintf("Assertion Failed: 2 < 1 fault_test.go line %d\n", line+1), out.String())
}

func TestAssert_EvaluatedOnce(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	cond := func() bool {
		calls++
		return false
	}

	rt, _ := newTestRuntime(64, 0)
	status, _ := rt.Run(func(rt *Runtime) {
		rt.AssertAt(cond(), "src", 1)
	})
	assert.Equal(int32(CODE_ASSERTION), status)
	assert.Equal(1, calls)
}

func TestEmit_DigitsNoAlloc(t *testing.T) {
	assert := assert.New(t)

	rt, out := newTestRuntime(64, 0)
	out.Grow(4096)

	var digits [11]byte
	line := strconv.AppendInt(digits[:0], 2147483647, 10)
	allocs := testing.AllocsPerRun(100, func() { emit(rt, line) })
	assert.Equal(float64(0), allocs)
	assert.Equal(strings.Repeat("2147483647", 101), out.String())
}

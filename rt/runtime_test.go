package rt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/svcsim/cpu"
	"github.com/ezrec/svcsim/io"
)

const testText = "hello, world\n\x00unterminated"

func newTestRuntime(capacity uint32, limit int) (rt *Runtime, out *bytes.Buffer) {
	mem := &cpu.Memory{}
	regions := [](struct {
		base     uint32
		data     []byte
		writable bool
	}){
		{cpu.ARENA_TEXT, []byte(testText), false},
		{cpu.ARENA_SCRATCH, make([]byte, SCRATCH_SIZE), true},
		{cpu.ARENA_HEAP, make([]byte, capacity), true},
		{cpu.ARENA_STACK - cpu.STACK_SIZE, make([]byte, cpu.STACK_SIZE), true},
	}
	for _, region := range regions {
		if err := mem.Mmap(region.base, region.data, region.writable); err != nil {
			panic(err)
		}
	}

	out = &bytes.Buffer{}
	c := cpu.NewCpu(mem, &io.Console{Output: out, Limit: limit})
	rt = NewRuntime(c, NewHeap(cpu.ARENA_HEAP, capacity), cpu.ARENA_SCRATCH, SCRATCH_SIZE)
	rt.Reset()

	return
}

func TestRuntime_RunReturn(t *testing.T) {
	assert := assert.New(t)

	rt, out := newTestRuntime(64, 0)
	ran := false
	status, err := rt.Run(func(rt *Runtime) {
		ran = true
	})
	assert.NoError(err)
	assert.True(ran)
	assert.Equal(int32(0), status)
	assert.Empty(out.String())
	assert.Equal(cpu.STATE_TERMINATED, rt.Cpu.State)
}

func TestRuntime_Terminate(t *testing.T) {
	assert := assert.New(t)

	rt, _ := newTestRuntime(64, 0)
	after := false
	status, err := rt.Run(func(rt *Runtime) {
		rt.Terminate(25)
		after = true
	})
	assert.NoError(err)
	assert.False(after)
	assert.Equal(int32(25), status)
	assert.Equal(int32(25), rt.Cpu.ExitCode)
	assert.Equal(1, rt.Cpu.Ticks)
}

func TestRuntime_RunTerminated(t *testing.T) {
	assert := assert.New(t)

	rt, _ := newTestRuntime(64, 0)
	_, err := rt.Run(func(rt *Runtime) {})
	assert.NoError(err)

	status, err := rt.Run(func(rt *Runtime) {
		t.Fatal("ran after termination")
	})
	assert.ErrorIs(err, ErrTerminated)
	assert.Equal(int32(0), status)

	rt.Reset()
	status, err = rt.Run(func(rt *Runtime) { rt.Terminate(3) })
	assert.NoError(err)
	assert.Equal(int32(3), status)
}

func TestRuntime_Catch(t *testing.T) {
	assert := assert.New(t)

	rt, _ := newTestRuntime(64, 0)
	err := rt.Catch(func() {})
	assert.NoError(err)

	err = rt.Catch(func() { rt.Terminate(7) })
	var exit *Exit
	assert.ErrorAs(err, &exit)
	assert.Equal(int32(7), exit.Code)

	assert.Panics(func() {
		rt.Reset()
		rt.Catch(func() { panic("other") })
	})
}

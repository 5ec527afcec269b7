package rt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/svcsim/cpu"
)

func TestStubs(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		svc  Service
		call func(rt *Runtime)
	}){
		{SERVICE_READ, func(rt *Runtime) { rt.Read(0, 0, 16) }},
		{SERVICE_LSEEK, func(rt *Runtime) { rt.Lseek(0, 0, 0) }},
		{SERVICE_KILL, func(rt *Runtime) { rt.Kill(1, 9) }},
		{SERVICE_GETPID, func(rt *Runtime) { rt.Getpid() }},
		{SERVICE_CLOSE, func(rt *Runtime) { rt.Close(1) }},
		{SERVICE_ISATTY, func(rt *Runtime) { rt.Isatty(1) }},
	}

	seen := map[int32]Service{}
	for _, entry := range table {
		name := entry.svc.String()
		rt, out := newTestRuntime(64, 0)
		after := false
		status, err := rt.Run(func(rt *Runtime) {
			entry.call(rt)
			after = true
		})
		assert.NoError(err, name)
		assert.False(after, name)
		assert.Equal(int32(entry.svc.Code()), status, name)
		if faultText {
			assert.Equal(fmt.Sprintf("Error: %v unimplemented\n", name), out.String())
		}

		other, dup := seen[status]
		assert.False(dup, "%v shares code with %v", name, other)
		seen[status] = entry.svc

		assert.NotEqual(int32(CODE_OK), status, name)
		assert.NotEqual(int32(CODE_ASSERTION), status, name)
		assert.NotEqual(int32(CODE_HEAP_EXHAUSTED), status, name)
	}

	count := 0
	for range Services() {
		count++
	}
	assert.Equal(len(table), count)
}

func TestFstat(t *testing.T) {
	assert := assert.New(t)

	rt, out := newTestRuntime(64, 0)
	status, err := rt.Run(func(rt *Runtime) {
		stat := rt.Sbrk(64)
		assert.Equal(int32(0), rt.Fstat(1, stat))
		mode, err := rt.Cpu.Memory.ReadWord(stat + STAT_MODE_OFFSET)
		assert.NoError(err)
		assert.Equal(uint32(S_IFCHR), mode)

		assert.Equal(int32(0), rt.Fstat(7, 0))
	})
	assert.NoError(err)
	assert.Equal(int32(0), status)
	assert.Empty(out.String())
}

func TestFstat_ReadOnly(t *testing.T) {
	assert := assert.New(t)

	rt, out := newTestRuntime(64, 0)
	status, err := rt.Run(func(rt *Runtime) {
		rt.Fstat(1, cpu.ARENA_TEXT)
	})
	assert.ErrorIs(err, cpu.ErrMemoryReadOnly)
	assert.Equal(int32(CODE_SUPERVISOR_FAULT), status)
	data, err := rt.Cpu.Memory.Read(cpu.ARENA_TEXT+STAT_MODE_OFFSET, 4)
	assert.NoError(err)
	assert.Equal([]byte("o, w"), data)
	assert.Empty(out.String())
}

func TestService_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("getpid", SERVICE_GETPID.String())
	assert.Equal("Service(42)", Service(42).String())
	assert.Equal(CODE_SUPERVISOR_FAULT, Service(-1).Code())
	assert.Equal("CODE_UNIMPLEMENTED_KILL", CODE_UNIMPLEMENTED_KILL.String())
	assert.Equal("Code(77)", Code(77).String())
	assert.Equal("CODE_SUPERVISOR_FAULT", CODE_SUPERVISOR_FAULT.String())
	assert.Equal("CODE_POOL_EXHAUSTED", CODE_POOL_EXHAUSTED.String())
	assert.Equal("ResourceExhausted", KIND_RESOURCE_EXHAUSTED.String())
	assert.Equal("Kind(9)", Kind(9).String())
}

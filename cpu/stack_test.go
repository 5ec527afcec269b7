package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newStackCpu(size uint32) (cpu *Cpu) {
	mem := &Memory{}
	err := mem.Mmap(ARENA_STACK-size, make([]byte, size), true)
	if err != nil {
		panic(err)
	}

	cpu = NewCpu(mem, nil)
	cpu.Stack.Size = size
	cpu.Reset()

	return
}

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := newStackCpu(16)
	assert.Equal(0, cpu.Depth())

	err := cpu.Push(0x12345678)
	assert.NoError(err)
	assert.Equal(1, cpu.Depth())
	assert.Equal(uint32(ARENA_STACK-4), cpu.Register[REG_SP])

	value, err := cpu.Memory.ReadWord(ARENA_STACK - 4)
	assert.NoError(err)
	assert.Equal(uint32(0x12345678), value)
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := newStackCpu(16)
	assert.NoError(cpu.Push(0x12345678))
	assert.NoError(cpu.Push(0xABCDEF01))

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint32(0xABCDEF01), val)
	assert.Equal(1, cpu.Depth())

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint32(0x12345678), val)
	assert.Equal(0, cpu.Depth())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	cpu := newStackCpu(16)
	val, err := cpu.Pop()
	assert.ErrorIs(err, ErrStackEmpty)
	assert.Equal(uint32(0), val)
	assert.Equal(uint32(ARENA_STACK), cpu.Register[REG_SP])
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	cpu := newStackCpu(16)
	for i := range 4 {
		assert.NoError(cpu.Push(uint32(i)))
	}

	err := cpu.Push(4)
	assert.ErrorIs(err, ErrStackFull)
	assert.Equal(4, cpu.Depth())

	for i := 3; i >= 0; i-- {
		val, err := cpu.Pop()
		assert.NoError(err)
		assert.Equal(uint32(i), val)
	}
}

package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Mmap(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.NoError(mem.Mmap(0x2000, make([]byte, 0x100), true))
	assert.NoError(mem.Mmap(0x1000, make([]byte, 0x1000), false))
	assert.Equal(uint32(0x1000), mem.Regions[0].Base)
	assert.Equal(uint32(0x2000), mem.Regions[1].Base)

	table := [](struct {
		name string
		base uint32
		size int
	}){
		{"inside", 0x1800, 0x10},
		{"straddle_low", 0x0ff0, 0x20},
		{"straddle_high", 0x20f0, 0x20},
		{"cover", 0x0000, 0x3000},
	}

	for _, entry := range table {
		err := mem.Mmap(entry.base, make([]byte, entry.size), true)
		assert.ErrorIs(err, ErrMemoryOverlap, entry.name)
	}

	err := mem.Mmap(0xffff_fff0, make([]byte, 0x20), true)
	assert.ErrorIs(err, ErrMemoryRange)
}

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.NoError(mem.Mmap(0x1000, []byte("abcdefgh"), false))
	assert.NoError(mem.Mmap(0x2000, make([]byte, 8), true))

	data, err := mem.Read(0x1002, 3)
	assert.NoError(err)
	assert.Equal([]byte("cde"), data)

	_, err = mem.Read(0x1006, 3)
	assert.ErrorIs(err, ErrMemoryRange)

	data, err = mem.Read(0xdead, 0)
	assert.NoError(err)
	assert.Empty(data)

	err = mem.Write(0x1000, []byte("x"))
	assert.ErrorIs(err, ErrMemoryReadOnly)

	assert.NoError(mem.Write(0x2004, []byte("wxyz")))
	data, err = mem.Read(0x2004, 4)
	assert.NoError(err)
	assert.Equal([]byte("wxyz"), data)

	err = mem.Write(0x2006, []byte("wxyz"))
	assert.ErrorIs(err, ErrMemoryRange)

	b, err := mem.ReadByte(0x1007)
	assert.NoError(err)
	assert.Equal(byte('h'), b)
}

func TestMemory_Word(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.NoError(mem.Mmap(0x100, make([]byte, 8), true))

	assert.NoError(mem.WriteWord(0x104, 0x11223344))
	data, err := mem.Read(0x104, 4)
	assert.NoError(err)
	assert.Equal([]byte{0x44, 0x33, 0x22, 0x11}, data)

	value, err := mem.ReadWord(0x104)
	assert.NoError(err)
	assert.Equal(uint32(0x11223344), value)

	_, err = mem.ReadWord(0x106)
	var addrErr *ErrAddress
	assert.ErrorAs(err, &addrErr)
	assert.Equal(uint32(0x106), addrErr.Addr)
}

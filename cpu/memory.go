package cpu

import (
	"encoding/binary"
	"slices"
)

// Region is a contiguous mapped range of the address space.
type Region struct {
	Base     uint32 // First address of the region.
	Data     []byte // Backing store.
	Writable bool   // If clear, stores to the region fault.
}

// End returns the first address past the region.
func (r *Region) End() uint64 {
	return uint64(r.Base) + uint64(len(r.Data))
}

func (r *Region) contains(addr uint32, length uint32) bool {
	return addr >= r.Base && uint64(addr)+uint64(length) <= r.End()
}

// Memory is a flat 32-bit address space made of non-overlapping regions.
type Memory struct {
	Regions []*Region // Sorted by base address.
}

// Mmap maps data at base.
func (mem *Memory) Mmap(base uint32, data []byte, writable bool) (err error) {
	region := &Region{Base: base, Data: data, Writable: writable}
	if region.End() > 1<<32 {
		err = &ErrAddress{Addr: base, Length: uint32(len(data)), Err: ErrMemoryRange}
		return
	}

	for _, other := range mem.Regions {
		if uint64(base) < other.End() && region.End() > uint64(other.Base) {
			err = &ErrAddress{Addr: base, Length: uint32(len(data)), Err: ErrMemoryOverlap}
			return
		}
	}

	mem.Regions = append(mem.Regions, region)
	slices.SortFunc(mem.Regions, func(a, b *Region) int {
		return int(int64(a.Base) - int64(b.Base))
	})

	return
}

// Region finds the region holding [addr, addr+length).
func (mem *Memory) Region(addr uint32, length uint32) (region *Region, err error) {
	for _, r := range mem.Regions {
		if r.contains(addr, length) {
			region = r
			return
		}
	}

	err = &ErrAddress{Addr: addr, Length: length, Err: ErrMemoryRange}
	return
}

// Read returns a view of length bytes at addr. The view aliases memory
// and must not be retained. A zero length read never faults.
func (mem *Memory) Read(addr uint32, length uint32) (data []byte, err error) {
	if length == 0 {
		return
	}

	region, err := mem.Region(addr, length)
	if err != nil {
		return
	}

	offset := addr - region.Base
	data = region.Data[offset : offset+length]
	return
}

// Write copies data to addr.
func (mem *Memory) Write(addr uint32, data []byte) (err error) {
	if len(data) == 0 {
		return
	}

	region, err := mem.Region(addr, uint32(len(data)))
	if err != nil {
		return
	}

	if !region.Writable {
		err = &ErrAddress{Addr: addr, Length: uint32(len(data)), Err: ErrMemoryReadOnly}
		return
	}

	copy(region.Data[addr-region.Base:], data)
	return
}

// ReadByte reads a single byte.
func (mem *Memory) ReadByte(addr uint32) (value byte, err error) {
	data, err := mem.Read(addr, 1)
	if err != nil {
		return
	}

	value = data[0]
	return
}

// ReadWord reads a little-endian 32-bit word.
func (mem *Memory) ReadWord(addr uint32) (value uint32, err error) {
	data, err := mem.Read(addr, 4)
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint32(data)
	return
}

// WriteWord writes a little-endian 32-bit word.
func (mem *Memory) WriteWord(addr uint32, value uint32) (err error) {
	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], value)
	return mem.Write(addr, word[:])
}

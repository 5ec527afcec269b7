// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rt

import (
	"sync/atomic"
)

// Heap is a bump allocator over the fixed region [Base, Base+Capacity).
// Space is never released.
//
// The cursor only advances through a compare-and-swap, so concurrent
// Extend calls never grant overlapping or partial space.
type Heap struct {
	Base     uint32 // Address of the first byte of the region.
	Capacity uint32 // Size of the region in bytes.

	cursor atomic.Uint32
}

// NewHeap creates a heap over [base, base+capacity).
func NewHeap(base uint32, capacity uint32) (heap *Heap) {
	heap = &Heap{
		Base:     base,
		Capacity: capacity,
	}

	return
}

// Extend grants length contiguous bytes and returns their address. If
// the grant would pass the end of the region, nothing is granted and
// ErrHeapExhausted is returned.
func (heap *Heap) Extend(length uint32) (addr uint32, err error) {
	for {
		cursor := heap.cursor.Load()
		if uint64(cursor)+uint64(length) > uint64(heap.Capacity) {
			err = ErrHeapExhausted
			return
		}
		if heap.cursor.CompareAndSwap(cursor, cursor+length) {
			addr = heap.Base + cursor
			return
		}
	}
}

// Used returns the bytes granted so far.
func (heap *Heap) Used() uint32 {
	return heap.cursor.Load()
}

// Available returns the bytes left to grant.
func (heap *Heap) Available() uint32 {
	return heap.Capacity - heap.cursor.Load()
}

// Reset rewinds the cursor to the start of the region.
func (heap *Heap) Reset() {
	heap.cursor.Store(0)
}

// Sbrk extends the heap by length bytes and returns the start of the
// new space. On exhaustion it reports OUT OF HEAP SPACE and terminates
// with CODE_HEAP_EXHAUSTED.
func (rt *Runtime) Sbrk(length uint32) (addr uint32) {
	addr, err := rt.Heap.Extend(length)
	if err != nil {
		rt.Report(Fault{
			Kind:    KIND_RESOURCE_EXHAUSTED,
			Code:    CODE_HEAP_EXHAUSTED,
			Message: "OUT OF HEAP SPACE",
		})
	}

	return
}

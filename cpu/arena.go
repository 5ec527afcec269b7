package cpu

// Default memory map of the simulated machine.
const (
	ARENA_TEXT    = 0x0000_0000 // Program text and literal pool.
	ARENA_SCRATCH = 0x0001_0000 // Runtime diagnostic staging buffer.
	ARENA_HEAP    = 0x0002_0000 // Heap region.
	ARENA_STACK   = 0x0008_0000 // Top of the stack, exclusive.
)

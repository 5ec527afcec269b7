package cpu

const (
	STACK_SIZE = 4096 // Default stack size in bytes.
)

// Stack describes the full-descending stack region [Top-Size, Top).
type Stack struct {
	Top  uint32
	Size uint32
}

// Bottom returns the lowest address of the stack region.
func (s *Stack) Bottom() uint32 {
	return s.Top - s.Size
}

// Push a word onto the stack at sp.
func (cpu *Cpu) Push(value uint32) (err error) {
	sp := cpu.Register[REG_SP]
	if sp < cpu.Stack.Bottom()+4 || sp > cpu.Stack.Top {
		err = ErrStackFull
		return
	}

	sp -= 4
	err = cpu.Memory.WriteWord(sp, value)
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = sp
	return
}

// Pop a word from the stack at sp.
func (cpu *Cpu) Pop() (value uint32, err error) {
	sp := cpu.Register[REG_SP]
	if sp+4 > cpu.Stack.Top || sp < cpu.Stack.Bottom() {
		err = ErrStackEmpty
		return
	}

	value, err = cpu.Memory.ReadWord(sp)
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = sp + 4
	return
}

// Depth returns the number of words on the stack.
func (cpu *Cpu) Depth() int {
	return int(cpu.Stack.Top-cpu.Register[REG_SP]) / 4
}

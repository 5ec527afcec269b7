package cpu

// SvcOp is a supervisor call operation, encoded as the svc immediate.
type SvcOp uint8

//go:generate go tool stringer -linecomment -type=SvcOp
const (
	SVC_EXIT  = SvcOp(1) // exit
	SVC_WRITE = SvcOp(2) // write
)

// Clobbers returns the registers a supervisor call consumes or
// overwrites. Arguments are passed in r0 upwards, the result is returned
// in r0.
//
//	exit:  r0 = status
//	write: r0 = buffer, r1 = count; returns r0 = accepted, r2 = scratch
func (op SvcOp) Clobbers() []Reg {
	return svcClobbers[op]
}

var svcClobbers = map[SvcOp][]Reg{
	SVC_EXIT:  {REG_R0},
	SVC_WRITE: {REG_R0, REG_R1, REG_R2},
}

// Reg is a register index.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_R0  = Reg(0)  // r0
	REG_R1  = Reg(1)  // r1
	REG_R2  = Reg(2)  // r2
	REG_R3  = Reg(3)  // r3
	REG_R4  = Reg(4)  // r4
	REG_R5  = Reg(5)  // r5
	REG_R6  = Reg(6)  // r6
	REG_R7  = Reg(7)  // r7
	REG_R8  = Reg(8)  // r8
	REG_R9  = Reg(9)  // r9
	REG_R10 = Reg(10) // r10
	REG_R11 = Reg(11) // r11
	REG_R12 = Reg(12) // r12
	REG_SP  = Reg(13) // sp
	REG_LR  = Reg(14) // lr
	REG_PC  = Reg(15) // pc

	REG_COUNT = 16
)

// State is the process state of the simulated program.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING    = State(0) // running
	STATE_TERMINATED = State(1) // terminated
)

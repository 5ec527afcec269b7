// Package cpu implements the simulated processor that hosted programs run on.
//
// The processor has sixteen 32-bit registers (r0-r12, sp, lr, pc), a flat
// 32-bit address space built from mapped regions, and a full-descending
// stack in that address space. The only way out of user mode is the
// supervisor call instruction (svc #imm), whose immediate selects the
// service from the supervisor dispatch table.
//
// A Cpu has exactly one thread of control. Supervisor calls are synchronous
// and must not nest.
package cpu

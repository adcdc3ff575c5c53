package cpu68k

// Exception vector numbers, as indices into the 68000's vector table
// (each vector is a 4-byte supervisor-address entry starting at vector*4).
const (
	vectorAddressError       = 3
	vectorIllegalInstruction = 4
	vectorDivideByZero       = 5
)

// exception is a pending processor exception: which vector to service and,
// for address errors, the faulting address (recorded for
// parity with the stack frame real 68000 hardware writes, even though
// nothing in this core currently reads it back out).
type exception struct {
	vector  uint8
	address uint32
}

// enterException implements the common exception-entry sequence shared by
// every vector: the current SR and PC are pushed to the supervisor stack,
// the processor is forced into supervisor mode with tracing disabled, and
// PC is loaded from the vector table. This generalizes the illegal-
// instruction path so address-error and divide-by-zero (added once DIVU/
// DIVS exist) share one implementation instead of three copies.
func (e *executor) enterException(exc *exception) {
	sr := e.regs.statusRegister()
	returnPC := e.regs.pc

	// Forcing supervisor mode before the push below makes A7 resolve to
	// SSP even for an exception taken from user mode.
	e.regs.supervisorMode = true
	e.regs.traceEnabled = false

	sp := addressRegister(7).readFrom(e.regs) - 4
	addressRegister(7).writeLongWordTo(e.regs, sp)
	e.bus.WriteLong(sp, returnPC)
	sp = addressRegister(7).readFrom(e.regs) - 2
	addressRegister(7).writeLongWordTo(e.regs, sp)
	e.bus.WriteWord(sp, sr)

	vectorAddress := uint32(exc.vector) * 4
	e.regs.pc = e.bus.ReadLong(vectorAddress)
}

package cpu68k

// M68000 is the decode/execute engine's public handle: register file plus
// the operations a host composes into a running system.
type M68000 struct {
	regs registers
}

// New creates an M68000 reset into supervisor mode with a zeroed register
// file, matching the reference core's power-on state. Callers load PC/SSP
// from their ROM's reset vector via SetPC/SetAddressRegisters before the
// first ExecuteInstruction.
func New() *M68000 {
	return &M68000{regs: newRegisters()}
}

func (m *M68000) DataRegisters() [8]uint32 { return m.regs.data }

func (m *M68000) SetDataRegisters(values [8]uint32) { m.regs.data = values }

func (m *M68000) AddressRegisters() [7]uint32 { return m.regs.address }

func (m *M68000) UserStackPointer() uint32 { return m.regs.usp }

func (m *M68000) SupervisorStackPointer() uint32 { return m.regs.ssp }

func (m *M68000) SetAddressRegisters(values [7]uint32, usp, ssp uint32) {
	m.regs.address = values
	m.regs.usp = usp
	m.regs.ssp = ssp
}

func (m *M68000) StatusRegister() uint16 { return m.regs.statusRegister() }

func (m *M68000) SetStatusRegister(value uint16) { m.regs.setStatusRegister(value) }

func (m *M68000) SupervisorMode() bool { return m.regs.supervisorMode }

func (m *M68000) PC() uint32 { return m.regs.pc }

func (m *M68000) SetPC(pc uint32) { m.regs.pc = pc }

// ExecuteInstruction decodes and runs one instruction. A decode result of
// Illegal, or a word/long access to an odd address raised while decoding
// or executing, is serviced immediately as the corresponding exception
// (vector 4 or vector 3) before returning.
func (m *M68000) ExecuteInstruction(bus BusInterface) {
	checking := &addressCheckingBus{BusInterface: bus}
	e := &executor{regs: &m.regs, bus: checking}

	exc := e.execute()
	if exc == nil {
		exc = checking.pending
	}
	if exc != nil {
		e.enterException(exc)
	}
}

// addressCheckingBus wraps a host bus to enforce the 68000's even-address
// rule for word and long-word accesses, latching the first violation as a
// pending address-error exception instead of letting a malformed access
// silently succeed against the host.
type addressCheckingBus struct {
	BusInterface
	pending *exception
}

func (b *addressCheckingBus) ReadWord(address uint32) uint16 {
	b.checkAligned(address)
	return b.BusInterface.ReadWord(address)
}

func (b *addressCheckingBus) WriteWord(address uint32, value uint16) {
	b.checkAligned(address)
	b.BusInterface.WriteWord(address, value)
}

func (b *addressCheckingBus) ReadLong(address uint32) uint32 {
	b.checkAligned(address)
	return b.BusInterface.ReadLong(address)
}

func (b *addressCheckingBus) WriteLong(address uint32, value uint32) {
	b.checkAligned(address)
	b.BusInterface.WriteLong(address, value)
}

func (b *addressCheckingBus) checkAligned(address uint32) {
	if b.pending == nil && address%2 != 0 {
		b.pending = &exception{vector: vectorAddressError, address: address}
	}
}

// Package cpu68k implements a Motorola 68000 decode/execute engine driven
// through an abstract bus capability, in the same bus-polymorphic spirit as
// the 6502 core: callers own the address space and supply byte/word/long
// access.
package cpu68k

// ConditionCodes holds the five flag bits of the CCR (the low byte of SR).
type ConditionCodes struct {
	Carry    bool
	Overflow bool
	Zero     bool
	Negative bool
	Extend   bool
}

func conditionCodesFromByte(value uint8) ConditionCodes {
	return ConditionCodes{
		Carry:    value&(1<<0) != 0,
		Overflow: value&(1<<1) != 0,
		Zero:     value&(1<<2) != 0,
		Negative: value&(1<<3) != 0,
		Extend:   value&(1<<4) != 0,
	}
}

func (cc ConditionCodes) toByte() uint8 {
	var b uint8
	if cc.Extend {
		b |= 1 << 4
	}
	if cc.Negative {
		b |= 1 << 3
	}
	if cc.Zero {
		b |= 1 << 2
	}
	if cc.Overflow {
		b |= 1 << 1
	}
	if cc.Carry {
		b |= 1 << 0
	}
	return b
}

// registers is the complete 68000 programmer-visible register file: eight
// data registers, seven address registers (A7 is routed through USP/SSP
// depending on supervisor mode), the program counter, and the status
// register split into its CCR and system byte.
type registers struct {
	data    [8]uint32
	address [7]uint32
	usp     uint32
	ssp     uint32
	pc      uint32

	ccr                   ConditionCodes
	interruptPriorityMask uint8
	supervisorMode        bool
	traceEnabled          bool
}

func newRegisters() registers {
	return registers{supervisorMode: true}
}

func (r *registers) statusRegister() uint16 {
	lsb := r.ccr.toByte()
	msb := r.interruptPriorityMask
	if r.supervisorMode {
		msb |= 1 << 5
	}
	if r.traceEnabled {
		msb |= 1 << 7
	}
	return uint16(msb)<<8 | uint16(lsb)
}

func (r *registers) setStatusRegister(value uint16) {
	msb := uint8(value >> 8)
	lsb := uint8(value)

	r.interruptPriorityMask = msb & 0x07
	r.supervisorMode = msb&(1<<5) != 0
	r.traceEnabled = msb&(1<<7) != 0
	r.ccr = conditionCodesFromByte(lsb)
}

// dataRegister identifies one of D0-D7.
type dataRegister uint8

func (d dataRegister) readFrom(r *registers) uint32 { return r.data[d] }

func (d dataRegister) writeByteTo(r *registers, value uint8) {
	r.data[d] = (r.data[d] & 0xFFFFFF00) | uint32(value)
}

func (d dataRegister) writeWordTo(r *registers, value uint16) {
	r.data[d] = (r.data[d] & 0xFFFF0000) | uint32(value)
}

func (d dataRegister) writeLongWordTo(r *registers, value uint32) {
	r.data[d] = value
}

// addressRegister identifies one of A0-A7; A7 is routed to USP/SSP.
type addressRegister uint8

func (a addressRegister) isStackPointer() bool { return a == 7 }

func (a addressRegister) readFrom(r *registers) uint32 {
	if a == 7 {
		if r.supervisorMode {
			return r.ssp
		}
		return r.usp
	}
	return r.address[a]
}

func (a addressRegister) writeByteTo(*registers, uint8) {
	panic("cpu68k: writing a byte to an address register is not a valid encoding")
}

func (a addressRegister) writeWordTo(r *registers, value uint16) {
	// Address register writes are always sign-extended to 32 bits.
	a.writeLongWordTo(r, uint32(int32(int16(value))))
}

func (a addressRegister) writeLongWordTo(r *registers, value uint32) {
	if a == 7 {
		if r.supervisorMode {
			r.ssp = value
		} else {
			r.usp = value
		}
		return
	}
	r.address[a] = value
}

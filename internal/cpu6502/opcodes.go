package cpu6502

type execFunc func(cpu *CPU, bus Bus, address uint16, pageCrossed bool) uint8

type instruction struct {
	mode                 AddressingMode
	cycles               uint8
	exec                 execFunc
	extraOnPageCrossRead bool
	extraOnIndexedWrite  bool
}

// initInstructionTable fills in the official 6502 opcode set. Entries left
// at their zero value (exec == nil) are undefined opcodes; Step treats
// those as a 2-cycle no-op per the documented illegal-opcode policy.
func initInstructionTable(t *[256]instruction) {
	add := func(opcode uint8, mode AddressingMode, cycles uint8, exec execFunc) {
		t[opcode] = instruction{mode: mode, cycles: cycles, exec: exec}
	}
	addRead := func(opcode uint8, mode AddressingMode, cycles uint8, exec execFunc) {
		t[opcode] = instruction{mode: mode, cycles: cycles, exec: exec, extraOnPageCrossRead: true}
	}
	addWrite := func(opcode uint8, mode AddressingMode, cycles uint8, exec execFunc) {
		t[opcode] = instruction{mode: mode, cycles: cycles, exec: exec, extraOnIndexedWrite: true}
	}

	// Load/store.
	add(0xA9, Immediate, 2, (*CPU).lda)
	add(0xA5, ZeroPage, 3, (*CPU).lda)
	add(0xB5, ZeroPageX, 4, (*CPU).lda)
	add(0xAD, Absolute, 4, (*CPU).lda)
	addRead(0xBD, AbsoluteX, 4, (*CPU).lda)
	addRead(0xB9, AbsoluteY, 4, (*CPU).lda)
	add(0xA1, IndexedIndirect, 6, (*CPU).lda)
	addRead(0xB1, IndirectIndexed, 5, (*CPU).lda)

	add(0xA2, Immediate, 2, (*CPU).ldx)
	add(0xA6, ZeroPage, 3, (*CPU).ldx)
	add(0xB6, ZeroPageY, 4, (*CPU).ldx)
	add(0xAE, Absolute, 4, (*CPU).ldx)
	addRead(0xBE, AbsoluteY, 4, (*CPU).ldx)

	add(0xA0, Immediate, 2, (*CPU).ldy)
	add(0xA4, ZeroPage, 3, (*CPU).ldy)
	add(0xB4, ZeroPageX, 4, (*CPU).ldy)
	add(0xAC, Absolute, 4, (*CPU).ldy)
	addRead(0xBC, AbsoluteX, 4, (*CPU).ldy)

	add(0x85, ZeroPage, 3, (*CPU).sta)
	add(0x95, ZeroPageX, 4, (*CPU).sta)
	add(0x8D, Absolute, 4, (*CPU).sta)
	addWrite(0x9D, AbsoluteX, 5, (*CPU).sta)
	addWrite(0x99, AbsoluteY, 5, (*CPU).sta)
	add(0x81, IndexedIndirect, 6, (*CPU).sta)
	addWrite(0x91, IndirectIndexed, 6, (*CPU).sta)

	add(0x86, ZeroPage, 3, (*CPU).stx)
	add(0x96, ZeroPageY, 4, (*CPU).stx)
	add(0x8E, Absolute, 4, (*CPU).stx)

	add(0x84, ZeroPage, 3, (*CPU).sty)
	add(0x94, ZeroPageX, 4, (*CPU).sty)
	add(0x8C, Absolute, 4, (*CPU).sty)

	// Arithmetic.
	add(0x69, Immediate, 2, (*CPU).adc)
	add(0x65, ZeroPage, 3, (*CPU).adc)
	add(0x75, ZeroPageX, 4, (*CPU).adc)
	add(0x6D, Absolute, 4, (*CPU).adc)
	addRead(0x7D, AbsoluteX, 4, (*CPU).adc)
	addRead(0x79, AbsoluteY, 4, (*CPU).adc)
	add(0x61, IndexedIndirect, 6, (*CPU).adc)
	addRead(0x71, IndirectIndexed, 5, (*CPU).adc)

	add(0xE9, Immediate, 2, (*CPU).sbc)
	add(0xE5, ZeroPage, 3, (*CPU).sbc)
	add(0xF5, ZeroPageX, 4, (*CPU).sbc)
	add(0xED, Absolute, 4, (*CPU).sbc)
	addRead(0xFD, AbsoluteX, 4, (*CPU).sbc)
	addRead(0xF9, AbsoluteY, 4, (*CPU).sbc)
	add(0xE1, IndexedIndirect, 6, (*CPU).sbc)
	addRead(0xF1, IndirectIndexed, 5, (*CPU).sbc)

	// Logical.
	add(0x29, Immediate, 2, (*CPU).and)
	add(0x25, ZeroPage, 3, (*CPU).and)
	add(0x35, ZeroPageX, 4, (*CPU).and)
	add(0x2D, Absolute, 4, (*CPU).and)
	addRead(0x3D, AbsoluteX, 4, (*CPU).and)
	addRead(0x39, AbsoluteY, 4, (*CPU).and)
	add(0x21, IndexedIndirect, 6, (*CPU).and)
	addRead(0x31, IndirectIndexed, 5, (*CPU).and)

	add(0x09, Immediate, 2, (*CPU).ora)
	add(0x05, ZeroPage, 3, (*CPU).ora)
	add(0x15, ZeroPageX, 4, (*CPU).ora)
	add(0x0D, Absolute, 4, (*CPU).ora)
	addRead(0x1D, AbsoluteX, 4, (*CPU).ora)
	addRead(0x19, AbsoluteY, 4, (*CPU).ora)
	add(0x01, IndexedIndirect, 6, (*CPU).ora)
	addRead(0x11, IndirectIndexed, 5, (*CPU).ora)

	add(0x49, Immediate, 2, (*CPU).eor)
	add(0x45, ZeroPage, 3, (*CPU).eor)
	add(0x55, ZeroPageX, 4, (*CPU).eor)
	add(0x4D, Absolute, 4, (*CPU).eor)
	addRead(0x5D, AbsoluteX, 4, (*CPU).eor)
	addRead(0x59, AbsoluteY, 4, (*CPU).eor)
	add(0x41, IndexedIndirect, 6, (*CPU).eor)
	addRead(0x51, IndirectIndexed, 5, (*CPU).eor)

	add(0x24, ZeroPage, 3, (*CPU).bit)
	add(0x2C, Absolute, 4, (*CPU).bit)

	// Shifts/rotates. Accumulator and memory forms are distinct exec
	// functions: resolveAddress yields address 0 for both Implied and
	// Accumulator, so the operand location must be chosen at table-build
	// time rather than inferred from the address at run time.
	add(0x0A, Accumulator, 2, (*CPU).aslAcc)
	add(0x06, ZeroPage, 5, (*CPU).aslMem)
	add(0x16, ZeroPageX, 6, (*CPU).aslMem)
	add(0x0E, Absolute, 6, (*CPU).aslMem)
	add(0x1E, AbsoluteX, 7, (*CPU).aslMem)

	add(0x4A, Accumulator, 2, (*CPU).lsrAcc)
	add(0x46, ZeroPage, 5, (*CPU).lsrMem)
	add(0x56, ZeroPageX, 6, (*CPU).lsrMem)
	add(0x4E, Absolute, 6, (*CPU).lsrMem)
	add(0x5E, AbsoluteX, 7, (*CPU).lsrMem)

	add(0x2A, Accumulator, 2, (*CPU).rolAcc)
	add(0x26, ZeroPage, 5, (*CPU).rolMem)
	add(0x36, ZeroPageX, 6, (*CPU).rolMem)
	add(0x2E, Absolute, 6, (*CPU).rolMem)
	add(0x3E, AbsoluteX, 7, (*CPU).rolMem)

	add(0x6A, Accumulator, 2, (*CPU).rorAcc)
	add(0x66, ZeroPage, 5, (*CPU).rorMem)
	add(0x76, ZeroPageX, 6, (*CPU).rorMem)
	add(0x6E, Absolute, 6, (*CPU).rorMem)
	add(0x7E, AbsoluteX, 7, (*CPU).rorMem)

	// Compare.
	add(0xC9, Immediate, 2, (*CPU).cmp)
	add(0xC5, ZeroPage, 3, (*CPU).cmp)
	add(0xD5, ZeroPageX, 4, (*CPU).cmp)
	add(0xCD, Absolute, 4, (*CPU).cmp)
	addRead(0xDD, AbsoluteX, 4, (*CPU).cmp)
	addRead(0xD9, AbsoluteY, 4, (*CPU).cmp)
	add(0xC1, IndexedIndirect, 6, (*CPU).cmp)
	addRead(0xD1, IndirectIndexed, 5, (*CPU).cmp)

	add(0xE0, Immediate, 2, (*CPU).cpx)
	add(0xE4, ZeroPage, 3, (*CPU).cpx)
	add(0xEC, Absolute, 4, (*CPU).cpx)

	add(0xC0, Immediate, 2, (*CPU).cpy)
	add(0xC4, ZeroPage, 3, (*CPU).cpy)
	add(0xCC, Absolute, 4, (*CPU).cpy)

	// Increment/decrement.
	add(0xE6, ZeroPage, 5, (*CPU).inc)
	add(0xF6, ZeroPageX, 6, (*CPU).inc)
	add(0xEE, Absolute, 6, (*CPU).inc)
	add(0xFE, AbsoluteX, 7, (*CPU).inc)

	add(0xC6, ZeroPage, 5, (*CPU).dec)
	add(0xD6, ZeroPageX, 6, (*CPU).dec)
	add(0xCE, Absolute, 6, (*CPU).dec)
	add(0xDE, AbsoluteX, 7, (*CPU).dec)

	add(0xE8, Implied, 2, (*CPU).inx)
	add(0xCA, Implied, 2, (*CPU).dex)
	add(0xC8, Implied, 2, (*CPU).iny)
	add(0x88, Implied, 2, (*CPU).dey)

	// Transfers.
	add(0xAA, Implied, 2, (*CPU).tax)
	add(0x8A, Implied, 2, (*CPU).txa)
	add(0xA8, Implied, 2, (*CPU).tay)
	add(0x98, Implied, 2, (*CPU).tya)
	add(0xBA, Implied, 2, (*CPU).tsx)
	add(0x9A, Implied, 2, (*CPU).txs)

	// Stack.
	add(0x48, Implied, 3, (*CPU).pha)
	add(0x68, Implied, 4, (*CPU).pla)
	add(0x08, Implied, 3, (*CPU).php)
	add(0x28, Implied, 4, (*CPU).plp)

	// Flags.
	add(0x18, Implied, 2, (*CPU).clc)
	add(0x38, Implied, 2, (*CPU).sec)
	add(0x58, Implied, 2, (*CPU).cli)
	add(0x78, Implied, 2, (*CPU).sei)
	add(0xB8, Implied, 2, (*CPU).clv)
	add(0xD8, Implied, 2, (*CPU).cld)
	add(0xF8, Implied, 2, (*CPU).sed)

	// Control flow.
	add(0x4C, Absolute, 3, (*CPU).jmp)
	add(0x6C, Indirect, 5, (*CPU).jmp)
	add(0x20, Absolute, 6, (*CPU).jsr)
	add(0x60, Implied, 6, (*CPU).rts)
	add(0x40, Implied, 6, (*CPU).rti)
	add(0x00, Implied, 7, (*CPU).brk)

	// Branches (base 2 cycles; +1 taken, +1 more if taken and page-crossed).
	add(0x90, Relative, 2, (*CPU).bcc)
	add(0xB0, Relative, 2, (*CPU).bcs)
	add(0xD0, Relative, 2, (*CPU).bne)
	add(0xF0, Relative, 2, (*CPU).beq)
	add(0x10, Relative, 2, (*CPU).bpl)
	add(0x30, Relative, 2, (*CPU).bmi)
	add(0x50, Relative, 2, (*CPU).bvc)
	add(0x70, Relative, 2, (*CPU).bvs)

	// NOP (implied form only; the illegal-opcode fallback covers the rest).
	add(0xEA, Implied, 2, (*CPU).nop)
}

func (cpu *CPU) lda(bus Bus, address uint16, _ bool) uint8 {
	cpu.A = bus.ReadByte(address)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) ldx(bus Bus, address uint16, _ bool) uint8 {
	cpu.X = bus.ReadByte(address)
	cpu.setZN(cpu.X)
	return 0
}

func (cpu *CPU) ldy(bus Bus, address uint16, _ bool) uint8 {
	cpu.Y = bus.ReadByte(address)
	cpu.setZN(cpu.Y)
	return 0
}

func (cpu *CPU) sta(bus Bus, address uint16, _ bool) uint8 {
	bus.WriteByte(address, cpu.A)
	return 0
}

func (cpu *CPU) stx(bus Bus, address uint16, _ bool) uint8 {
	bus.WriteByte(address, cpu.X)
	return 0
}

func (cpu *CPU) sty(bus Bus, address uint16, _ bool) uint8 {
	bus.WriteByte(address, cpu.Y)
	return 0
}

// adc implements binary and BCD (decimal-mode) addition. NES hardware
// disables decimal mode, but this core targets the general MOS 6502 and
// honors D per spec.
func (cpu *CPU) adc(bus Bus, address uint16, _ bool) uint8 {
	value := bus.ReadByte(address)
	carry := uint16(0)
	if cpu.carry {
		carry = 1
	}

	if cpu.decimal {
		lo := uint16(cpu.A&0x0F) + uint16(value&0x0F) + carry
		hi := uint16(cpu.A>>4) + uint16(value>>4)
		if lo > 9 {
			lo += 6
			hi++
		}
		binary := uint16(cpu.A) + uint16(value) + carry
		cpu.zero = uint8(binary) == 0
		cpu.negative = hi&0x08 != 0
		cpu.overflow = ((uint16(cpu.A)^uint16(value))&0x80) == 0 && ((uint16(cpu.A)^(hi<<4))&0x80) != 0
		if hi > 9 {
			hi += 6
		}
		cpu.carry = hi > 15
		cpu.A = uint8(hi<<4) | uint8(lo&0x0F)
		return 0
	}

	result := uint16(cpu.A) + uint16(value) + carry
	cpu.overflow = (cpu.A^uint8(result))&0x80 != 0 && (cpu.A^value)&0x80 == 0
	cpu.carry = result > 0xFF
	cpu.A = uint8(result)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) sbc(bus Bus, address uint16, _ bool) uint8 {
	value := bus.ReadByte(address)
	carry := uint16(0)
	if cpu.carry {
		carry = 1
	}

	binary := uint16(cpu.A) + uint16(value^0xFF) + carry
	cpu.overflow = (cpu.A^uint8(binary))&0x80 != 0 && (cpu.A^(value^0xFF))&0x80 == 0
	cpu.carry = binary > 0xFF
	result := uint8(binary)

	if cpu.decimal {
		lo := int16(cpu.A&0x0F) - int16(value&0x0F) + int16(carry) - 1
		hi := int16(cpu.A>>4) - int16(value>>4)
		if lo < 0 {
			lo -= 6
			hi--
		}
		if hi < 0 {
			hi -= 6
		}
		cpu.A = uint8(hi<<4) | uint8(lo&0x0F)
		cpu.setZN(result)
		return 0
	}

	cpu.A = result
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) and(bus Bus, address uint16, _ bool) uint8 {
	cpu.A &= bus.ReadByte(address)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) ora(bus Bus, address uint16, _ bool) uint8 {
	cpu.A |= bus.ReadByte(address)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) eor(bus Bus, address uint16, _ bool) uint8 {
	cpu.A ^= bus.ReadByte(address)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) bit(bus Bus, address uint16, _ bool) uint8 {
	value := bus.ReadByte(address)
	cpu.zero = cpu.A&value == 0
	cpu.overflow = value&0x40 != 0
	cpu.negative = value&0x80 != 0
	return 0
}

func aslTransform(cpu *CPU, v uint8) uint8 {
	cpu.carry = v&0x80 != 0
	return v << 1
}

func lsrTransform(cpu *CPU, v uint8) uint8 {
	cpu.carry = v&0x01 != 0
	return v >> 1
}

func rolTransform(cpu *CPU, v uint8) uint8 {
	oldCarry := cpu.carry
	cpu.carry = v&0x80 != 0
	result := v << 1
	if oldCarry {
		result |= 0x01
	}
	return result
}

func rorTransform(cpu *CPU, v uint8) uint8 {
	oldCarry := cpu.carry
	cpu.carry = v&0x01 != 0
	result := v >> 1
	if oldCarry {
		result |= 0x80
	}
	return result
}

func (cpu *CPU) aslAcc(Bus, uint16, bool) uint8 { return cpu.shiftAcc(aslTransform) }
func (cpu *CPU) lsrAcc(Bus, uint16, bool) uint8 { return cpu.shiftAcc(lsrTransform) }
func (cpu *CPU) rolAcc(Bus, uint16, bool) uint8 { return cpu.shiftAcc(rolTransform) }
func (cpu *CPU) rorAcc(Bus, uint16, bool) uint8 { return cpu.shiftAcc(rorTransform) }

func (cpu *CPU) aslMem(bus Bus, address uint16, _ bool) uint8 {
	return cpu.shiftMem(bus, address, aslTransform)
}
func (cpu *CPU) lsrMem(bus Bus, address uint16, _ bool) uint8 {
	return cpu.shiftMem(bus, address, lsrTransform)
}
func (cpu *CPU) rolMem(bus Bus, address uint16, _ bool) uint8 {
	return cpu.shiftMem(bus, address, rolTransform)
}
func (cpu *CPU) rorMem(bus Bus, address uint16, _ bool) uint8 {
	return cpu.shiftMem(bus, address, rorTransform)
}

func (cpu *CPU) shiftAcc(transform func(*CPU, uint8) uint8) uint8 {
	cpu.A = transform(cpu, cpu.A)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) shiftMem(bus Bus, address uint16, transform func(*CPU, uint8) uint8) uint8 {
	value := transform(cpu, bus.ReadByte(address))
	bus.WriteByte(address, value)
	cpu.setZN(value)
	return 0
}

func (cpu *CPU) cmp(bus Bus, address uint16, _ bool) uint8 {
	value := bus.ReadByte(address)
	cpu.carry = cpu.A >= value
	cpu.setZN(cpu.A - value)
	return 0
}

func (cpu *CPU) cpx(bus Bus, address uint16, _ bool) uint8 {
	value := bus.ReadByte(address)
	cpu.carry = cpu.X >= value
	cpu.setZN(cpu.X - value)
	return 0
}

func (cpu *CPU) cpy(bus Bus, address uint16, _ bool) uint8 {
	value := bus.ReadByte(address)
	cpu.carry = cpu.Y >= value
	cpu.setZN(cpu.Y - value)
	return 0
}

func (cpu *CPU) inc(bus Bus, address uint16, _ bool) uint8 {
	value := bus.ReadByte(address) + 1
	bus.WriteByte(address, value)
	cpu.setZN(value)
	return 0
}

func (cpu *CPU) dec(bus Bus, address uint16, _ bool) uint8 {
	value := bus.ReadByte(address) - 1
	bus.WriteByte(address, value)
	cpu.setZN(value)
	return 0
}

func (cpu *CPU) inx(Bus, uint16, bool) uint8 { cpu.X++; cpu.setZN(cpu.X); return 0 }
func (cpu *CPU) dex(Bus, uint16, bool) uint8 { cpu.X--; cpu.setZN(cpu.X); return 0 }
func (cpu *CPU) iny(Bus, uint16, bool) uint8 { cpu.Y++; cpu.setZN(cpu.Y); return 0 }
func (cpu *CPU) dey(Bus, uint16, bool) uint8 { cpu.Y--; cpu.setZN(cpu.Y); return 0 }

func (cpu *CPU) tax(Bus, uint16, bool) uint8 { cpu.X = cpu.A; cpu.setZN(cpu.X); return 0 }
func (cpu *CPU) txa(Bus, uint16, bool) uint8 { cpu.A = cpu.X; cpu.setZN(cpu.A); return 0 }
func (cpu *CPU) tay(Bus, uint16, bool) uint8 { cpu.Y = cpu.A; cpu.setZN(cpu.Y); return 0 }
func (cpu *CPU) tya(Bus, uint16, bool) uint8 { cpu.A = cpu.Y; cpu.setZN(cpu.A); return 0 }
func (cpu *CPU) tsx(Bus, uint16, bool) uint8 { cpu.X = cpu.SP; cpu.setZN(cpu.X); return 0 }
func (cpu *CPU) txs(Bus, uint16, bool) uint8 { cpu.SP = cpu.X; return 0 }

func (cpu *CPU) pha(bus Bus, _ uint16, _ bool) uint8 {
	cpu.push(bus, cpu.A)
	return 0
}

func (cpu *CPU) pla(bus Bus, _ uint16, _ bool) uint8 {
	cpu.A = cpu.pop(bus)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) php(bus Bus, _ uint16, _ bool) uint8 {
	cpu.push(bus, cpu.P()|flagBreak)
	return 0
}

func (cpu *CPU) plp(bus Bus, _ uint16, _ bool) uint8 {
	cpu.SetP(cpu.pop(bus))
	return 0
}

func (cpu *CPU) clc(Bus, uint16, bool) uint8 { cpu.carry = false; return 0 }
func (cpu *CPU) sec(Bus, uint16, bool) uint8 { cpu.carry = true; return 0 }
func (cpu *CPU) cli(Bus, uint16, bool) uint8 { cpu.interrupt = false; return 0 }
func (cpu *CPU) sei(Bus, uint16, bool) uint8 { cpu.interrupt = true; return 0 }
func (cpu *CPU) clv(Bus, uint16, bool) uint8 { cpu.overflow = false; return 0 }
func (cpu *CPU) cld(Bus, uint16, bool) uint8 { cpu.decimal = false; return 0 }
func (cpu *CPU) sed(Bus, uint16, bool) uint8 { cpu.decimal = true; return 0 }
func (cpu *CPU) nop(Bus, uint16, bool) uint8 { return 0 }

func (cpu *CPU) jmp(_ Bus, address uint16, _ bool) uint8 {
	cpu.PC = address
	return 0
}

func (cpu *CPU) jsr(bus Bus, address uint16, _ bool) uint8 {
	cpu.pushWord(bus, cpu.PC-1)
	cpu.PC = address
	return 0
}

func (cpu *CPU) rts(bus Bus, _ uint16, _ bool) uint8 {
	cpu.PC = cpu.popWord(bus) + 1
	return 0
}

func (cpu *CPU) rti(bus Bus, _ uint16, _ bool) uint8 {
	cpu.SetP(cpu.pop(bus))
	cpu.PC = cpu.popWord(bus)
	return 0
}

// brk is the only instruction that always honors a software interrupt,
// regardless of I. Unlike a hardware IRQ/NMI the pushed return address is
// PC+1 (the byte after the BRK opcode, a padding byte real monitors use
// for a break-reason code) and the stacked status has B=1.
func (cpu *CPU) brk(bus Bus, _ uint16, _ bool) uint8 {
	cpu.PC++
	cpu.enterInterrupt(bus, irqVector, true)
	return 0
}

func (cpu *CPU) branch(address uint16, pageCrossed, taken bool) uint8 {
	if !taken {
		return 0
	}
	cpu.PC = address
	if pageCrossed {
		return 2
	}
	return 1
}

func (cpu *CPU) bcc(_ Bus, address uint16, pageCrossed bool) uint8 {
	return cpu.branch(address, pageCrossed, !cpu.carry)
}
func (cpu *CPU) bcs(_ Bus, address uint16, pageCrossed bool) uint8 {
	return cpu.branch(address, pageCrossed, cpu.carry)
}
func (cpu *CPU) bne(_ Bus, address uint16, pageCrossed bool) uint8 {
	return cpu.branch(address, pageCrossed, !cpu.zero)
}
func (cpu *CPU) beq(_ Bus, address uint16, pageCrossed bool) uint8 {
	return cpu.branch(address, pageCrossed, cpu.zero)
}
func (cpu *CPU) bpl(_ Bus, address uint16, pageCrossed bool) uint8 {
	return cpu.branch(address, pageCrossed, !cpu.negative)
}
func (cpu *CPU) bmi(_ Bus, address uint16, pageCrossed bool) uint8 {
	return cpu.branch(address, pageCrossed, cpu.negative)
}
func (cpu *CPU) bvc(_ Bus, address uint16, pageCrossed bool) uint8 {
	return cpu.branch(address, pageCrossed, !cpu.overflow)
}
func (cpu *CPU) bvs(_ Bus, address uint16, pageCrossed bool) uint8 {
	return cpu.branch(address, pageCrossed, cpu.overflow)
}

package cpu6502

// AddressingMode identifies how an opcode's operand address is computed.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

const (
	zeroPageMask = 0x00FF
	pageMask     = 0xFF00
)

// resolveAddress computes the effective address for mode, advancing PC past
// the opcode's operand bytes, and reports whether the effective address
// falls on a different page than the base address used to form it (the
// "page-cross" condition that adds a cycle on indexed reads).
func (cpu *CPU) resolveAddress(bus Bus, mode AddressingMode) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		address := cpu.PC
		cpu.PC++
		return address, false

	case ZeroPage:
		address := uint16(bus.ReadByte(cpu.PC))
		cpu.PC++
		return address, false

	case ZeroPageX:
		base := bus.ReadByte(cpu.PC)
		cpu.PC++
		return uint16(base+cpu.X) & zeroPageMask, false

	case ZeroPageY:
		base := bus.ReadByte(cpu.PC)
		cpu.PC++
		return uint16(base+cpu.Y) & zeroPageMask, false

	case Relative:
		offset := int8(bus.ReadByte(cpu.PC))
		cpu.PC++
		base := cpu.PC
		target := uint16(int32(base) + int32(offset))
		return target, (base & pageMask) != (target & pageMask)

	case Absolute:
		low := uint16(bus.ReadByte(cpu.PC))
		high := uint16(bus.ReadByte(cpu.PC + 1))
		cpu.PC += 2
		return (high << 8) | low, false

	case AbsoluteX:
		low := uint16(bus.ReadByte(cpu.PC))
		high := uint16(bus.ReadByte(cpu.PC + 1))
		cpu.PC += 2
		base := (high << 8) | low
		address := base + uint16(cpu.X)
		return address, (base & pageMask) != (address & pageMask)

	case AbsoluteY:
		low := uint16(bus.ReadByte(cpu.PC))
		high := uint16(bus.ReadByte(cpu.PC + 1))
		cpu.PC += 2
		base := (high << 8) | low
		address := base + uint16(cpu.Y)
		return address, (base & pageMask) != (address & pageMask)

	case Indirect: // JMP only
		lowPtr := uint16(bus.ReadByte(cpu.PC))
		highPtr := uint16(bus.ReadByte(cpu.PC + 1))
		cpu.PC += 2
		ptr := (highPtr << 8) | lowPtr

		var address uint16
		if ptr&zeroPageMask == zeroPageMask {
			// Hardware bug: if the pointer's low byte is 0xFF, the high
			// byte wraps to the start of the same page instead of the
			// next page.
			low := uint16(bus.ReadByte(ptr))
			high := uint16(bus.ReadByte(ptr & pageMask))
			address = (high << 8) | low
		} else {
			low := uint16(bus.ReadByte(ptr))
			high := uint16(bus.ReadByte(ptr + 1))
			address = (high << 8) | low
		}
		return address, false

	case IndexedIndirect:
		base := bus.ReadByte(cpu.PC)
		cpu.PC++
		ptr := (base + cpu.X) & zeroPageMask
		low := uint16(bus.ReadByte(uint16(ptr)))
		high := uint16(bus.ReadByte(uint16(ptr+1) & zeroPageMask))
		return (high << 8) | low, false

	case IndirectIndexed:
		ptr := uint16(bus.ReadByte(cpu.PC))
		cpu.PC++
		low := uint16(bus.ReadByte(ptr))
		high := uint16(bus.ReadByte((ptr + 1) & zeroPageMask))
		base := (high << 8) | low
		address := base + uint16(cpu.Y)
		return address, (base & pageMask) != (address & pageMask)

	default:
		return 0, false
	}
}

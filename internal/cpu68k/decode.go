package cpu68k

// instructionKind enumerates the decoded instruction families. MOVE is
// fully implemented; every other top-nibble opcode class decodes to
// Illegal, which raises the illegal-instruction exception on execute.
type instructionKind int

const (
	instructionMove instructionKind = iota
	instructionIllegal
)

type instruction struct {
	kind   instructionKind
	size   OpSize
	source addressingMode
	dest   addressingMode
}

// executor decodes and executes one instruction against a register file
// and bus, mirroring the reference's InstructionExecutor helper type.
type executor struct {
	regs *registers
	bus  BusInterface
}

func (e *executor) fetchOperand() uint16 {
	operand := e.bus.ReadWord(e.regs.pc)
	e.regs.pc += 2
	return operand
}

// fetchAddressingMode decodes a 3-bit mode field and 3-bit register field
// into a concrete addressingMode, fetching any extension words the mode
// requires. ok is false for the three reserved/illegal encodings under mode
// 0x07 (register 0x05-0x07).
func (e *executor) fetchAddressingMode(mode, register uint8, size OpSize) (addressingMode, bool) {
	mode &= 0x07
	register &= 0x07

	switch mode {
	case 0x00:
		return addressingMode{kind: modeDataDirect, register: register}, true
	case 0x01:
		return addressingMode{kind: modeAddressDirect, register: register}, true
	case 0x02:
		return addressingMode{kind: modeAddressIndirect, register: register}, true
	case 0x03:
		return addressingMode{kind: modeAddressIndirectPostincrement, register: register}, true
	case 0x04:
		return addressingMode{kind: modeAddressIndirectPredecrement, register: register}, true
	case 0x05:
		extension := e.fetchOperand()
		return addressingMode{
			kind:         modeAddressIndirectDisplacement,
			register:     register,
			displacement: int32(int16(extension)),
		}, true
	case 0x06:
		extension := e.fetchOperand()
		index, indexSz := parseIndex(extension)
		return addressingMode{
			kind:         modeAddressIndirectIndexed,
			register:     register,
			index:        index,
			indexSize:    indexSz,
			displacement: int32(int8(extension)),
		}, true
	case 0x07:
		switch register {
		case 0x00:
			extension := e.fetchOperand()
			return addressingMode{kind: modeAbsoluteShort, absolute: uint32(int32(int16(extension)))}, true
		case 0x01:
			hi := e.fetchOperand()
			lo := e.fetchOperand()
			return addressingMode{kind: modeAbsoluteLong, absolute: uint32(hi)<<16 | uint32(lo)}, true
		case 0x02:
			pc := e.regs.pc
			extension := e.fetchOperand()
			return addressingMode{
				kind:         modePCRelativeDisplacement,
				pc:           pc,
				displacement: int32(int16(extension)),
			}, true
		case 0x03:
			pc := e.regs.pc
			extension := e.fetchOperand()
			index, indexSz := parseIndex(extension)
			return addressingMode{
				kind:         modePCRelativeIndexed,
				pc:           pc,
				index:        index,
				indexSize:    indexSz,
				displacement: int32(int8(extension)),
			}, true
		case 0x04:
			first := e.fetchOperand()
			var immediate uint32
			switch size {
			case SizeByte:
				immediate = uint32(uint8(first))
			case SizeWord:
				immediate = uint32(first)
			default:
				second := e.fetchOperand()
				immediate = uint32(first)<<16 | uint32(second)
			}
			return addressingMode{kind: modeImmediate, immediate: immediate}, true
		default:
			return addressingMode{}, false
		}
	default:
		return addressingMode{}, false
	}
}

func (e *executor) fetchAddressingModeFromOpcode(opcode uint16, size OpSize) (addressingMode, bool) {
	mode := uint8((opcode >> 3) & 0x07)
	register := uint8(opcode & 0x07)
	return e.fetchAddressingMode(mode, register, size)
}

func parseIndex(extension uint16) (indexRegister, indexSize) {
	registerNumber := uint8((extension >> 12) & 0x07)
	ir := indexRegister{isAddress: extension&(1<<15) != 0, register: registerNumber}

	size := indexSignExtendedWord
	if extension&(1<<11) != 0 {
		size = indexLongWord
	}
	return ir, size
}

// decodeInstruction fetches and decodes the instruction at the current PC.
func (e *executor) decodeInstruction() instruction {
	opcode := e.fetchOperand()

	switch opcode & 0xF000 {
	case 0x1000, 0x2000, 0x3000:
		size := moveSizeFor(opcode)

		source, ok := e.fetchAddressingModeFromOpcode(opcode, size)
		if !ok {
			return instruction{kind: instructionIllegal}
		}

		destMode := uint8((opcode >> 6) & 0x07)
		destRegister := uint8((opcode >> 9) & 0x07)
		dest, ok := e.fetchAddressingMode(destMode, destRegister, size)
		if !ok {
			return instruction{kind: instructionIllegal}
		}

		if !dest.isWritable() || (dest.isAddressDirect() && size == SizeByte) {
			return instruction{kind: instructionIllegal}
		}

		return instruction{kind: instructionMove, size: size, source: source, dest: dest}
	default:
		return instruction{kind: instructionIllegal}
	}
}

func moveSizeFor(opcode uint16) OpSize {
	switch opcode & 0xF000 {
	case 0x1000:
		return SizeByte
	case 0x3000:
		return SizeWord
	default: // 0x2000
		return SizeLong
	}
}

// executeInstruction dispatches a decoded instruction. Illegal raises the
// illegal-instruction exception rather than panicking, since an illegal
// opcode is reachable host-visible behavior, not a programming error.
func (e *executor) executeInstruction(inst instruction) *exception {
	switch inst.kind {
	case instructionMove:
		e.move(inst.size, inst.source, inst.dest)
		return nil
	default:
		return &exception{vector: vectorIllegalInstruction}
	}
}

// move implements MOVE: the value is copied source to dest and the CCR is
// updated from the moved value (N and Z from the result, V and C always
// cleared, X left unaffected) per the 68000 programmer's reference.
func (e *executor) move(size OpSize, source, dest addressingMode) {
	value := source.readSizedFrom(e.regs, e.bus, size)
	dest.writeSizedTo(e.regs, e.bus, value)

	e.regs.ccr.Negative = value.signBit()
	e.regs.ccr.Zero = value.isZero()
	e.regs.ccr.Overflow = false
	e.regs.ccr.Carry = false
}

// execute decodes and runs one instruction, returning a pending exception
// (if any) for the caller to service.
func (e *executor) execute() *exception {
	inst := e.decodeInstruction()
	return e.executeInstruction(inst)
}

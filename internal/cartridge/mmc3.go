package cartridge

// PPUWriteToggle identifies which of the two bytes of a $2006 PPUADDR
// write is in progress; MMC3's A12 edge detector needs to know when the
// second write completes the 14-bit address.
type PPUWriteToggle int

const (
	PPUWriteToggleFirst PPUWriteToggle = iota
	PPUWriteToggleSecond
)

// a12DeglitchThreshold is the number of consecutive PPU dots A12 must
// have been observed low before a low-to-high transition counts as a
// genuine edge, filtering the brief A12 dips real PPU rendering produces
// mid-scanline that should not clock the IRQ counter.
const a12DeglitchThreshold = 8

// mmc3 implements mapper 4 (MMC3/TxROM): eight swappable bank registers
// (two 2 KiB + four 1 KiB CHR windows, two 8 KiB PRG windows plus two
// fixed PRG windows) selected through a bank-select/bank-data register
// pair, and an A12-edge-triggered scanline IRQ counter.
type mmc3 struct {
	cart      cartridge
	chrType   chrType
	subMapper uint8

	prgBanks8k uint8 // count of 8 KiB PRG ROM banks
	chrBanks1k uint8 // count of 1 KiB CHR banks (ROM or RAM)

	bankSelect uint8
	banks      [8]uint8
	mirroring  NametableMirroring

	irqLatch         uint8
	irqCounter       uint8
	irqReloadPending bool
	irqEnabled       bool
	irqPending       bool

	pendingAddrHigh uint8
	lastA12         bool
	a12LowDots      int
}

func newMmc3(cart cartridge, memType chrType, prgROMSize, chrSize uint32, subMapperNumber uint8) *mmc3 {
	return &mmc3{
		cart:       cart,
		chrType:    memType,
		subMapper:  subMapperNumber,
		prgBanks8k: uint8(prgROMSize / 0x2000),
		chrBanks1k: uint8(chrSize / 0x0400),
		mirroring:  MirrorVertical,
	}
}

func (m *mmc3) Name() string { return "MMC3" }

func (m *mmc3) prgModeB() bool { return m.bankSelect&0x40 != 0 }
func (m *mmc3) chrModeB() bool { return m.bankSelect&0x80 != 0 }

func (m *mmc3) ReadCPU(address uint16) uint8 {
	switch {
	case address >= 0x8000:
		bank := m.prgBankFor(address)
		offset := uint32(bank)*0x2000 + uint32(address&0x1FFF)
		if int(offset) < len(m.cart.prgROM) {
			return m.cart.prgROM[offset]
		}
		return 0
	case address >= 0x6000:
		return m.cart.prgRAM[address-0x6000]
	default:
		return 0
	}
}

func (m *mmc3) prgBankFor(address uint16) uint8 {
	secondToLast := m.prgBanks8k - 2
	last := m.prgBanks8k - 1
	r6 := m.banks[6] % m.prgBanks8k
	r7 := m.banks[7] % m.prgBanks8k

	window := (address - 0x8000) / 0x2000
	if !m.prgModeB() {
		switch window {
		case 0:
			return r6
		case 1:
			return r7
		case 2:
			return secondToLast
		default:
			return last
		}
	}
	switch window {
	case 0:
		return secondToLast
	case 1:
		return r7
	case 2:
		return r6
	default:
		return last
	}
}

func (m *mmc3) WriteCPU(address uint16, value uint8) {
	switch {
	case address < 0x6000:
		return
	case address < 0x8000:
		m.cart.prgRAM[address-0x6000] = value
	case address < 0xA000:
		if address%2 == 0 {
			m.bankSelect = value
		} else {
			m.banks[m.bankSelect&0x07] = value
		}
	case address < 0xC000:
		if address%2 == 0 {
			if value&0x01 != 0 {
				m.mirroring = MirrorHorizontal
			} else {
				m.mirroring = MirrorVertical
			}
		}
		// Odd address is the PRG-RAM protect register; RAM is always
		// enabled here, so there is nothing to latch.
	case address < 0xE000:
		if address%2 == 0 {
			m.irqLatch = value
		} else {
			m.irqReloadPending = true
		}
	default:
		if address%2 == 0 {
			m.irqEnabled = false
			m.irqPending = false
		} else {
			m.irqEnabled = true
		}
	}
}

func (m *mmc3) ReadPPU(address uint16, vram *[2048]uint8) uint8 {
	if address < 0x2000 {
		offset := m.chrOffset(address)
		if m.chrType == chrRAM {
			if int(offset) < len(m.cart.chrRAM) {
				return m.cart.chrRAM[offset]
			}
			return 0
		}
		if int(offset) < len(m.cart.chrROM) {
			return m.cart.chrROM[offset]
		}
		return 0
	}
	if address < 0x3F00 {
		return vram[MirrorVRAMAddress(m.mirroring, address)]
	}
	return 0
}

func (m *mmc3) WritePPU(address uint16, value uint8, vram *[2048]uint8) {
	if address < 0x2000 {
		if m.chrType != chrRAM {
			return
		}
		offset := m.chrOffset(address)
		if int(offset) < len(m.cart.chrRAM) {
			m.cart.chrRAM[offset] = value
		}
		return
	}
	if address < 0x3F00 {
		vram[MirrorVRAMAddress(m.mirroring, address)] = value
	}
}

func (m *mmc3) chrOffset(address uint16) uint32 {
	banks1k := m.chrBanks1k
	if banks1k == 0 {
		banks1k = 8
	}
	r := func(i int) uint32 { return uint32(m.banks[i]) % uint32(banks1k) }

	window := address / 0x0400
	if m.chrModeB() {
		// Halves swapped: the four 1 KiB banks occupy the low half.
		switch window {
		case 0:
			return r(2)*0x0400 + uint32(address&0x03FF)
		case 1:
			return r(3)*0x0400 + uint32(address&0x03FF)
		case 2:
			return r(4)*0x0400 + uint32(address&0x03FF)
		case 3:
			return r(5)*0x0400 + uint32(address&0x03FF)
		case 4, 5:
			return (r(0)&^1)*0x0400 + uint32(address&0x07FF)
		default:
			return (r(1)&^1)*0x0400 + uint32(address&0x07FF)
		}
	}
	switch window {
	case 0, 1:
		return (r(0)&^1)*0x0400 + uint32(address&0x07FF)
	case 2, 3:
		return (r(1)&^1)*0x0400 + uint32(address&0x07FF)
	case 4:
		return r(2)*0x0400 + uint32(address&0x03FF)
	case 5:
		return r(3)*0x0400 + uint32(address&0x03FF)
	case 6:
		return r(4)*0x0400 + uint32(address&0x03FF)
	default:
		return r(5)*0x0400 + uint32(address&0x03FF)
	}
}

// ProcessPPUAddrUpdate is called by the PPU on every CPU write to PPUADDR
// ($2006). The 14-bit PPU address is only complete after the second
// write, so the first write's byte is latched and A12 is evaluated once
// the second arrives.
func (m *mmc3) ProcessPPUAddrUpdate(value uint8, toggle PPUWriteToggle) {
	if toggle == PPUWriteToggleFirst {
		m.pendingAddrHigh = value & 0x3F
		return
	}
	address := uint16(m.pendingAddrHigh)<<8 | uint16(value)
	m.observeA12(address)
}

// ProcessPPUAddrIncrement is called by the PPU every time its internal
// VRAM address auto-increments after a $2007 PPUDATA access (as opposed to
// direct $2006 writes).
func (m *mmc3) ProcessPPUAddrIncrement(newAddr uint16) {
	m.observeA12(newAddr)
}

func (m *mmc3) observeA12(address uint16) {
	bit12 := address&0x1000 != 0
	if bit12 && !m.lastA12 && m.a12LowDots >= a12DeglitchThreshold {
		m.clockIRQCounter()
	}
	if !bit12 {
		m.a12LowDots = 0
	}
	m.lastA12 = bit12
}

func (m *mmc3) clockIRQCounter() {
	if m.irqCounter == 0 || m.irqReloadPending {
		m.irqCounter = m.irqLatch
	} else {
		m.irqCounter--
	}
	if m.irqCounter == 0 && m.irqEnabled {
		m.irqPending = true
	}
	m.irqReloadPending = false
}

// Tick runs once per PPU dot, counting dots A12 has spent low so
// observeA12 can distinguish a genuine edge from rendering glitches.
func (m *mmc3) Tick() {
	if !m.lastA12 {
		m.a12LowDots++
	}
}

func (m *mmc3) TickCPU() {}

func (m *mmc3) InterruptFlag() bool { return m.irqPending }

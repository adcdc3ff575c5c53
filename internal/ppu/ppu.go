// Package ppu models the NES Picture Processing Unit's CPU-visible register
// file and the timing signals other subsystems observe through it: VBlank/NMI
// and the scanline clock mappers with IRQ counters (MMC3) key off of.
// Pixel generation, sprite evaluation, and rendering are outside this
// package's scope; it exists to give the bus and the cartridge mapper the
// touch-points real hardware exposes at $2000-$2007 and $4014.
package ppu

import "retrocore/internal/cartridge"

// Register offsets within the $2000-$2007 CPU-visible window (mirrored
// every 8 bytes through $3FFF).
const (
	regPPUCTRL   = 0
	regPPUMASK   = 1
	regPPUSTATUS = 2
	regOAMADDR   = 3
	regOAMDATA   = 4
	regPPUSCROLL = 5
	regPPUADDR   = 6
	regPPUDATA   = 7
)

const (
	cyclesPerScanline = 341
	vblankScanline    = 241
	preRenderScanline = 261
)

// PPU is the register file and scanline/dot clock. Callers supply a
// cartridge.Mapper, which owns CHR memory and sees every nametable/pattern
// table access; PPU itself only owns OAM and the 2 KiB of on-board VRAM the
// mapper mirrors addresses into.
type PPU struct {
	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8

	vramAddr    uint16
	tempAddr    uint16
	fineX       uint8
	writeToggle bool
	readBuffer  uint8

	oam  [256]uint8
	vram [2048]uint8

	mapper cartridge.Mapper

	scanline int
	dot      int
	oddFrame bool
	frame    uint64

	nmiCallback           func()
	frameCompleteCallback func()
}

// New creates a PPU with no mapper attached; SetMapper must be called before
// Step or any register access touches cartridge-owned memory.
func New() *PPU {
	return &PPU{scanline: preRenderScanline}
}

// SetMapper attaches the cartridge whose CHR/nametable memory backs PPU
// address space. Called once after ROM load, and again if the cartridge
// changes.
func (p *PPU) SetMapper(mapper cartridge.Mapper) { p.mapper = mapper }

// SetNMICallback registers the function Step calls when VBlank begins
// while NMI generation is enabled in PPUCTRL.
func (p *PPU) SetNMICallback(cb func()) { p.nmiCallback = cb }

// SetFrameCompleteCallback registers the function Step calls once per
// completed frame.
func (p *PPU) SetFrameCompleteCallback(cb func()) { p.frameCompleteCallback = cb }

// Reset returns the PPU to its power-on register state.
func (p *PPU) Reset() {
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0
	p.vramAddr = 0
	p.tempAddr = 0
	p.fineX = 0
	p.writeToggle = false
	p.readBuffer = 0
	p.scanline = preRenderScanline
	p.dot = 0
	p.oddFrame = false
	p.frame = 0
}

// ReadRegister services a CPU read of $2000-$2007 (address already folded
// into 0-7 by the bus's mirroring).
func (p *PPU) ReadRegister(register uint16) uint8 {
	switch register % 8 {
	case regPPUSTATUS:
		value := p.status
		p.status &^= 0x80     // reading PPUSTATUS clears VBlank...
		p.writeToggle = false // ...and resets the PPUSCROLL/PPUADDR write latch
		return value
	case regOAMDATA:
		return p.oam[p.oamAddr]
	case regPPUDATA:
		return p.readPPUData()
	default:
		return 0
	}
}

func (p *PPU) readPPUData() uint8 {
	address := p.vramAddr & 0x3FFF
	var value uint8
	if address >= 0x3F00 {
		value = p.readMapper(address)
		p.readBuffer = p.readMapper(address - 0x1000)
	} else {
		value = p.readBuffer
		p.readBuffer = p.readMapper(address)
	}
	p.advanceVRAMAddress()
	return value
}

func (p *PPU) readMapper(address uint16) uint8 {
	if p.mapper == nil {
		return 0
	}
	return p.mapper.ReadPPU(address, &p.vram)
}

// WriteRegister services a CPU write to $2000-$2007.
func (p *PPU) WriteRegister(register uint16, value uint8) {
	switch register % 8 {
	case regPPUCTRL:
		p.ctrl = value
		p.tempAddr = (p.tempAddr &^ 0x0C00) | (uint16(value&0x03) << 10)
	case regPPUMASK:
		p.mask = value
	case regOAMADDR:
		p.oamAddr = value
	case regOAMDATA:
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case regPPUSCROLL:
		if !p.writeToggle {
			p.fineX = value & 0x07
			p.tempAddr = (p.tempAddr &^ 0x001F) | uint16(value>>3)
		} else {
			p.tempAddr = (p.tempAddr &^ 0x73E0) | (uint16(value&0x07) << 12) | (uint16(value&0xF8) << 2)
		}
		p.writeToggle = !p.writeToggle
	case regPPUADDR:
		if mmc3, ok := p.mapper.(interface {
			ProcessPPUAddrUpdate(uint8, cartridge.PPUWriteToggle)
		}); ok {
			toggle := cartridge.PPUWriteToggleFirst
			if p.writeToggle {
				toggle = cartridge.PPUWriteToggleSecond
			}
			mmc3.ProcessPPUAddrUpdate(value, toggle)
		}
		if !p.writeToggle {
			p.tempAddr = (p.tempAddr &^ 0x7F00) | (uint16(value&0x3F) << 8)
		} else {
			p.tempAddr = (p.tempAddr &^ 0x00FF) | uint16(value)
			p.vramAddr = p.tempAddr
		}
		p.writeToggle = !p.writeToggle
	case regPPUDATA:
		address := p.vramAddr & 0x3FFF
		if address < 0x3F00 && p.mapper != nil {
			p.mapper.WritePPU(address, value, &p.vram)
		}
		p.advanceVRAMAddress()
	}
}

func (p *PPU) advanceVRAMAddress() {
	if p.ctrl&0x04 != 0 {
		p.vramAddr += 32
	} else {
		p.vramAddr++
	}
	if mmc3, ok := p.mapper.(interface{ ProcessPPUAddrIncrement(uint16) }); ok {
		mmc3.ProcessPPUAddrIncrement(p.vramAddr & 0x3FFF)
	}
}

// WriteOAM writes a single byte into OAM directly, bypassing OAMADDR/OAMDATA;
// used by the bus's $4014 OAM DMA handler.
func (p *PPU) WriteOAM(index uint8, value uint8) { p.oam[index] = value }

func (p *PPU) nmiEnabled() bool { return p.ctrl&0x80 != 0 }

// Step advances the scanline/dot clock by one PPU cycle, raising VBlank/NMI
// at the start of scanline 241 and clearing it at the pre-render line. It
// also ticks the attached mapper once per dot so MMC3's A12 de-glitch filter
// sees real timing.
func (p *PPU) Step() {
	if p.mapper != nil {
		p.mapper.Tick()
	}

	if p.scanline == vblankScanline && p.dot == 1 {
		p.status |= 0x80
		if p.nmiEnabled() && p.nmiCallback != nil {
			p.nmiCallback()
		}
	}
	if p.scanline == preRenderScanline && p.dot == 1 {
		p.status &^= 0x80
	}

	p.dot++
	if p.dot >= cyclesPerScanline {
		p.dot = 0
		p.scanline++
		if p.scanline > preRenderScanline {
			p.scanline = 0
			p.oddFrame = !p.oddFrame
			p.frame++
			if p.frameCompleteCallback != nil {
				p.frameCompleteCallback()
			}
		}
	}
}

// FrameCount returns the number of frames completed since Reset.
func (p *PPU) FrameCount() uint64 { return p.frame }

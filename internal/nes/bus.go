// Package nes composes the 6502 execution engine, the cartridge mapper
// subsystem, and the PPU/APU/controller bus touch-points into a runnable
// NES system bus, cycle-stepped the way a real console's components share
// one clock domain.
package nes

import (
	"fmt"

	"retrocore/internal/apu"
	"retrocore/internal/cartridge"
	"retrocore/internal/cpu6502"
	"retrocore/internal/input"
	"retrocore/internal/ppu"
)

// Bus wires 2 KiB of system RAM, a cartridge.Mapper, the PPU/APU register
// stubs, and two controller ports behind the address map a 6502 program
// sees: $0000-$1FFF mirrored RAM, $2000-$3FFF mirrored PPU registers,
// $4000-$4017 APU/controller registers (with $4014 as OAM DMA), and
// $4020-$FFFF routed to the cartridge.
type Bus struct {
	CPU    *cpu6502.CPU
	PPU    *ppu.PPU
	APU    *apu.APU
	Input  *input.InputState
	Mapper cartridge.Mapper

	ram [2048]uint8

	nmiPending   bool
	cpuCycles    uint64
	dmaRemaining uint64
}

// New creates a Bus with no cartridge loaded; LoadCartridge must be called
// before Step to give the CPU a reset vector to fetch.
func New() *Bus {
	b := &Bus{
		PPU:   ppu.New(),
		APU:   apu.New(),
		Input: input.NewInputState(),
	}
	b.PPU.SetNMICallback(b.triggerNMI)
	b.CPU = cpu6502.New()
	return b
}

// LoadCartridge attaches a mapper (as returned by cartridge.Load) to the
// bus and resets the CPU so it fetches the cartridge's reset vector.
func (b *Bus) LoadCartridge(mapper cartridge.Mapper) {
	b.Mapper = mapper
	b.PPU.SetMapper(mapper)
	b.CPU.Reset(b)
	b.cpuCycles = 0
}

func (b *Bus) triggerNMI() { b.nmiPending = true }

// ReadByte implements cpu6502.Bus.
func (b *Bus) ReadByte(address uint16) uint8 {
	switch {
	case address < 0x2000:
		return b.ram[address&0x07FF]
	case address < 0x4000:
		return b.PPU.ReadRegister(address & 0x0007)
	case address == 0x4015:
		return b.APU.ReadStatus()
	case address == 0x4016, address == 0x4017:
		return b.Input.Read(address)
	case address < 0x4018:
		return 0 // write-only APU registers read back as open bus
	case address < 0x4020:
		return 0 // APU/IO test-mode range, not implemented on retail hardware
	default:
		if b.Mapper != nil {
			return b.Mapper.ReadCPU(address)
		}
		return 0
	}
}

// WriteByte implements cpu6502.Bus.
func (b *Bus) WriteByte(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		b.ram[address&0x07FF] = value
	case address < 0x4000:
		b.PPU.WriteRegister(address&0x0007, value)
	case address == 0x4014:
		b.performOAMDMA(value)
	case address == 0x4016:
		b.Input.Write(address, value)
	case address < 0x4018:
		b.APU.WriteRegister(address, value)
	case address < 0x4020:
		// APU/IO test-mode range, not implemented on retail hardware.
	default:
		if b.Mapper != nil {
			b.Mapper.WriteCPU(address, value)
		}
	}
}

// performOAMDMA copies 256 bytes starting at sourcePage*0x100 into OAM,
// suspending the CPU for 513 or 514 cycles as real hardware does.
func (b *Bus) performOAMDMA(sourcePage uint8) {
	base := uint16(sourcePage) << 8
	for i := 0; i < 256; i++ {
		b.PPU.WriteOAM(uint8(i), b.ReadByte(base+uint16(i)))
	}
	b.dmaRemaining = 513
	if b.cpuCycles%2 == 1 {
		b.dmaRemaining = 514
	}
}

// NMI implements cpu6502.Bus: the PPU asserts this for one Step call per
// VBlank entry.
func (b *Bus) NMI() bool { return b.nmiPending }

// AcknowledgeNMI implements cpu6502.Bus.
func (b *Bus) AcknowledgeNMI() { b.nmiPending = false }

// IRQ implements cpu6502.Bus: routed from the APU's frame/DMC interrupts
// and the cartridge mapper's scanline IRQ (MMC3).
func (b *Bus) IRQ() bool {
	if b.APU.IRQ() {
		return true
	}
	return b.Mapper != nil && b.Mapper.InterruptFlag()
}

// Step executes one CPU instruction (or one DMA-suspended cycle) and
// advances the PPU three dots and the APU one cycle per CPU cycle elapsed,
// matching the NES's fixed 3:1 PPU:CPU clock ratio.
func (b *Bus) Step() uint64 {
	var cycles uint64
	if b.dmaRemaining > 0 {
		cycles = 1
		b.dmaRemaining--
	} else {
		cycles = uint64(b.CPU.Step(b))
	}

	for i := uint64(0); i < cycles*3; i++ {
		b.PPU.Step()
	}
	for i := uint64(0); i < cycles; i++ {
		b.APU.Step()
	}
	if b.Mapper != nil {
		for i := uint64(0); i < cycles; i++ {
			b.Mapper.TickCPU()
		}
	}

	b.cpuCycles += cycles
	return cycles
}

// RunCycles steps the bus until at least the given number of CPU cycles
// have elapsed since this call began.
func (b *Bus) RunCycles(cycles uint64) {
	target := b.cpuCycles + cycles
	for b.cpuCycles < target {
		b.Step()
	}
}

// CycleCount returns the total number of CPU cycles executed since the
// last cartridge load.
func (b *Bus) CycleCount() uint64 { return b.cpuCycles }

// String renders a short register snapshot, used by cmd/retrocore's
// end-of-run log line.
func (b *Bus) String() string {
	return fmt.Sprintf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%02X cyc=%d",
		b.CPU.PC, b.CPU.A, b.CPU.X, b.CPU.Y, b.CPU.SP, b.CPU.P(), b.cpuCycles)
}

package ppu

import "testing"

type fakeMapper struct {
	chr [0x2000]uint8
}

func (m *fakeMapper) Name() string          { return "fake" }
func (m *fakeMapper) ReadCPU(uint16) uint8  { return 0 }
func (m *fakeMapper) WriteCPU(uint16, uint8) {}
func (m *fakeMapper) Tick()                 {}
func (m *fakeMapper) TickCPU()              {}
func (m *fakeMapper) InterruptFlag() bool   { return false }

func (m *fakeMapper) ReadPPU(address uint16, vram *[2048]uint8) uint8 {
	if address < 0x2000 {
		return m.chr[address]
	}
	return vram[address&0x07FF]
}

func (m *fakeMapper) WritePPU(address uint16, value uint8, vram *[2048]uint8) {
	if address < 0x2000 {
		m.chr[address] = value
		return
	}
	vram[address&0x07FF] = value
}

func TestPPUCTRLWriteUpdatesNametableBitsOfTempAddress(t *testing.T) {
	p := New()
	p.WriteRegister(0x2000, 0x03)
	if p.tempAddr&0x0C00 != 0x0C00 {
		t.Fatalf("expected nametable select bits set, got 0x%04X", p.tempAddr)
	}
}

func TestPPUSTATUSReadClearsVBlankAndWriteLatch(t *testing.T) {
	p := New()
	p.status = 0x80
	p.writeToggle = true

	value := p.ReadRegister(0x2002)
	if value&0x80 == 0 {
		t.Fatal("expected VBlank bit set in the read value")
	}
	if p.status&0x80 != 0 {
		t.Fatal("reading PPUSTATUS should clear the VBlank flag")
	}
	if p.writeToggle {
		t.Fatal("reading PPUSTATUS should reset the address write latch")
	}
}

func TestStepRaisesVBlankAndFiresNMIAtScanline241(t *testing.T) {
	p := New()
	p.SetMapper(&fakeMapper{})
	p.ctrl = 0x80 // NMI enabled
	fired := false
	p.SetNMICallback(func() { fired = true })

	p.scanline = vblankScanline
	p.dot = 1 // Step processes the dot the clock currently points at
	p.Step()

	if p.status&0x80 == 0 {
		t.Fatal("expected VBlank flag set at scanline 241 dot 1")
	}
	if !fired {
		t.Fatal("expected NMI callback invoked when NMI generation is enabled")
	}
}

func TestStepClearsVBlankAtPreRenderLine(t *testing.T) {
	p := New()
	p.SetMapper(&fakeMapper{})
	p.status = 0x80
	p.scanline = preRenderScanline
	p.dot = 1 // Step processes the dot the clock currently points at

	p.Step()

	if p.status&0x80 != 0 {
		t.Fatal("expected VBlank flag cleared at the pre-render line")
	}
}

func TestPPUDATAReadUsesBufferedValueBelowPaletteSpace(t *testing.T) {
	p := New()
	mapper := &fakeMapper{}
	mapper.chr[0x0010] = 0x42
	p.SetMapper(mapper)
	p.vramAddr = 0x0010

	first := p.ReadRegister(0x2007)
	if first != 0 {
		t.Fatalf("first read should return the stale buffer (0), got 0x%02X", first)
	}
	second := p.ReadRegister(0x2007)
	if second != 0x42 {
		t.Fatalf("second read should return the buffered CHR byte, got 0x%02X", second)
	}
}

func TestPPUADDRWriteSequenceSetsVRAMAddress(t *testing.T) {
	p := New()
	p.SetMapper(&fakeMapper{})
	p.WriteRegister(0x2006, 0x21)
	p.WriteRegister(0x2006, 0x08)

	if p.vramAddr != 0x2108 {
		t.Fatalf("expected vramAddr 0x2108, got 0x%04X", p.vramAddr)
	}
}

func TestPPUCTRLIncrementModeAdvancesAddressBy32(t *testing.T) {
	p := New()
	p.SetMapper(&fakeMapper{})
	p.WriteRegister(0x2000, 0x04)
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)

	p.ReadRegister(0x2007)

	if p.vramAddr != 0x2020 {
		t.Fatalf("expected vramAddr advanced by 32, got 0x%04X", p.vramAddr)
	}
}

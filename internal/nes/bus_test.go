package nes

import (
	"os"
	"path/filepath"
	"testing"

	"retrocore/internal/cartridge"
)

// buildNromImage assembles a minimal iNES image with a reset vector that
// jumps straight into an infinite NOP loop, so Step can run indefinitely
// without crashing on an undefined opcode.
func buildNromImage(t *testing.T) string {
	t.Helper()
	header := []uint8{0x4E, 0x45, 0x53, 0x1A, 0x01, 0x01, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]uint8, 16*1024)
	prg[0x3FFC] = 0x00 // reset vector low -> $8000
	prg[0x3FFD] = 0x80 // reset vector high
	prg[0x0000] = 0xEA // NOP
	prg[0x0001] = 0x4C // JMP $8000
	prg[0x0002] = 0x00
	prg[0x0003] = 0x80
	chr := make([]uint8, 8*1024)

	path := filepath.Join(t.TempDir(), "test.nes")
	data := append(append(append([]uint8{}, header...), prg...), chr...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCartridgeResetsCPUToResetVector(t *testing.T) {
	path := buildNromImage(t)
	mapper, err := cartridge.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	b := New()
	b.LoadCartridge(mapper)

	if b.CPU.PC != 0x8000 {
		t.Fatalf("expected PC at reset vector 0x8000, got 0x%04X", b.CPU.PC)
	}
}

func TestStepRunsNOPsAndAdvancesCycleCount(t *testing.T) {
	path := buildNromImage(t)
	mapper, err := cartridge.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	b := New()
	b.LoadCartridge(mapper)

	for i := 0; i < 100; i++ {
		b.Step()
	}

	if b.CycleCount() == 0 {
		t.Fatal("expected CPU cycles to have elapsed")
	}
}

func TestRAMMirroringAcrossFourBanks(t *testing.T) {
	b := New()
	b.WriteByte(0x0010, 0x42)

	for _, mirror := range []uint16{0x0010, 0x0810, 0x1010, 0x1810} {
		if got := b.ReadByte(mirror); got != 0x42 {
			t.Errorf("mirror 0x%04X: expected 0x42, got 0x%02X", mirror, got)
		}
	}
}

func TestPPURegisterMirroringEveryEightBytes(t *testing.T) {
	b := New()
	b.WriteByte(0x2000, 0x80) // PPUCTRL: enable NMI so VBlank entry shows up as b.NMI()

	// Reading PPUSTATUS clears VBlank, so each read waits for a fresh VBlank.
	stepPPUToVBlank := func() {
		b.AcknowledgeNMI()
		for !b.NMI() {
			b.PPU.Step()
		}
	}

	stepPPUToVBlank()
	if got := b.ReadByte(0x2002); got&0x80 == 0 {
		t.Fatalf("expected VBlank observable through mirrored PPUSTATUS, got 0x%02X", got)
	}
	stepPPUToVBlank()
	if got := b.ReadByte(0x200A); got&0x80 == 0 {
		t.Fatalf("expected $200A to mirror $2002, got 0x%02X", got)
	}
}

func TestOAMDMACopiesPageIntoPPU(t *testing.T) {
	b := New()
	for i := 0; i < 256; i++ {
		b.ram[i] = uint8(i)
	}

	b.WriteByte(0x4014, 0x00)

	if b.dmaRemaining != 513 && b.dmaRemaining != 514 {
		t.Fatalf("expected DMA to suspend the CPU for 513/514 cycles, got %d", b.dmaRemaining)
	}
}

func TestControllerStrobeReachesBothPorts(t *testing.T) {
	b := New()
	b.Input.Controller1.SetButton(1, true) // ButtonA
	b.Input.Controller2.SetButton(1, true) // ButtonA

	b.WriteByte(0x4016, 0x01)
	b.WriteByte(0x4016, 0x00)

	if got := b.ReadByte(0x4016); got != 1 {
		t.Fatalf("expected controller 1's first bit to report A pressed, got %d", got)
	}
	if got := b.ReadByte(0x4017); got&0x01 != 1 {
		t.Fatalf("expected controller 2's first bit to report A pressed, got %d", got)
	}
}

package cartridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestROM assembles a minimal iNES file and returns its path.
func writeTestROM(t *testing.T, header []uint8, prgSize, chrSize int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.nes")
	data := make([]uint8, 0, len(header)+prgSize+chrSize)
	data = append(data, header...)
	data = append(data, make([]uint8, prgSize)...)
	data = append(data, make([]uint8, chrSize)...)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadINesMapperZero16KiBPRGMirrors(t *testing.T) {
	header := []uint8{0x4E, 0x45, 0x53, 0x1A, 0x01, 0x01, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	path := writeTestROM(t, header, 16*1024, 8*1024)

	mapper, err := Load(path)
	require.NoError(t, err)

	nromMapper, ok := mapper.(*nrom)
	require.True(t, ok)
	assert.Equal(t, "NROM", nromMapper.Name())
	assert.Len(t, nromMapper.cart.prgROM, 16384)
	assert.Len(t, nromMapper.cart.chrROM, 8192)
	assert.Len(t, nromMapper.cart.prgRAM, 8192)
	assert.Equal(t, MirrorHorizontal, nromMapper.mirroring)

	assert.Equal(t, mapper.ReadCPU(0x8000), mapper.ReadCPU(0xC000))
}

func TestLoadRejectsBadMagic(t *testing.T) {
	path := writeTestROM(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 0, 0)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestLoadUnsupportedMapperNumber(t *testing.T) {
	header := []uint8{0x4E, 0x45, 0x53, 0x1A, 0x01, 0x01, 0xF0, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	path := writeTestROM(t, header, 16*1024, 8*1024)

	_, err := Load(path)
	require.Error(t, err)
	var unsupported *UnsupportedMapperError
	assert.ErrorAs(t, err, &unsupported)
}

func TestLoadNes2MultiplePrgRamTypesRejected(t *testing.T) {
	header := []uint8{0x4E, 0x45, 0x53, 0x1A, 0x01, 0x01, 0x00, 0x08, 0, 0, 0x11, 0, 0, 0, 0, 0}
	path := writeTestROM(t, header, 16*1024, 8*1024)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMultiplePrgRamTypes)
}

func TestMirrorVRAMAddressHorizontal(t *testing.T) {
	assert.Equal(t, uint16(0x000), MirrorVRAMAddress(MirrorHorizontal, 0x2000))
	assert.Equal(t, uint16(0x000), MirrorVRAMAddress(MirrorHorizontal, 0x2400))
	assert.Equal(t, uint16(0x400), MirrorVRAMAddress(MirrorHorizontal, 0x2800))
	assert.Equal(t, uint16(0x400), MirrorVRAMAddress(MirrorHorizontal, 0x2C00))
}

func TestMirrorVRAMAddressVertical(t *testing.T) {
	assert.Equal(t, uint16(0x000), MirrorVRAMAddress(MirrorVertical, 0x2000))
	assert.Equal(t, uint16(0x400), MirrorVRAMAddress(MirrorVertical, 0x2400))
	assert.Equal(t, uint16(0x000), MirrorVRAMAddress(MirrorVertical, 0x2800))
	assert.Equal(t, uint16(0x400), MirrorVRAMAddress(MirrorVertical, 0x2C00))
}

func TestMMC1FiveWritesCommitToRegisterChosenByFifthAddress(t *testing.T) {
	cart := cartridge{prgROM: make([]uint8, 0x8000)}
	m := newMmc1(cart, chrROM)

	// Shift in the value 0x0F, one bit per write, LSB first, with the
	// fifth write landing at an address in the 0xA000-0xBFFF window
	// (CHR bank 0 register).
	bits := []uint8{1, 1, 1, 1, 0} // LSB-first for 0x0F followed by a 0 bit -> committed value 0x0F
	for i, bit := range bits {
		addr := uint16(0x8000)
		if i == len(bits)-1 {
			addr = 0xA000
		}
		m.WriteCPU(addr, bit)
		m.TickCPU()
	}

	assert.Equal(t, uint8(0x0F), m.chrBank0)
}

func TestMMC1RejectsConsecutiveWriteBeforeTickCPU(t *testing.T) {
	cart := cartridge{prgROM: make([]uint8, 0x8000)}
	m := newMmc1(cart, chrROM)

	m.WriteCPU(0x8000, 1)
	m.WriteCPU(0x8000, 1) // same cycle, must be ignored
	m.TickCPU()
	m.WriteCPU(0x8000, 1)
	m.TickCPU()
	m.WriteCPU(0x8000, 1)
	m.TickCPU()
	m.WriteCPU(0x8000, 1)
	m.TickCPU()
	m.WriteCPU(0x8000, 0)
	m.TickCPU()

	// Only 5 writes should have been accepted despite 6 calls.
	assert.Equal(t, uint8(0x0F), m.control&0x0F)
}

func TestMMC1ResetWriteForcesPRGMode3(t *testing.T) {
	cart := cartridge{prgROM: make([]uint8, 0x8000)}
	m := newMmc1(cart, chrROM)
	m.control = 0

	m.WriteCPU(0x8000, 0x80)

	assert.Equal(t, uint8(0), m.shiftCount)
	assert.Equal(t, uint8(3), m.prgMode())
}

func raiseMMC3A12Edge(m *mmc3) {
	m.ProcessPPUAddrIncrement(0x0000)
	for i := 0; i < a12DeglitchThreshold; i++ {
		m.Tick()
	}
	m.ProcessPPUAddrIncrement(0x1000)
}

func TestMMC3ScanlineIRQFiresAfterLatchCountTransitions(t *testing.T) {
	cart := cartridge{prgROM: make([]uint8, 0x4000)}
	m := newMmc3(cart, chrROM, 0x4000, 0x2000, 0)

	m.WriteCPU(0xC000, 5) // latch = 5
	m.WriteCPU(0xE001, 0) // enable IRQ

	for i := 0; i < 6; i++ {
		raiseMMC3A12Edge(m)
	}

	assert.True(t, m.InterruptFlag())

	m.WriteCPU(0xE000, 0) // IRQ ack/disable
	assert.False(t, m.InterruptFlag())
}

func TestMMC3PRGBankModeSwapsFixedWindow(t *testing.T) {
	cart := cartridge{prgROM: make([]uint8, 0x2000*6)}
	m := newMmc3(cart, chrROM, 0x2000*6, 0x2000, 0)

	m.WriteCPU(0x8000, 0x06) // select R6
	m.WriteCPU(0x8001, 1)    // R6 = bank 1
	m.WriteCPU(0x8000, 0x07) // select R7
	m.WriteCPU(0x8001, 2)    // R7 = bank 2

	secondToLast := m.prgBanks8k - 2
	last := m.prgBanks8k - 1
	assert.Equal(t, uint8(1), m.prgBankFor(0x8000))
	assert.Equal(t, uint8(2), m.prgBankFor(0xA000))
	assert.Equal(t, secondToLast, m.prgBankFor(0xC000))
	assert.Equal(t, last, m.prgBankFor(0xE000))

	m.WriteCPU(0x8000, 0x40) // set PRG mode bit: 0x8000 and 0xC000 swap roles
	assert.Equal(t, secondToLast, m.prgBankFor(0x8000))
	assert.Equal(t, uint8(1), m.prgBankFor(0xC000))
}

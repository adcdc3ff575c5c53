// Command retrocore-debug is an interactive terminal register/memory
// inspector for the 6502 execution engine: step one instruction at a time
// and watch PC/A/X/Y/SP/flags and a page of memory change.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"retrocore/internal/cartridge"
	"retrocore/internal/nes"
)

type model struct {
	bus    *nes.Bus
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.bus.CPU.PC
			m.bus.Step()
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		address := start + i
		value := m.bus.ReadByte(address)
		if address == m.bus.CPU.PC {
			s += fmt.Sprintf("[%02x] ", value)
		} else {
			s += fmt.Sprintf(" %02x  ", value)
		}
	}
	return s
}

func (m model) pageTable() string {
	pageStart := m.bus.CPU.PC &^ 0x000F
	lines := []string{"addr | " + strings.TrimSpace(strings.Repeat(" x0  x1  x2  x3  x4  x5  x6  x7  x8  x9  xA  xB  xC  xD  xE  xF", 1))}
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(uint16(int(pageStart)+i*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	flags := m.bus.CPU.P()
	labels := "NV_BDIZC"
	var bits strings.Builder
	for i := 0; i < 8; i++ {
		if flags&(0x80>>i) != 0 {
			bits.WriteByte(labels[i])
		} else {
			bits.WriteByte('.')
		}
	}
	return fmt.Sprintf(`
PC: %04x (prev %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
cyc: %d
%s
`, m.bus.CPU.PC, m.prevPC, m.bus.CPU.A, m.bus.CPU.X, m.bus.CPU.Y, m.bus.CPU.SP, m.bus.CycleCount(), bits.String())
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		"space/j: step one instruction   q: quit",
		"",
		spew.Sdump(m.bus.CPU),
	)
}

func main() {
	romPath := flag.String("rom", "", "path to an iNES/NES 2.0 ROM image")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("retrocore-debug: -rom is required")
	}

	mapper, err := cartridge.Load(*romPath)
	if err != nil {
		log.Fatalf("retrocore-debug: failed to load cartridge: %v", err)
	}

	bus := nes.New()
	bus.LoadCartridge(mapper)

	if _, err := tea.NewProgram(model{bus: bus}).Run(); err != nil {
		log.Fatalf("retrocore-debug: %v", err)
	}
}

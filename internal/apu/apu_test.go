package apu

import "testing"

func TestWriteRegisterLatchesChannelBytes(t *testing.T) {
	a := New()
	a.WriteRegister(0x4000, 0xBF)
	if a.registers[0] != 0xBF {
		t.Fatalf("expected $4000 latched, got 0x%02X", a.registers[0])
	}
}

func TestFrameCounterModeSelectedByHighBit(t *testing.T) {
	a := New()
	a.WriteRegister(0x4017, 0x80)
	if !a.frameMode {
		t.Fatal("bit 7 of $4017 should select the 5-step sequence")
	}
	a.WriteRegister(0x4017, 0x00)
	if a.frameMode {
		t.Fatal("clearing bit 7 should select the 4-step sequence")
	}
}

func TestFrameIRQDisableClearsPendingFlag(t *testing.T) {
	a := New()
	a.WriteRegister(0x4017, 0x00) // enable frame IRQ, 4-step mode
	for i := 0; i < 29830; i++ {
		a.Step()
	}
	if !a.IRQ() {
		t.Fatal("expected frame IRQ pending after one 4-step sequence")
	}

	a.WriteRegister(0x4017, 0x40) // disable frame IRQ
	if a.IRQ() {
		t.Fatal("disabling the frame IRQ should clear the pending flag")
	}
}

func TestReadStatusClearsFrameIRQFlag(t *testing.T) {
	a := New()
	a.frameIRQFlag = true

	status := a.ReadStatus()
	if status&0x40 == 0 {
		t.Fatal("expected bit 6 set while frame IRQ was pending")
	}
	if a.frameIRQFlag {
		t.Fatal("reading $4015 should clear the frame IRQ flag")
	}
}

func TestResetClearsRegistersAndInterrupts(t *testing.T) {
	a := New()
	a.WriteRegister(0x4000, 0xFF)
	a.dmcIRQFlag = true

	a.Reset()

	if a.registers[0] != 0 {
		t.Fatal("expected registers cleared after reset")
	}
	if a.IRQ() {
		t.Fatal("expected no pending interrupts after reset")
	}
}

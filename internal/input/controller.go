// Package input implements NES standard controller reads and writes at
// $4016/$4017: the strobe latch and 8-bit serial shift register real
// controller hardware exposes to the bus, nothing more.
package input

// Button represents NES controller buttons.
type Button uint8

const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller is a single NES controller's strobe latch and shift register.
type Controller struct {
	buttons uint8

	shiftRegister uint8
	strobe        bool
}

// New creates a Controller with no buttons pressed.
func New() *Controller {
	return &Controller{}
}

// SetButton sets or clears a single button's pressed state.
func (c *Controller) SetButton(button Button, pressed bool) {
	if pressed {
		c.buttons |= uint8(button)
	} else {
		c.buttons &^= uint8(button)
	}
}

// SetButtons sets all eight button states at once, in controller order
// (A, B, Select, Start, Up, Down, Left, Right).
func (c *Controller) SetButtons(buttons [8]bool) {
	c.buttons = 0
	order := [8]Button{ButtonA, ButtonB, ButtonSelect, ButtonStart, ButtonUp, ButtonDown, ButtonLeft, ButtonRight}
	for i, pressed := range buttons {
		if pressed {
			c.buttons |= uint8(order[i])
		}
	}
}

// IsPressed reports whether the given button is currently held.
func (c *Controller) IsPressed(button Button) bool {
	return c.buttons&uint8(button) != 0
}

// Write handles a write to the controller's strobe register. While strobe
// is high, the shift register continuously reloads from the live button
// state; the falling edge latches it for the read sequence that follows.
func (c *Controller) Write(value uint8) {
	c.strobe = value&0x01 != 0
	if c.strobe {
		c.shiftRegister = c.buttons
	}
}

// Read shifts the next button bit out of bit 0, least significant first
// (A, B, Select, Start, Up, Down, Left, Right). Once all eight bits have
// been read, further reads return 1, matching open-bus behavior on real
// hardware. While strobe is held high, every read returns the A button's
// current state without advancing the shift register.
func (c *Controller) Read() uint8 {
	if c.strobe {
		return c.buttons & 0x01
	}
	result := c.shiftRegister & 0x01
	c.shiftRegister = c.shiftRegister>>1 | 0x80
	return result
}

// Reset clears button state and the strobe latch.
func (c *Controller) Reset() {
	c.buttons = 0
	c.shiftRegister = 0
	c.strobe = false
}

// InputState owns both controller ports.
type InputState struct {
	Controller1 *Controller
	Controller2 *Controller
}

// NewInputState creates an InputState with two fresh controllers.
func NewInputState() *InputState {
	return &InputState{Controller1: New(), Controller2: New()}
}

// Reset resets both controllers.
func (is *InputState) Reset() {
	is.Controller1.Reset()
	is.Controller2.Reset()
}

// SetButtons1 sets all button states for controller 1.
func (is *InputState) SetButtons1(buttons [8]bool) { is.Controller1.SetButtons(buttons) }

// SetButtons2 sets all button states for controller 2.
func (is *InputState) SetButtons2(buttons [8]bool) { is.Controller2.SetButtons(buttons) }

// Read reads from a controller port; $4017 carries the open-bus bit 6 set,
// as on real hardware.
func (is *InputState) Read(address uint16) uint8 {
	switch address {
	case 0x4016:
		return is.Controller1.Read()
	case 0x4017:
		return is.Controller2.Read() | 0x40
	default:
		return 0
	}
}

// Write writes to the controller strobe port; both controllers receive
// every strobe write since they share $4016's latch line.
func (is *InputState) Write(address uint16, value uint8) {
	if address == 0x4016 {
		is.Controller1.Write(value)
		is.Controller2.Write(value)
	}
}

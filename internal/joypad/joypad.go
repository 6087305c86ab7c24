// Package joypad emulates the DMG joypad register at 0xFF00: button
// state, the direction/action row-select latch, and the edge-triggered
// Joypad interrupt fired when a previously-unset button is pressed,
// whichever row is selected.
package joypad

import "github.com/nfsu/gb/pkg/bits"

// Button identifies one of the eight physical buttons.
type Button = uint8

const (
	ButtonA      Button = 0x01
	ButtonB      Button = 0x02
	ButtonSelect Button = 0x04
	ButtonStart  Button = 0x08
	ButtonRight  Button = 0x10
	ButtonLeft   Button = 0x20
	ButtonUp     Button = 0x40
	ButtonDown   Button = 0x80
)

// requester is the narrow slice of interrupts.Service the joypad needs;
// kept as an interface so this package doesn't import interrupts.
type requester interface {
	Request(flag uint8)
}

const joypadFlag uint8 = 4

// State is the joypad register (0xFF00) plus the eight-button bitset it
// reports through whichever row is currently selected.
type State struct {
	// register holds bits 4-5 (row select, active low) as written by
	// the game; bits 0-3 are synthesized by Read from State/register.
	register uint8
	state    Button

	irq requester
}

// New returns a State with both rows deselected, the documented
// post-boot-ROM value.
func New(irq requester) *State {
	return &State{register: 0x3F, irq: irq}
}

// Read returns the register as the CPU would see it: bits 4-5 as
// written, bits 0-3 reflecting whichever button row is selected (both
// rows unselected reads all buttons as released).
func (s *State) Read() uint8 {
	if !bits.Test(s.register, 4) {
		return s.register &^ (s.state >> 4)
	}
	if !bits.Test(s.register, 5) {
		return s.register &^ (s.state & 0x0F)
	}
	return s.register | 0x0F
}

// Write stores the row-select bits; bits 0-3 are read-only from the
// CPU's perspective.
func (s *State) Write(value uint8) {
	s.register = s.register&0xCF | value&0x30
}

// Press marks key as held and requests the Joypad interrupt on the
// released-to-held edge. The interrupt fires regardless of which row
// 0xFF00 currently selects; only the readback is row-gated.
func (s *State) Press(key Button) {
	wasPressed := s.state&key != 0
	s.state |= key

	if !wasPressed {
		s.irq.Request(joypadFlag)
	}
}

// Release marks key as no longer held.
func (s *State) Release(key Button) {
	s.state &^= key
}

// Package interrupts implements the DMG interrupt controller: the IF
// (0xFF0F) and IE (0xFFFF) registers, the IME master-enable latch, and
// vector lookup in hardware priority order.
package interrupts

import "fmt"

// Address is the service vector of an interrupt.
type Address = uint16

const (
	VBlank Address = 0x0040
	LCD    Address = 0x0048
	Timer  Address = 0x0050
	Serial Address = 0x0058
	Joypad Address = 0x0060
)

// Flag is an interrupt's bit position within IF/IE, lowest first —
// also their servicing priority when more than one is pending.
type Flag = uint8

const (
	VBlankFlag Flag = 0
	LCDFlag    Flag = 1
	TimerFlag  Flag = 2
	SerialFlag Flag = 3
	JoypadFlag Flag = 4
)

const (
	// FlagRegister is IF (R/W). Bits 5-7 always read back as 1.
	FlagRegister uint16 = 0xFF0F
	// EnableRegister is IE (R/W).
	EnableRegister uint16 = 0xFFFF
)

var vectorByFlag = [5]Address{VBlank, LCD, Timer, Serial, Joypad}

// Service holds interrupt controller state: the IF and IE registers and
// the IME master-enable latch. It satisfies cpu.Interrupts.
type Service struct {
	Flag   uint8
	Enable uint8

	ime bool
}

// NewService returns a Service with IME and both registers clear, the
// documented post-boot-ROM state.
func NewService() *Service {
	return &Service{}
}

// Request sets the IF bit for flag, marking that interrupt pending.
// Device models (PPU, timer, joypad, serial) call this; it has no
// effect on IME, so a disabled interrupt still latches in IF.
func (s *Service) Request(flag Flag) {
	s.Flag |= 1 << flag
}

// Clear clears the IF bit for flag.
func (s *Service) Clear(flag Flag) {
	s.Flag &^= 1 << flag
}

// Pending reports the vector of the highest-priority interrupt that is
// both requested (IF) and enabled (IE), without clearing IF — the CPU
// calls Ack separately once it has committed to servicing it.
func (s *Service) Pending() (Address, bool) {
	active := s.Flag & s.Enable & 0x1F
	if active == 0 {
		return 0, false
	}
	for flag := Flag(0); flag < 5; flag++ {
		if active&(1<<flag) != 0 {
			return vectorByFlag[flag], true
		}
	}
	return 0, false
}

// AnyRequested reports whether IF&IE is nonzero regardless of IME, used
// to wake a halted or stopped CPU even with interrupts globally
// disabled.
func (s *Service) AnyRequested() bool {
	return s.Flag&s.Enable&0x1F != 0
}

// Ack clears the IF bit belonging to vector.
func (s *Service) Ack(vector Address) {
	for flag, v := range vectorByFlag {
		if v == vector {
			s.Clear(Flag(flag))
			return
		}
	}
}

func (s *Service) IME() bool     { return s.ime }
func (s *Service) SetIME(v bool) { s.ime = v }

// Read returns the register at address, which must be FlagRegister or
// EnableRegister; the MMU routes all other addresses elsewhere.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case FlagRegister:
		return s.Flag&0x1F | 0xE0
	case EnableRegister:
		return s.Enable
	}
	panic(fmt.Sprintf("interrupts: illegal read from address %04X", address))
}

// Write stores value into the register at address.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case FlagRegister:
		s.Flag = value
	case EnableRegister:
		s.Enable = value
	default:
		panic(fmt.Sprintf("interrupts: illegal write to address %04X", address))
	}
}

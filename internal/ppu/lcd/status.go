package lcd

import "github.com/nfsu/gb/pkg/bits"

// StatusRegister is STAT's bus address.
const StatusRegister = 0xFF41

// Status decodes STAT (0xFF41): the three mode-change interrupt enables,
// the LYC=LY coincidence interrupt enable, and the coincidence flag and
// mode bits the PPU's state machine writes back every tick.
type Status struct {
	LYCInterrupt    bool
	OAMInterrupt    bool
	VBlankInterrupt bool
	HBlankInterrupt bool

	Coincidence bool
	Mode        Mode

	raw uint8
}

// NewStatus returns the documented post-boot-ROM STAT state: all
// interrupt-enable bits clear, mode OAMScan.
func NewStatus() *Status {
	return &Status{Mode: OAMScan}
}

// Write decodes the writable bits of STAT (6..3); the coincidence flag
// and mode bits are read-only from the CPU's perspective and are set
// only by the PPU's own state machine.
func (s *Status) Write(value uint8) {
	s.raw = value
	s.LYCInterrupt = bits.Test(value, 6)
	s.OAMInterrupt = bits.Test(value, 5)
	s.VBlankInterrupt = bits.Test(value, 4)
	s.HBlankInterrupt = bits.Test(value, 3)
}

// Read reassembles STAT from its fields, including the read-only
// coincidence flag (bit 2) and mode (bits 1-0). Bit 7 always reads 1.
func (s *Status) Read() uint8 {
	value := s.raw&0x78 | 0x80
	if s.Coincidence {
		value |= 0x04
	}
	return value | s.Mode&0x3
}

package cpu

// Flag identifies one of the four bits of the F register that are
// actually meaningful; the low nibble of F is always zero.
type Flag = uint8

const (
	FlagZero      Flag = 0x80
	FlagSubtract  Flag = 0x40
	FlagHalfCarry Flag = 0x20
	FlagCarry     Flag = 0x10
)

// tri is a three-state flag update: leave it alone, force it clear, or
// force it set. setFlags below takes one tri per flag so callers can
// express "Z from result, N=0, H=1, C unchanged" declaratively instead
// of four separate if/else blocks.
type tri uint8

const (
	leave tri = iota
	clear
	set
)

func fromBool(b bool) tri {
	if b {
		return set
	}
	return clear
}

// clearFlag clears a single flag bit, masking the result to F's valid
// nibble (bits 3..0 of F are always zero on real hardware).
func (c *CPU) clearFlag(flag Flag) {
	c.F = (c.F &^ flag) & 0xF0
}

// setFlag sets a single flag bit.
func (c *CPU) setFlag(flag Flag) {
	c.F = (c.F | flag) & 0xF0
}

// isFlagSet reports whether the given flag bit is currently set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag != 0
}

// setFlags updates all four flags at once from tri-state directives,
// used by every ALU/rotate/shift/bit operation to express its flag
// semantics in one call.
func (c *CPU) setFlags(z, n, h, cy tri) {
	apply := func(flag Flag, t tri) {
		switch t {
		case set:
			c.F |= flag
		case clear:
			c.F &^= flag
		}
	}
	apply(FlagZero, z)
	apply(FlagSubtract, n)
	apply(FlagHalfCarry, h)
	apply(FlagCarry, cy)
	c.F &= 0xF0
}

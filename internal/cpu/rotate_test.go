package cpu

import "testing"

func TestRotates(t *testing.T) {
	c, _, _ := newTestCPU()

	t.Run("rlc wraps bit7 into bit0 and carry", func(t *testing.T) {
		got := c.rlc(0x80, true)
		if got != 0x01 || !c.isFlagSet(FlagCarry) {
			t.Errorf("rlc(0x80)=0x%02X carry=%v, want 0x01 true", got, c.isFlagSet(FlagCarry))
		}
	})
	t.Run("rlc zeroFlag=false never sets Z", func(t *testing.T) {
		c.rlc(0x00, false)
		if c.isFlagSet(FlagZero) {
			t.Error("RLCA must never set Z regardless of result")
		}
	})
	t.Run("rrc wraps bit0 into bit7 and carry", func(t *testing.T) {
		got := c.rrc(0x01, true)
		if got != 0x80 || !c.isFlagSet(FlagCarry) {
			t.Errorf("rrc(0x01)=0x%02X carry=%v, want 0x80 true", got, c.isFlagSet(FlagCarry))
		}
	})
	t.Run("rl feeds old carry into bit0", func(t *testing.T) {
		c.clearFlag(FlagCarry)
		got := c.rl(0x80, true)
		if got != 0x00 || !c.isFlagSet(FlagCarry) || !c.isFlagSet(FlagZero) {
			t.Errorf("rl(0x80) with carry=0 -> 0x%02X, want 0x00 with Z and C set", got)
		}
		got = c.rl(0x00, true)
		if got != 0x01 {
			t.Errorf("rl(0x00) with carry=1 (from previous) -> 0x%02X, want 0x01", got)
		}
	})
	t.Run("rr feeds old carry into bit7", func(t *testing.T) {
		c.setFlag(FlagCarry)
		got := c.rr(0x00, true)
		if got != 0x80 {
			t.Errorf("rr(0x00) with carry=1 -> 0x%02X, want 0x80", got)
		}
	})
}

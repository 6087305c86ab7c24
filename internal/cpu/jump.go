package cpu

// checkCond evaluates a branch condition against the current flags.
func (c *CPU) checkCond(cond Cond) bool {
	switch cond {
	case CondNone:
		return true
	case CondNZ:
		return !c.isFlagSet(FlagZero)
	case CondZ:
		return c.isFlagSet(FlagZero)
	case CondNC:
		return !c.isFlagSet(FlagCarry)
	default: // CondC
		return c.isFlagSet(FlagCarry)
	}
}

// execJump handles JR/JP/JPHL/CALL/RET/RETI/RST/PUSH/POP. It returns
// whether a conditional branch was taken, so the caller can pick
// CyclesBest vs CyclesWorst.
func (c *CPU) execJump(inst Instruction) (taken bool) {
	switch inst.Kind {
	case JR:
		if !c.checkCond(inst.Cond) {
			return false
		}
		c.PC = uint16(int32(c.PC) + int32(int8(inst.Imm8)))
		return true
	case JP:
		if !c.checkCond(inst.Cond) {
			return false
		}
		c.PC = inst.Imm16
		return true
	case JPHL:
		c.PC = c.HL.Uint16()
		return true
	case CALL:
		if !c.checkCond(inst.Cond) {
			return false
		}
		c.pushStack(c.PC)
		c.PC = inst.Imm16
		return true
	case RET:
		if !c.checkCond(inst.Cond) {
			return false
		}
		c.PC = c.popStack()
		return true
	case RETI:
		c.PC = c.popStack()
		c.irq.SetIME(true)
		return true
	case RST:
		c.pushStack(c.PC)
		c.PC = inst.Imm16
		return true
	case PUSH:
		c.pushStack(c.get16qq(inst.Reg1))
		return true
	case POP:
		c.set16qq(inst.Reg1, c.popStack())
		return true
	}
	return false
}

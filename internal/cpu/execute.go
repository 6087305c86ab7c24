package cpu

import "fmt"

// execute applies a decoded instruction's effects and returns the
// number of M-cycles it actually cost, resolving conditional-branch
// timing to CyclesWorst when taken and CyclesBest when not.
func (c *CPU) execute(inst Instruction) uint8 {
	switch inst.Kind {
	case NOP:
		return inst.CyclesBest
	case DI:
		c.irq.SetIME(false)
		return inst.CyclesBest
	case EI:
		c.eiPending = true
		return inst.CyclesBest
	case HALT:
		c.execHalt()
		return inst.CyclesBest
	case STOP:
		c.mode = modeStopped
		return inst.CyclesBest

	case LDRegReg, LDImm8Reg, LDImm16Reg16, LDAToRelAddr, LDAFromRelAddr,
		LDAToIOImm, LDAFromIOImm, LDAToIOC, LDAFromIOC, LDAToAbs, LDAFromAbs,
		LDSPToAbs, LDHLSPPlusR8, LDSPHL:
		c.execLoad(inst)
		return inst.CyclesBest

	case INC8:
		c.set8(inst.Reg1, c.inc8(c.get8(inst.Reg1)))
		return inst.CyclesBest
	case DEC8:
		c.set8(inst.Reg1, c.dec8(c.get8(inst.Reg1)))
		return inst.CyclesBest
	case INC16:
		c.set16dd(inst.Reg1, c.get16dd(inst.Reg1)+1)
		return inst.CyclesBest
	case DEC16:
		c.set16dd(inst.Reg1, c.get16dd(inst.Reg1)-1)
		return inst.CyclesBest

	case ADD8, ADC, SUB, SBC, AND, XOR, OR, CP:
		c.execALU(inst)
		return inst.CyclesBest
	case ADDHLR16:
		c.addHL16(c.get16dd(inst.Reg1))
		return inst.CyclesBest
	case ADDSPR8:
		c.SP = c.addSPSigned(inst.Imm8)
		return inst.CyclesBest

	case RLCA:
		c.A = c.rlc(c.A, false)
		return inst.CyclesBest
	case RRCA:
		c.A = c.rrc(c.A, false)
		return inst.CyclesBest
	case RLA:
		c.A = c.rl(c.A, false)
		return inst.CyclesBest
	case RRA:
		c.A = c.rr(c.A, false)
		return inst.CyclesBest
	case DAA:
		c.daa()
		return inst.CyclesBest
	case SCF:
		c.setFlags(leave, clear, clear, set)
		return inst.CyclesBest
	case CPL:
		c.A = ^c.A
		c.setFlags(leave, set, set, leave)
		return inst.CyclesBest
	case CCF:
		c.setFlags(leave, clear, clear, fromBool(!c.isFlagSet(FlagCarry)))
		return inst.CyclesBest

	case RLC:
		c.set8(inst.Reg1, c.rlc(c.get8(inst.Reg1), true))
		return inst.CyclesBest
	case RRC:
		c.set8(inst.Reg1, c.rrc(c.get8(inst.Reg1), true))
		return inst.CyclesBest
	case RL:
		c.set8(inst.Reg1, c.rl(c.get8(inst.Reg1), true))
		return inst.CyclesBest
	case RR:
		c.set8(inst.Reg1, c.rr(c.get8(inst.Reg1), true))
		return inst.CyclesBest
	case SLA:
		c.set8(inst.Reg1, c.sla(c.get8(inst.Reg1)))
		return inst.CyclesBest
	case SRA:
		c.set8(inst.Reg1, c.sra(c.get8(inst.Reg1)))
		return inst.CyclesBest
	case SWAP:
		c.set8(inst.Reg1, c.swap(c.get8(inst.Reg1)))
		return inst.CyclesBest
	case SRL:
		c.set8(inst.Reg1, c.srl(c.get8(inst.Reg1)))
		return inst.CyclesBest
	case BIT:
		c.bitTest(c.get8(inst.Reg1), inst.Imm8)
		return inst.CyclesBest
	case RES:
		c.set8(inst.Reg1, resetBit(c.get8(inst.Reg1), inst.Imm8))
		return inst.CyclesBest
	case SET:
		c.set8(inst.Reg1, setBit(c.get8(inst.Reg1), inst.Imm8))
		return inst.CyclesBest

	case JR, JP, JPHL, CALL, RET, RETI, RST, PUSH, POP:
		if c.execJump(inst) {
			return inst.CyclesWorst
		}
		return inst.CyclesBest

	default: // UNDEFINED
		addr := c.PC - uint16(inst.Length)
		c.log.Errorf("undefined opcode 0x%02X at 0x%04X", inst.raw, addr)
		c.Fault = fmt.Errorf("undefined opcode 0x%02X at 0x%04X", inst.raw, addr)
		c.mode = modeHalted
		return inst.CyclesBest
	}
}

// execALU dispatches the eight 8-bit arithmetic/logic operations
// against either a register/(HL) operand (Reg1 is a reg3 index) or an
// immediate byte (Reg1 is noReg, meaning the d8 form was decoded).
func (c *CPU) execALU(inst Instruction) {
	var operand uint8
	if inst.Reg1 == noReg {
		operand = inst.Imm8
	} else {
		operand = c.get8(inst.Reg1)
	}

	switch inst.Kind {
	case ADD8:
		c.A = c.add8(c.A, operand, false)
	case ADC:
		c.A = c.add8(c.A, operand, true)
	case SUB:
		c.A = c.sub8(c.A, operand, false)
	case SBC:
		c.A = c.sub8(c.A, operand, true)
	case AND:
		c.A = c.and8(c.A, operand)
	case XOR:
		c.A = c.xor8(c.A, operand)
	case OR:
		c.A = c.or8(c.A, operand)
	case CP:
		c.sub8(c.A, operand, false)
	}
}

// execHalt implements HALT, including the halt bug: if IME is false
// and an interrupt is already pending (IF&IE != 0) at the moment HALT
// executes, the CPU does not actually halt; instead the next Step does
// not advance PC, so the instruction after HALT is fetched and executed
// twice.
func (c *CPU) execHalt() {
	if !c.irq.IME() && c.irq.AnyRequested() {
		c.haltBugArmed = true
		return
	}
	c.mode = modeHalted
}

// Package cpu implements the Sharp LR35902 instruction set: a pure
// decoder (Decode), a value type describing the decoded instruction
// (Instruction), and an executor (CPU.Step) that applies it against a
// bus and an interrupt controller.
package cpu

import "github.com/nfsu/gb/pkg/log"

// Bus is the full read/write memory interface the CPU operates over.
// The mmu package's MMU satisfies it.
type Bus interface {
	Reader
	Write(address uint16, value uint8)
}

// Interrupts is the subset of the interrupt controller the CPU needs to
// service interrupts and implement EI/DI/HALT semantics. The interrupts
// package's Service satisfies it.
type Interrupts interface {
	// Pending reports the vector address of the highest-priority
	// requested-and-enabled interrupt, if any, without acknowledging it.
	Pending() (vector uint16, ok bool)
	// AnyRequested reports whether IF&IE is nonzero regardless of IME,
	// used to wake a halted CPU even with interrupts globally disabled.
	AnyRequested() bool
	Ack(vector uint16)
	IME() bool
	SetIME(bool)
}

// mode tracks the CPU's run state across Step calls; decode/execute
// alone can't express HALT, STOP or the EI-enable delay.
type mode uint8

const (
	modeRunning mode = iota
	modeHalted
	modeStopped
)

// CPU is the Sharp LR35902 core. PC/SP and the Registers are exported
// so tests and a debugger can inspect state directly; everything else
// is run through Step.
type CPU struct {
	Registers
	PC uint16
	SP uint16

	bus  Bus
	irq  Interrupts
	log  log.Logger
	mode mode

	// eiPending implements EI's documented one-instruction delay: IME
	// becomes true only after the instruction following EI has executed.
	eiPending bool

	// haltBugArmed is set when HALT executes while IME is false and
	// IF&IE is already nonzero: the next Step does not advance PC, so
	// the instruction after HALT is executed twice. The whole
	// instruction is repeated, operand bytes included; re-reading only
	// the opcode byte as the first operand is not modeled.
	haltBugArmed bool

	// Cycles counts total elapsed M-cycles, used by callers that need
	// wall-clock-accurate frame pacing.
	Cycles uint64

	// Fault is set when Step decodes an UNDEFINED opcode, which never
	// occurs in a valid cartridge. The CPU is left halted; Fault is
	// never cleared automatically.
	Fault error
}

// New constructs a CPU wired to bus for memory access and irq for
// interrupt servicing. logger may be log.NullLogger{} to discard trace
// output.
func New(bus Bus, irq Interrupts, logger log.Logger) *CPU {
	c := &CPU{bus: bus, irq: irq, log: logger}
	c.Registers.init()
	return c
}

// Reset puts the CPU in its post-boot-ROM state: registers and PC/SP as
// they are left by the DMG boot ROM, ready to execute at 0x0100.
func (c *CPU) Reset() {
	c.A, c.F = 0x01, 0xB0
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.mode = modeRunning
	c.eiPending = false
	c.haltBugArmed = false
}

// Step advances the CPU by exactly one instruction, or by one idle tick
// while halted/stopped, and returns the M-cycles it consumed.
func (c *CPU) Step() uint8 {
	if c.mode == modeHalted || c.mode == modeStopped {
		c.Cycles++
		if !c.irq.AnyRequested() {
			return 1
		}
		// Waking dispatches the pending interrupt (if IME allows)
		// before the instruction after HALT runs, so the pushed return
		// address points just past the HALT.
		c.mode = modeRunning
		return c.serviceInterruptIfAny(1)
	}

	wasEIPending := c.eiPending
	c.eiPending = false

	inst := Decode(c.bus, c.PC)

	if c.haltBugArmed {
		c.haltBugArmed = false
	} else {
		c.PC += uint16(inst.Length)
	}

	cycles := c.execute(inst)
	c.Cycles += uint64(cycles)

	if wasEIPending {
		c.irq.SetIME(true)
	}

	return c.serviceInterruptIfAny(cycles)
}

// serviceInterruptIfAny runs the 5-M-cycle interrupt acknowledgment
// sequence (push PC, jump to vector, clear IME) when one is pending and
// globally enabled, adding its cost to cycles already spent this Step.
func (c *CPU) serviceInterruptIfAny(cycles uint8) uint8 {
	if c.mode != modeRunning {
		return cycles
	}
	if !c.irq.IME() {
		return cycles
	}
	vector, ok := c.irq.Pending()
	if !ok {
		return cycles
	}
	c.irq.SetIME(false)
	c.irq.Ack(vector)
	c.pushStack(c.PC)
	c.PC = vector
	c.Cycles += 5
	c.log.Debugf("interrupt serviced: vector=0x%04X", vector)
	return cycles + 5
}

func (c *CPU) pushStack(value uint16) {
	c.SP -= 2
	c.bus.Write(c.SP, uint8(value))
	c.bus.Write(c.SP+1, uint8(value>>8))
}

func (c *CPU) popStack() uint16 {
	lo := c.bus.Read(c.SP)
	hi := c.bus.Read(c.SP + 1)
	c.SP += 2
	return uint16(hi)<<8 | uint16(lo)
}

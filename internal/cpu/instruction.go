package cpu

// Kind identifies the operation a decoded instruction performs. It is a
// closed set — every base and 0xCB-prefixed opcode decodes to exactly
// one of these.
type Kind uint8

const (
	NOP Kind = iota
	HALT
	STOP
	DI
	EI
	LDRegReg
	LDImm8Reg
	LDImm16Reg16
	LDAToRelAddr
	LDAFromRelAddr
	LDAToIOImm
	LDAFromIOImm
	LDAToIOC
	LDAFromIOC
	LDAToAbs
	LDAFromAbs
	LDSPToAbs
	LDHLSPPlusR8
	LDSPHL
	INC8
	DEC8
	INC16
	DEC16
	ADD8
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	ADDHLR16
	ADDSPR8
	RLCA
	RRCA
	RLA
	RRA
	DAA
	SCF
	CPL
	CCF
	PUSH
	POP
	JR
	JP
	JPHL
	CALL
	RET
	RETI
	RST
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET
	UNDEFINED
)

// noReg is the sentinel primary/secondary register index meaning "this
// instruction has no such operand".
const noReg uint8 = 0xFF

// Cond is a branch condition code.
type Cond uint8

const (
	CondNone Cond = iota // unconditional
	CondNZ
	CondZ
	CondNC
	CondC
)

// Instruction is the value type produced by Decode and consumed by the
// executor (CPU.execute). It carries everything the executor needs and nothing more;
// Decode never mutates CPU or bus state beyond the operand fetch itself.
type Instruction struct {
	Kind Kind

	// Reg1/Reg2 are reg3 indices (0..5,7; 6 means (HL)) or pair indices,
	// depending on Kind. Reg1 is noReg for the ALU d8 forms; otherwise a
	// field the Kind does not use is left zero.
	Reg1, Reg2 uint8

	// Cond is the branch condition for JR/JP/CALL/RET; CondNone for
	// unconditional forms and for instructions with no condition at all.
	Cond Cond

	// Imm8/Imm16 hold immediate operands (whichever the Kind uses).
	Imm8  uint8
	Imm16 uint16

	// Addr is the absolute address an instruction's memory access
	// targets, when it is known at decode time independent of Reg1/Reg2
	// (e.g. the a16 in LD (a16),SP).
	Addr uint16

	// Length is the instruction's length in bytes, including any
	// opcode/CB-prefix bytes.
	Length uint8

	// CyclesBest/CyclesWorst are M-cycle counts; equal unless the
	// instruction is a conditional branch, in which case Worst is the
	// taken cost and Best the not-taken cost.
	CyclesBest, CyclesWorst uint8

	// raw is the first opcode byte, kept for diagnostics (UNDEFINED
	// reporting, debug breakpoints on "LD B,B").
	raw uint8
}

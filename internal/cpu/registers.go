package cpu

// Register is an 8-bit CPU register.
type Register = uint8

// RegisterPair views two 8-bit registers as a single big-endian 16-bit
// value. High holds the upper byte (e.g. A of AF), Low the lower.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the paired value, High in the top byte.
func (r RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets both halves of the pair from a 16-bit value.
func (r RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers holds the eight 8-bit Sharp LR35902 registers and exposes
// the four 16-bit pair views over them.
type Registers struct {
	A, F Register
	B, C Register
	D, E Register
	H, L Register

	AF, BC, DE, HL RegisterPair
}

// reg3 is the 3-bit register field used throughout the opcode map:
// 0..5 = B,C,D,E,H,L; 6 = (HL) indirect, handled by the caller; 7 = A.
const regHLIndirect = 6

// registerPointers returns, in reg3 order, pointers to the eight
// registers addressable by the opcode's 3-bit operand field. Index 6 is
// left nil; callers must special-case (HL) themselves.
func (r *Registers) registerPointers() [8]*Register {
	return [8]*Register{0: &r.B, 1: &r.C, 2: &r.D, 3: &r.E, 4: &r.H, 5: &r.L, 6: nil, 7: &r.A}
}

func (r *Registers) init() {
	r.AF = RegisterPair{&r.A, &r.F}
	r.BC = RegisterPair{&r.B, &r.C}
	r.DE = RegisterPair{&r.D, &r.E}
	r.HL = RegisterPair{&r.H, &r.L}
}

// pairByIndex returns the register pair selected by the 2-bit dd/qq
// field (0=BC,1=DE,2=HL,3=SP-or-AF depending on context). Index 3
// returns AF; SP is not a RegisterPair, so callers that mean SP handle
// it themselves.
func (r *Registers) pairByIndex(i uint8) RegisterPair {
	switch i & 0x3 {
	case 0:
		return r.BC
	case 1:
		return r.DE
	case 2:
		return r.HL
	default:
		return r.AF
	}
}

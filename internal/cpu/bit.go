package cpu

// bitTest sets Z from the complement of bit `n` of value, clears N,
// sets H, and leaves carry untouched, per the BIT instruction.
func (c *CPU) bitTest(value uint8, n uint8) {
	isSet := value&(1<<n) != 0
	c.setFlags(fromBool(!isSet), clear, set, leave)
}

func resetBit(value uint8, n uint8) uint8 {
	return value &^ (1 << n)
}

func setBit(value uint8, n uint8) uint8 {
	return value | 1<<n
}

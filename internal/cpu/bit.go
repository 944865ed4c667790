package cpu

// testBit tests the bit at the given position in the given value,
// setting the zero flag to the bit's complement. Nothing is written.
//
//	BIT n, r
//	n = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.setFlags(value&(1<<position) == 0, false, true, c.IsFlagSet(FlagCarry))
}

// setBit returns the value with the bit at the given position set. No
// flag effect.
//
//	SET n, r
//	n = 0-7
//	r = B, C, D, E, H, L, (HL), A
func (c *CPU) setBit(value uint8, position uint8) uint8 {
	return value | 1<<position
}

// resetBit returns the value with the bit at the given position
// cleared. No flag effect.
//
//	RES n, r
//	n = 0-7
//	r = B, C, D, E, H, L, (HL), A
func (c *CPU) resetBit(value uint8, position uint8) uint8 {
	return value &^ (1 << position)
}

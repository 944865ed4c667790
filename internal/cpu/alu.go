package cpu

// add adds n (and the carry flag, for ADC) to the A register.
//
//	ADD A, n / ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carryIn uint8
	if withCarry && c.IsFlagSet(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(n) + uint16(carryIn)
	sumHalf := c.A&0xF + n&0xF + carryIn
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n (and the carry flag, for SBC) from the A register.
//
//	SUB A, n / SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	var carryIn uint8
	if withCarry && c.IsFlagSet(FlagCarry) {
		carryIn = 1
	}
	diff := int16(c.A) - int16(n) - int16(carryIn)
	diffHalf := int16(c.A&0xF) - int16(n&0xF) - int16(carryIn)
	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	c.A = uint8(diff)
}

// and performs a bitwise AND operation on n and the A register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare subtracts n from the A register, discarding the result. The
// flag computation is identical to sub; A keeps its value.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, n&0xF > c.A&0xF, n > c.A)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.IsFlagSet(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.IsFlagSet(FlagCarry))
	return decremented
}

// addHL adds the given 16-bit value to the HL register pair. No flag
// effect on Z.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(nn uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(nn)
	c.setFlags(c.IsFlagSet(FlagZero), false, hl&0xFFF+nn&0xFFF > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned reads a signed 8-bit operand and returns SP plus that
// offset. Shared by ADD SP, r8 and LD HL, SP+r8; both carry flags are
// computed from the low byte of the addition.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	offset := uint16(int8(c.readOperand()))
	result := c.SP + offset

	changed := c.SP ^ offset ^ result
	c.setFlags(false, false, changed&0x10 == 0x10, changed&0x100 == 0x100)

	return result
}

// decimalAdjust corrects the A register to packed-decimal form after an
// addition or subtraction, using the N, H and C flags left by the prior
// operation.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment produced a decimal carry.
func (c *CPU) decimalAdjust() {
	carry := c.IsFlagSet(FlagCarry)
	if !c.IsFlagSet(FlagSubtract) {
		if carry || c.A > 0x99 {
			c.A += 0x60
			carry = true
		}
		if c.IsFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if carry {
			c.A -= 0x60
		}
		if c.IsFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.setFlags(c.A == 0, c.IsFlagSet(FlagSubtract), false, carry)
}

// complement flips every bit of the A register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.setFlags(c.IsFlagSet(FlagZero), true, true, c.IsFlagSet(FlagCarry))
}

// setCarryFlag forces the carry flag on.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarryFlag() {
	c.setFlags(c.IsFlagSet(FlagZero), false, false, true)
}

// complementCarryFlag toggles the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarryFlag() {
	c.setFlags(c.IsFlagSet(FlagZero), false, false, !c.IsFlagSet(FlagCarry))
}

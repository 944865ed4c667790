package cpu

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is
// copied to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	computed := n<<1 | n>>7
	c.setFlags(computed == 0, false, false, n&0x80 != 0)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit
// is copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	computed := n>>1 | n<<7
	c.setFlags(computed == 0, false, false, n&0x01 != 0)
	return computed
}

// rotateLeft rotates n left by 1 bit through the carry flag: the prior
// carry becomes the least significant bit and the evicted bit 7
// becomes the new carry.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(n uint8) uint8 {
	computed := n << 1
	if c.IsFlagSet(FlagCarry) {
		computed |= 0x01
	}
	c.setFlags(computed == 0, false, false, n&0x80 != 0)
	return computed
}

// rotateRight rotates n right by 1 bit through the carry flag: the
// prior carry becomes the most significant bit and the evicted bit 0
// becomes the new carry.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(n uint8) uint8 {
	computed := n >> 1
	if c.IsFlagSet(FlagCarry) {
		computed |= 0x80
	}
	c.setFlags(computed == 0, false, false, n&0x01 != 0)
	return computed
}

// The accumulator-only forms RLCA, RLA, RRCA and RRA perform the same
// rotations on A but always force the zero flag off, even when the
// result is zero.

// rotateLeftCarryAccumulator rotates the A register left by 1 bit.
//
//	RLCA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarryAccumulator() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.setFlags(false, false, false, carry)
}

// rotateLeftAccumulator rotates the A register left through the carry
// flag.
//
//	RLA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftAccumulator() {
	carry := c.A&0x80 != 0
	c.A <<= 1
	if c.IsFlagSet(FlagCarry) {
		c.A |= 0x01
	}
	c.setFlags(false, false, false, carry)
}

// rotateRightCarryAccumulator rotates the A register right by 1 bit.
//
//	RRCA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarryAccumulator() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.setFlags(false, false, false, carry)
}

// rotateRightAccumulator rotates the A register right through the
// carry flag.
//
//	RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightAccumulator() {
	carry := c.A&0x01 != 0
	c.A >>= 1
	if c.IsFlagSet(FlagCarry) {
		c.A |= 0x80
	}
	c.setFlags(false, false, false, carry)
}

// shiftLeftArithmetic shifts n left by one bit; bit 0 becomes zero and
// the evicted bit 7 becomes the carry.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&0x80 != 0)
	return computed
}

// shiftRightArithmetic shifts n right by one bit, preserving the sign
// bit; the evicted bit 0 becomes the carry.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&0x80
	c.setFlags(computed == 0, false, false, n&0x01 != 0)
	return computed
}

// shiftRightLogical shifts n right by one bit; bit 7 becomes zero and
// the evicted bit 0 becomes the carry.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&0x01 != 0)
	return computed
}

// swap exchanges the upper and lower nibbles of n.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	computed := n<<4 | n>>4
	c.setFlags(computed == 0, false, false, false)
	return computed
}

package cpu

// loadRegister8 loads the next operand byte into the given register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegister8(reg *Register) {
	*reg = c.readOperand()
}

// loadMemoryToRegister loads the value at the given memory address into
// the given register.
//
//	LD n, (nn)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) {
	*reg = c.readByte(address)
}

// loadRegisterToMemory stores the value of the given register at the
// given memory address.
//
//	LD (nn), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) {
	c.writeByte(address, reg)
}

// loadRegister16 loads the next 16-bit operand into the given register
// pair.
//
//	LD nn, d16
//	nn = BC, DE, HL
func (c *CPU) loadRegister16(reg *RegisterPair) {
	*reg.Low = c.readOperand()
	*reg.High = c.readOperand()
}

// loadHighToA loads the value at 0xFF00+offset into the A register.
//
//	LDH A, (a8) / LD A, (C)
func (c *CPU) loadHighToA(offset uint8) {
	c.A = c.readByte(0xFF00 + uint16(offset))
}

// loadAToHigh stores the A register at 0xFF00+offset.
//
//	LDH (a8), A / LD (C), A
func (c *CPU) loadAToHigh(offset uint8) {
	c.writeByte(0xFF00+uint16(offset), c.A)
}

// pushStack pushes a 16-bit value onto the stack, high byte first, and
// decrements SP by 2.
func (c *CPU) pushStack(value uint16) {
	c.writeByte(c.SP-1, uint8(value>>8))
	c.writeByte(c.SP-2, uint8(value))
	c.SP -= 2
}

// popStack pops a 16-bit value off the stack and increments SP by 2.
func (c *CPU) popStack() uint16 {
	low := uint16(c.readByte(c.SP))
	high := uint16(c.readByte(c.SP + 1))
	c.SP += 2
	return high<<8 | low
}

// push pushes the given register pair onto the stack.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
//
// No flag effect.
func (c *CPU) push(reg *RegisterPair) {
	c.pushStack(reg.Uint16())
}

// pop pops the stack into the given register pair. Popping into AF only
// ever lands flag bits in F; its lower nibble stays zero.
//
//	POP nn
//	nn = AF, BC, DE, HL
//
// No flag effect, except POP AF which replaces all four flags.
func (c *CPU) pop(reg *RegisterPair) {
	reg.SetUint16(c.popStack())
	c.F &= 0xF0
}

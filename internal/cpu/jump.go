package cpu

// Extra machine cycles consumed when a conditional branch is taken.
// The base table cost is the not-taken cost; actually redirecting the
// PC costs additional bus cycles, and the difference is observable.
const (
	jumpTakenCycles = 1
	callTakenCycles = 3
	retTakenCycles  = 3
)

// jumpAbsolute reads a 16-bit address operand and, if the condition
// holds, redirects the PC to it.
//
//	JP nn / JP cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) jumpAbsolute(condition bool) {
	address := c.readOperand16()
	if condition {
		c.PC = address
		c.ticks += jumpTakenCycles
	}
}

// jumpRelative reads a signed 8-bit offset operand and, if the
// condition holds, adds it to the PC. The offset is relative to the
// address of the instruction following the operand.
//
//	JR e / JR cc, e
//	cc = NZ, Z, NC, C
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.ticks += jumpTakenCycles
	}
}

// call reads a 16-bit address operand and, if the condition holds,
// pushes the resume address and redirects the PC. The resume address
// is the instruction following the operand, never the call's own
// address.
//
//	CALL nn / CALL cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) call(condition bool) {
	address := c.readOperand16()
	if condition {
		c.pushStack(c.PC)
		c.PC = address
		c.ticks += callTakenCycles
	}
}

// retConditional pops the resume address off the stack if the
// condition holds.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.PC = c.popStack()
		c.ticks += retTakenCycles
	}
}

// ret pops the resume address off the stack.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// retInterrupt pops the resume address off the stack and re-enables
// interrupts immediately; unlike EI there is no one-instruction
// delay.
//
//	RETI
func (c *CPU) retInterrupt() {
	c.ret()
	c.irq.IME = true
	c.irq.Enabling = false
}

// rst pushes the resume address and jumps to one of the eight fixed
// low-memory vectors.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) rst(vector uint16) {
	c.pushStack(c.PC)
	c.PC = vector
}

package cpu

// Flag is a bit mask into the upper nibble of the F register.
type Flag = uint8

const (
	FlagZero      Flag = 1 << 7
	FlagSubtract  Flag = 1 << 6
	FlagHalfCarry Flag = 1 << 5
	FlagCarry     Flag = 1 << 4
)

// IsFlagSet returns true if the given flag is set.
func (c *CPU) IsFlagSet(flag Flag) bool {
	return c.F&flag != 0
}

// SetFlag sets the given flag in the F register.
func (c *CPU) SetFlag(flag Flag) {
	c.F = (c.F | flag) & 0xF0
}

// ClearFlag clears the given flag from the F register.
func (c *CPU) ClearFlag(flag Flag) {
	c.F = (c.F &^ flag) & 0xF0
}

// setFlags writes all four flags at once. Callers that need to leave a
// flag untouched pass its current value back in, which keeps the
// "unaffected" column of the opcode reference explicit at every call
// site.
func (c *CPU) setFlags(z, n, h, carry bool) {
	var f uint8
	if z {
		f |= FlagZero
	}
	if n {
		f |= FlagSubtract
	}
	if h {
		f |= FlagHalfCarry
	}
	if carry {
		f |= FlagCarry
	}
	c.F = f
}

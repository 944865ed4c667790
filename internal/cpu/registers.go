package cpu

// Register represents one of the 8-bit CPU registers: A, B, C, D, E,
// H, L and F. The F register is special in that it only holds the four
// flags in its upper nibble; its lower nibble always reads as zero.
type Register = uint8

// RegisterPair represents two 8-bit registers viewed as a single
// 16-bit value. The CPU has 4 register pairs: AF, BC, DE and HL.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as a uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers holds the 8-bit registers of the CPU, along with the
// 16-bit register pair views over them. SP and PC live directly on the
// CPU as they are never byte-addressed.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// Reg8 names an 8-bit register for the harness accessors. The set is
// closed; there is no invalid value a caller can construct in range.
type Reg8 uint8

const (
	RegA Reg8 = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

// Reg16 names a 16-bit register or register pair for the harness
// accessors.
type Reg16 uint8

const (
	RegAF Reg16 = iota
	RegBC
	RegDE
	RegHL
	RegSP
	RegPC
)

// Register8 returns the value of the named 8-bit register.
func (c *CPU) Register8(reg Reg8) uint8 {
	switch reg {
	case RegA:
		return c.A
	case RegF:
		return c.F & 0xF0
	case RegB:
		return c.B
	case RegC:
		return c.C
	case RegD:
		return c.D
	case RegE:
		return c.E
	case RegH:
		return c.H
	case RegL:
		return c.L
	}
	return 0
}

// SetRegister8 sets the named 8-bit register. Writes to F only ever
// land in the flag nibble; the lower nibble stays zero.
func (c *CPU) SetRegister8(reg Reg8, value uint8) {
	switch reg {
	case RegA:
		c.A = value
	case RegF:
		c.F = value & 0xF0
	case RegB:
		c.B = value
	case RegC:
		c.C = value
	case RegD:
		c.D = value
	case RegE:
		c.E = value
	case RegH:
		c.H = value
	case RegL:
		c.L = value
	}
}

// Register16 returns the value of the named 16-bit register.
func (c *CPU) Register16(reg Reg16) uint16 {
	switch reg {
	case RegAF:
		return c.AF.Uint16() & 0xFFF0
	case RegBC:
		return c.BC.Uint16()
	case RegDE:
		return c.DE.Uint16()
	case RegHL:
		return c.HL.Uint16()
	case RegSP:
		return c.SP
	case RegPC:
		return c.PC
	}
	return 0
}

// SetRegister16 sets the named 16-bit register.
func (c *CPU) SetRegister16(reg Reg16, value uint16) {
	switch reg {
	case RegAF:
		c.AF.SetUint16(value & 0xFFF0)
	case RegBC:
		c.BC.SetUint16(value)
	case RegDE:
		c.DE.SetUint16(value)
	case RegHL:
		c.HL.SetUint16(value)
	case RegSP:
		c.SP = value
	case RegPC:
		c.PC = value
	}
}

// Snapshot is a read-only copy of the full register, flag and mode
// state of the CPU, for debuggers and test harnesses.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16

	IME     bool
	Halted  bool
	Stopped bool
}

// Snapshot returns a copy of the current CPU state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.F & 0xF0,
		B: c.B, C: c.C,
		D: c.D, E: c.E,
		H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,

		IME:     c.irq.IME,
		Halted:  c.halted,
		Stopped: c.stopped,
	}
}

// readSource returns the value selected by a 3-bit register index as
// encoded in the opcode map: B, C, D, E, H, L, (HL), A. Index 6 reads
// memory at HL.
func (c *CPU) readSource(index uint8) uint8 {
	switch index & 0x7 {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.b.Read(c.HL.Uint16())
	default:
		return c.A
	}
}

// writeSource stores a value through the same 3-bit register index used
// by readSource. Index 6 writes memory at HL.
func (c *CPU) writeSource(index uint8, value uint8) {
	switch index & 0x7 {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.b.Write(c.HL.Uint16(), value)
	default:
		c.A = value
	}
}

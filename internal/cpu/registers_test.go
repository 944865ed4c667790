package cpu

import "testing"

func TestRegisterPairs(t *testing.T) {
	c, _ := newTestCPU()

	c.B = 0x12
	c.C = 0x34
	if got := c.BC.Uint16(); got != 0x1234 {
		t.Errorf("BC = 0x%04X, expected 0x1234", got)
	}

	c.DE.SetUint16(0xABCD)
	if c.D != 0xAB || c.E != 0xCD {
		t.Errorf("D E = 0x%02X 0x%02X, expected 0xAB 0xCD", c.D, c.E)
	}
}

func TestHarnessAccessors(t *testing.T) {
	c, _ := newTestCPU()

	t.Run("Register8", func(t *testing.T) {
		c.SetRegister8(RegB, 0x42)
		if got := c.Register8(RegB); got != 0x42 {
			t.Errorf("B = 0x%02X, expected 0x42", got)
		}
	})

	t.Run("FMasksLowNibble", func(t *testing.T) {
		c.SetRegister8(RegF, 0xFF)
		if got := c.Register8(RegF); got != 0xF0 {
			t.Errorf("F = 0x%02X, expected the low nibble forced to zero", got)
		}
	})

	t.Run("Register16", func(t *testing.T) {
		c.SetRegister16(RegHL, 0x8001)
		if got := c.Register16(RegHL); got != 0x8001 {
			t.Errorf("HL = 0x%04X, expected 0x8001", got)
		}
		if c.H != 0x80 || c.L != 0x01 {
			t.Error("expected the 16-bit write to land in the byte halves")
		}
	})

	t.Run("AFMasksLowNibble", func(t *testing.T) {
		c.SetRegister16(RegAF, 0x12FF)
		if got := c.Register16(RegAF); got != 0x12F0 {
			t.Errorf("AF = 0x%04X, expected 0x12F0", got)
		}
	})

	t.Run("SPAndPC", func(t *testing.T) {
		c.SetRegister16(RegSP, 0xD000)
		c.SetRegister16(RegPC, 0x0150)
		if c.SP != 0xD000 || c.PC != 0x0150 {
			t.Error("expected SP and PC to be settable through the accessors")
		}
	})
}

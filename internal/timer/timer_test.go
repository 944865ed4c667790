package timer

import (
	"testing"

	"github.com/dmgcore/sm83/internal/interrupts"
)

func newTestTimer() (*Controller, *interrupts.Service) {
	irq := interrupts.NewService()
	return NewController(irq), irq
}

func TestDivider(t *testing.T) {
	t.Run("Increments", func(t *testing.T) {
		c, _ := newTestTimer()
		// 64 machine cycles = 256 T-cycles = one DIV increment
		c.Tick(63)
		if got := c.ReadDivider(); got != 0 {
			t.Errorf("DIV = %d, expected 0 before 256 T-cycles", got)
		}
		c.Tick(1)
		if got := c.ReadDivider(); got != 1 {
			t.Errorf("DIV = %d, expected 1", got)
		}
	})
	t.Run("RunsWithTimerDisabled", func(t *testing.T) {
		c, _ := newTestTimer()
		c.WriteTAC(0x00)
		c.Tick(128)
		if got := c.ReadDivider(); got != 2 {
			t.Errorf("DIV = %d, expected the divider to run regardless of TAC", got)
		}
		if got := c.ReadTIMA(); got != 0 {
			t.Errorf("TIMA = %d, expected it frozen with the enable clear", got)
		}
	})
	t.Run("WriteResets", func(t *testing.T) {
		c, _ := newTestTimer()
		c.Tick(200)
		c.ResetDivider()
		if got := c.ReadDivider(); got != 0 {
			t.Errorf("DIV = %d, expected 0 after a reset", got)
		}
	})
}

func TestTIMA(t *testing.T) {
	// TAC clock select to TIMA period in machine cycles
	periods := map[uint8]uint8{
		0x01: 4,  // 16 T-cycles
		0x02: 16, // 64 T-cycles
		0x03: 64, // 256 T-cycles
	}
	for sel, period := range periods {
		c, _ := newTestTimer()
		c.WriteTAC(0x04 | sel)
		c.Tick(period - 1)
		if got := c.ReadTIMA(); got != 0 {
			t.Errorf("select %d: TIMA = %d, expected 0 one cycle early", sel, got)
		}
		c.Tick(1)
		if got := c.ReadTIMA(); got != 1 {
			t.Errorf("select %d: TIMA = %d, expected 1", sel, got)
		}
	}

	t.Run("SlowSelect", func(t *testing.T) {
		c, _ := newTestTimer()
		c.WriteTAC(0x04) // select 0, 1024 T-cycles
		c.Tick(255)
		if got := c.ReadTIMA(); got != 0 {
			t.Errorf("TIMA = %d, expected 0 one cycle early", got)
		}
		c.Tick(1)
		if got := c.ReadTIMA(); got != 1 {
			t.Errorf("TIMA = %d, expected 1", got)
		}
	})

	t.Run("MultipleIncrementsPerTick", func(t *testing.T) {
		c, _ := newTestTimer()
		c.WriteTAC(0x05) // 16 T-cycles per increment
		c.Tick(40)       // 160 T-cycles
		if got := c.ReadTIMA(); got != 10 {
			t.Errorf("TIMA = %d, expected 10", got)
		}
	})
}

func TestTIMAOverflow(t *testing.T) {
	c, irq := newTestTimer()
	irq.Enable = interrupts.TimerFlag
	c.WriteTAC(0x05) // 16 T-cycles per increment
	c.WriteTMA(0xAB)
	c.WriteTIMA(0xFF)

	c.Tick(4)
	if got := c.ReadTIMA(); got != 0xAB {
		t.Errorf("TIMA = 0x%02X, expected the TMA reload value", got)
	}
	if irq.Flag&interrupts.TimerFlag == 0 {
		t.Error("expected the overflow to request the timer interrupt")
	}
}

func TestRegisters(t *testing.T) {
	c, _ := newTestTimer()

	c.WriteTAC(0xFF)
	if got := c.ReadTAC(); got != 0xFF {
		t.Errorf("TAC = 0x%02X, expected the unused bits to read back set", got)
	}
	c.WriteTAC(0x00)
	if got := c.ReadTAC(); got != 0xF8 {
		t.Errorf("TAC = 0x%02X, expected 0xF8", got)
	}

	c.WriteTIMA(0x42)
	if got := c.ReadTIMA(); got != 0x42 {
		t.Errorf("TIMA = 0x%02X, expected 0x42", got)
	}
	c.WriteTMA(0x24)
	if got := c.ReadTMA(); got != 0x24 {
		t.Errorf("TMA = 0x%02X, expected 0x24", got)
	}
}

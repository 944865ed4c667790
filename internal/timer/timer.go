// Package timer implements the divider and timer registers: the
// free-running DIV counter and the configurable TIMA counter with its
// overflow interrupt.
package timer

import (
	"github.com/dmgcore/sm83/internal/interrupts"
	"github.com/dmgcore/sm83/pkg/bits"
)

// timaPeriods holds the TIMA input period in T-cycles for each of the
// four TAC clock selects.
var timaPeriods = [4]uint16{1024, 16, 64, 256}

// Controller implements the divider and timer registers. It is driven
// in machine cycles by the core's step loop; each machine cycle is four
// T-cycles of the internal divider.
type Controller struct {
	// divider is the internal 16-bit counter; the DIV register exposes
	// its high byte.
	divider uint16

	tima uint8
	tma  uint8
	tac  uint8

	// accumulated T-cycles towards the next TIMA increment
	accumulator uint16

	irq *interrupts.Service
}

// NewController creates a timer Controller raising its overflow
// interrupt on the given Service.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{irq: irq}
}

// Reset returns the timer to its power-on state.
func (c *Controller) Reset() {
	c.divider = 0
	c.tima = 0
	c.tma = 0
	c.tac = 0
	c.accumulator = 0
}

// Tick advances the timer by the given number of machine cycles. The
// divider always runs; TIMA is stepped only while the TAC enable bit is
// set, at the rate its clock select chooses, reloading from TMA and
// raising the timer interrupt on overflow.
func (c *Controller) Tick(machineCycles uint8) {
	tCycles := uint16(machineCycles) * 4
	c.divider += tCycles

	if !bits.Test(c.tac, 2) {
		return
	}

	c.accumulator += tCycles
	period := timaPeriods[c.tac&0x03]
	for c.accumulator >= period {
		c.accumulator -= period
		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.TimerFlag)
		}
	}
}

// ResetDivider zeroes the internal divider counter. Writing any value
// to DIV does this, as does executing STOP.
func (c *Controller) ResetDivider() {
	c.divider = 0
}

// ReadDivider returns the DIV register, the high byte of the internal
// counter.
func (c *Controller) ReadDivider() uint8 {
	return uint8(c.divider >> 8)
}

// ReadTIMA returns the TIMA register.
func (c *Controller) ReadTIMA() uint8 { return c.tima }

// WriteTIMA sets the TIMA register.
func (c *Controller) WriteTIMA(value uint8) { c.tima = value }

// ReadTMA returns the TMA register.
func (c *Controller) ReadTMA() uint8 { return c.tma }

// WriteTMA sets the TMA register.
func (c *Controller) WriteTMA(value uint8) { c.tma = value }

// ReadTAC returns the TAC register; the unused high bits read back
// as 1.
func (c *Controller) ReadTAC() uint8 { return c.tac | 0xF8 }

// WriteTAC sets the TAC register, keeping the enable bit and clock
// select.
func (c *Controller) WriteTAC(value uint8) { c.tac = value & 0x07 }

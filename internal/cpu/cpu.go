// Package cpu implements the SM83 core: registers and flags, the base
// and CB-prefixed instruction tables, and the step loop that ties
// instruction execution to the timer and interrupt controller.
//
// The core is deliberately unaware of what sits behind the memory bus;
// it reads and writes through the Bus interface and never touches
// peripheral internals.
package cpu

import (
	"github.com/dmgcore/sm83/internal/interrupts"
	"github.com/dmgcore/sm83/internal/timer"
)

const (
	// ClockSpeed is the clock speed of the CPU in T-cycles per second.
	ClockSpeed = 4194304

	// interruptDispatchCycles is the fixed cost, in machine cycles, of
	// acknowledging an interrupt and jumping to its vector.
	interruptDispatchCycles = 5
)

// Bus is the memory interface the core executes against: a flat
// 64 KiB byte-addressable space. Address-region dispatch, peripheral
// side effects and open-bus behavior are all the implementation's
// concern; reads never fail, they return whatever the bus defines
// (typically 0xFF for unmapped addresses).
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the SM83 core. It owns the register bank and the
// halt/stop latches; the interrupt controller and timer are passed in
// so multiple independent cores can be constructed for testing.
type CPU struct {
	// PC is the program counter, it points to the next instruction to
	// be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers and the register pairs.
	Registers

	b     Bus
	irq   *interrupts.Service
	timer *timer.Controller

	halted  bool
	stopped bool

	// machine cycles consumed by the step in progress
	ticks uint8
}

// New creates a CPU executing against the given bus, interrupt
// controller and timer.
func New(b Bus, irq *interrupts.Service, t *timer.Controller) *CPU {
	c := &CPU{
		b:     b,
		irq:   irq,
		timer: t,
	}
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F}

	return c
}

// Reset returns the core to its power-on state. With skipBootstrap the
// registers are primed to the documented DMG post-boot values instead,
// for running programs without a boot ROM.
func (c *CPU) Reset(skipBootstrap bool) {
	c.A, c.F = 0x00, 0x00
	c.B, c.C = 0x00, 0x00
	c.D, c.E = 0x00, 0x00
	c.H, c.L = 0x00, 0x00
	c.SP = 0x0000
	c.PC = 0x0000

	if skipBootstrap {
		c.A, c.F = 0x01, 0xB0
		c.B, c.C = 0x00, 0x13
		c.D, c.E = 0x00, 0xD8
		c.H, c.L = 0x01, 0x4D
		c.SP = 0xFFFE
		c.PC = 0x0100
	}

	c.halted = false
	c.stopped = false
	c.irq.Reset()
	c.timer.Reset()
}

// Halted returns true while the core is in the HALT low-power state.
func (c *CPU) Halted() bool { return c.halted }

// Stopped returns true while the core is in the STOP low-power state.
func (c *CPU) Stopped() bool { return c.stopped }

// Step executes one instruction (or one idle machine cycle while
// halted or stopped), drives the timer with the cycles consumed, then
// runs interrupt dispatch unless the instruction just executed was EI.
// It returns the total machine cycles consumed, which the caller also
// feeds to the peripheral subsystems it drives.
func (c *CPU) Step() uint8 {
	c.ticks = 0
	eiExecuted := false

	if c.halted || c.stopped {
		c.ticks = 1
	} else {
		opcode := c.readInstruction()
		ins := &InstructionSet[opcode]
		c.ticks += ins.cycles
		ins.fn(c)
		eiExecuted = opcode == 0xFB
	}

	c.timer.Tick(c.ticks)

	// any enabled-and-pending interrupt wakes the core, whether or not
	// the IME would allow it to be dispatched
	if (c.halted || c.stopped) && c.irq.HasPending() {
		c.halted = false
		c.stopped = false
	}

	if eiExecuted {
		// EI takes effect one instruction late; dispatch is suppressed
		// for this step and the enable is promoted by the next one
		c.irq.Enabling = true
	} else {
		if c.irq.Enabling {
			c.irq.Enabling = false
			c.irq.IME = true
		}
		if c.irq.IME && c.irq.HasPending() {
			c.dispatchInterrupt()
		}
	}

	return c.ticks
}

// dispatchInterrupt acknowledges the highest-priority pending
// interrupt: its flag bit is cleared, the IME drops, the resume address
// is pushed and the PC redirected to the vector.
func (c *CPU) dispatchInterrupt() {
	vector := c.irq.Vector()
	c.irq.IME = false
	c.halted = false
	c.stopped = false

	c.pushStack(c.PC)
	c.PC = vector

	c.ticks += interruptDispatchCycles
	c.timer.Tick(interruptDispatchCycles)
}

// readInstruction reads the next instruction byte from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand byte from memory. The same as
// readInstruction; the distinction keeps call sites self-describing.
func (c *CPU) readOperand() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian 16-bit operand from memory.
func (c *CPU) readOperand16() uint16 {
	low := uint16(c.readOperand())
	high := uint16(c.readOperand())
	return high<<8 | low
}

// readByte reads a byte from memory.
func (c *CPU) readByte(address uint16) uint8 {
	return c.b.Read(address)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(address uint16, value uint8) {
	c.b.Write(address, value)
}

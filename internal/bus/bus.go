// Package bus implements the 64 KiB memory space the core executes
// against: flat RAM with per-address read and write handlers layered on
// top for the IO registers, and a serial port capture for programs that
// report through the link cable.
package bus

import (
	"github.com/dmgcore/sm83/internal/interrupts"
	"github.com/dmgcore/sm83/internal/timer"
	"github.com/dmgcore/sm83/pkg/bits"
	"github.com/dmgcore/sm83/pkg/log"
)

// IO register addresses handled by the bus.
const (
	SB   uint16 = 0xFF01 // serial transfer data
	SC   uint16 = 0xFF02 // serial transfer control
	DIV  uint16 = 0xFF04 // divider register
	TIMA uint16 = 0xFF05 // timer counter
	TMA  uint16 = 0xFF06 // timer modulo
	TAC  uint16 = 0xFF07 // timer control
	IF   uint16 = 0xFF0F // interrupt flag
	IE   uint16 = 0xFFFF // interrupt enable
)

// ioStart marks the beginning of the IO register region. Reads below it
// always hit RAM; reads at or above it go through handlers and fall
// back to open bus.
const ioStart uint16 = 0xFF00

// ReadHandler intercepts a read of a single address.
type ReadHandler func() uint8

// WriteHandler intercepts a write to a single address.
type WriteHandler func(value uint8)

// Bus is a flat 64 KiB memory with address-keyed handlers over the IO
// region. Unhandled IO addresses read back as open bus (0xFF) and
// swallow writes; everything below the IO region is plain RAM, loaded
// programs included.
type Bus struct {
	memory [0x10000]uint8

	readHandlers  map[uint16]ReadHandler
	writeHandlers map[uint16]WriteHandler

	serialLatch uint8
	serialSink  func(uint8)

	log log.Logger
}

// New creates an empty Bus.
func New(l log.Logger) *Bus {
	return &Bus{
		readHandlers:  make(map[uint16]ReadHandler),
		writeHandlers: make(map[uint16]WriteHandler),
		log:           l,
	}
}

// Read returns the byte at the given address. IO addresses dispatch to
// their registered handler, or open bus when none is registered.
func (b *Bus) Read(address uint16) uint8 {
	if address >= ioStart {
		if handler, ok := b.readHandlers[address]; ok {
			return handler()
		}
		if address < 0xFF80 {
			return 0xFF
		}
	}
	return b.memory[address]
}

// Write stores the byte at the given address. IO addresses dispatch to
// their registered handler; unhandled IO writes are dropped.
func (b *Bus) Write(address uint16, value uint8) {
	if address >= ioStart {
		if handler, ok := b.writeHandlers[address]; ok {
			handler(value)
			return
		}
		if address < 0xFF80 {
			b.log.Debugf("bus: dropped write 0x%02X to unmapped IO 0x%04X", value, address)
			return
		}
	}
	b.memory[address] = value
}

// RegisterRead installs a read handler for a single IO address.
func (b *Bus) RegisterRead(address uint16, handler ReadHandler) {
	b.readHandlers[address] = handler
}

// RegisterWrite installs a write handler for a single IO address.
func (b *Bus) RegisterWrite(address uint16, handler WriteHandler) {
	b.writeHandlers[address] = handler
}

// LoadProgram copies the given bytes into memory starting at the given
// address.
func (b *Bus) LoadProgram(address uint16, program []uint8) {
	copy(b.memory[address:], program)
}

// MapInterrupts wires the IF and IE registers to the given interrupt
// Service.
func (b *Bus) MapInterrupts(irq *interrupts.Service) {
	b.RegisterRead(IF, irq.ReadFlag)
	b.RegisterWrite(IF, irq.WriteFlag)
	b.RegisterRead(IE, irq.ReadEnable)
	b.RegisterWrite(IE, irq.WriteEnable)
}

// MapTimer wires the DIV, TIMA, TMA and TAC registers to the given
// timer Controller. Writes to DIV reset the divider regardless of the
// value written.
func (b *Bus) MapTimer(t *timer.Controller) {
	b.RegisterRead(DIV, t.ReadDivider)
	b.RegisterWrite(DIV, func(uint8) { t.ResetDivider() })
	b.RegisterRead(TIMA, t.ReadTIMA)
	b.RegisterWrite(TIMA, t.WriteTIMA)
	b.RegisterRead(TMA, t.ReadTMA)
	b.RegisterWrite(TMA, t.WriteTMA)
	b.RegisterRead(TAC, t.ReadTAC)
	b.RegisterWrite(TAC, t.WriteTAC)
}

// MapSerial wires the SB and SC registers. A write to SC with bit 7 set
// starts a transfer: the latched SB byte is delivered to the sink, the
// transfer completes immediately with no link partner so SB reads back
// 0xFF, and the serial interrupt is requested. Test programs report
// their results this way.
func (b *Bus) MapSerial(irq *interrupts.Service, sink func(uint8)) {
	b.serialSink = sink
	b.RegisterRead(SB, func() uint8 { return b.serialLatch })
	b.RegisterWrite(SB, func(value uint8) { b.serialLatch = value })
	b.RegisterRead(SC, func() uint8 { return 0x7E })
	b.RegisterWrite(SC, func(value uint8) {
		if !bits.Test(value, 7) {
			return
		}
		if b.serialSink != nil {
			b.serialSink(b.serialLatch)
		}
		b.serialLatch = 0xFF
		irq.Request(interrupts.SerialFlag)
	})
}

package bus

import (
	"testing"

	"github.com/dmgcore/sm83/internal/interrupts"
	"github.com/dmgcore/sm83/internal/timer"
	"github.com/dmgcore/sm83/pkg/log"
)

func newTestBus() *Bus {
	return New(log.NewNullLogger())
}

func TestMemory(t *testing.T) {
	b := newTestBus()

	b.Write(0xC000, 0x42)
	if got := b.Read(0xC000); got != 0x42 {
		t.Errorf("read = 0x%02X, expected 0x42", got)
	}

	t.Run("LoadProgram", func(t *testing.T) {
		b.LoadProgram(0x0100, []uint8{0x01, 0x02, 0x03})
		if b.Read(0x0100) != 0x01 || b.Read(0x0102) != 0x03 {
			t.Error("expected the program bytes at the load address")
		}
	})

	t.Run("HighRAM", func(t *testing.T) {
		b.Write(0xFF80, 0x5A)
		if got := b.Read(0xFF80); got != 0x5A {
			t.Errorf("read = 0x%02X, expected high RAM to be plain memory", got)
		}
	})
}

func TestOpenBus(t *testing.T) {
	b := newTestBus()

	if got := b.Read(0xFF40); got != 0xFF {
		t.Errorf("read = 0x%02X, expected unmapped IO to read open bus", got)
	}

	// unmapped IO writes are dropped, not stored
	b.Write(0xFF40, 0x12)
	if got := b.Read(0xFF40); got != 0xFF {
		t.Errorf("read = 0x%02X, expected the write to be dropped", got)
	}
}

func TestHandlers(t *testing.T) {
	b := newTestBus()

	var stored uint8
	b.RegisterRead(0xFF40, func() uint8 { return 0x99 })
	b.RegisterWrite(0xFF40, func(value uint8) { stored = value })

	if got := b.Read(0xFF40); got != 0x99 {
		t.Errorf("read = 0x%02X, expected the handler value", got)
	}
	b.Write(0xFF40, 0x55)
	if stored != 0x55 {
		t.Errorf("stored = 0x%02X, expected the write handler to receive 0x55", stored)
	}
}

func TestMapTimer(t *testing.T) {
	irq := interrupts.NewService()
	tmr := timer.NewController(irq)
	b := newTestBus()
	b.MapTimer(tmr)

	tmr.Tick(64)
	if got := b.Read(DIV); got != 1 {
		t.Errorf("DIV = %d, expected 1", got)
	}

	// a DIV write resets the counter regardless of the value
	b.Write(DIV, 0x7F)
	if got := b.Read(DIV); got != 0 {
		t.Errorf("DIV = %d, expected 0 after a write", got)
	}

	b.Write(TIMA, 0x10)
	b.Write(TMA, 0x20)
	b.Write(TAC, 0x05)
	if b.Read(TIMA) != 0x10 || b.Read(TMA) != 0x20 {
		t.Error("expected TIMA and TMA to round-trip")
	}
	if got := b.Read(TAC); got != 0xFD {
		t.Errorf("TAC = 0x%02X, expected 0xFD", got)
	}
}

func TestMapInterrupts(t *testing.T) {
	irq := interrupts.NewService()
	b := newTestBus()
	b.MapInterrupts(irq)

	b.Write(IE, 0x1F)
	if got := b.Read(IE); got != 0x1F {
		t.Errorf("IE = 0x%02X, expected 0x1F", got)
	}

	irq.Request(interrupts.TimerFlag)
	if got := b.Read(IF); got != 0xE0|uint8(interrupts.TimerFlag) {
		t.Errorf("IF = 0x%02X, expected the request visible with high bits set", got)
	}

	b.Write(IF, 0x00)
	if irq.Flag != 0 {
		t.Error("expected an IF write to clear the request bits")
	}
}

func TestMapSerial(t *testing.T) {
	irq := interrupts.NewService()
	b := newTestBus()

	var captured []uint8
	b.MapSerial(irq, func(value uint8) { captured = append(captured, value) })

	// latch a byte and start a transfer
	b.Write(SB, 'P')
	b.Write(SC, 0x81)
	if len(captured) != 1 || captured[0] != 'P' {
		t.Fatalf("captured = %v, expected the latched byte delivered", captured)
	}
	if got := b.Read(SB); got != 0xFF {
		t.Errorf("SB = 0x%02X, expected 0xFF with no link partner", got)
	}
	if irq.Flag&interrupts.SerialFlag == 0 {
		t.Error("expected the transfer to request the serial interrupt")
	}

	// a control write without the start bit does nothing
	b.Write(SB, 'x')
	b.Write(SC, 0x01)
	if len(captured) != 1 {
		t.Error("expected no transfer without the start bit")
	}
}

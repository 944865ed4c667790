// Package interrupts provides the interrupt controller: the IF and IE
// registers, the master enable with its delayed EI semantics, and the
// fixed-priority vector selection the core dispatches through.
package interrupts

import "github.com/dmgcore/sm83/pkg/bits"

const (
	// VBlankFlag is requested once per frame when the PPU enters the
	// vertical blanking period.
	VBlankFlag uint8 = 1 << 0
	// LCDFlag is requested by the PPU's configurable STAT conditions.
	LCDFlag uint8 = 1 << 1
	// TimerFlag is requested when the TIMA counter overflows.
	TimerFlag uint8 = 1 << 2
	// SerialFlag is requested when a serial transfer completes.
	SerialFlag uint8 = 1 << 3
	// JoypadFlag is requested on a button press.
	JoypadFlag uint8 = 1 << 4
)

// Vector addresses by request bit, lowest bit first.
const (
	VBlankVector uint16 = 0x0040
	LCDVector    uint16 = 0x0048
	TimerVector  uint16 = 0x0050
	SerialVector uint16 = 0x0058
	JoypadVector uint16 = 0x0060
)

// Service owns the interrupt state shared between the core and the
// peripherals: peripherals raise request bits through Request, the core
// consults HasPending and Vector during dispatch, and the bus maps
// the Flag and Enable registers at 0xFF0F and 0xFFFF.
type Service struct {
	// Flag is the IF register, one pending bit per source.
	Flag uint8
	// Enable is the IE register, one enable bit per source.
	Enable uint8

	// IME is the master enable. It gates dispatch only; pending bits
	// accumulate regardless.
	IME bool
	// Enabling is latched by EI and promoted to IME one instruction
	// later by the step loop.
	Enabling bool
}

// NewService creates a new interrupt Service with everything cleared.
func NewService() *Service {
	return &Service{}
}

// Reset clears all pending and enable bits and drops the master enable.
func (s *Service) Reset() {
	s.Flag = 0
	s.Enable = 0
	s.IME = false
	s.Enabling = false
}

// Request raises the pending bit for the given interrupt flag.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// HasPending reports whether any interrupt is both requested and
// enabled. This is the wake condition for HALT and STOP, and with the
// IME set, the dispatch condition.
func (s *Service) HasPending() bool {
	return s.Flag&s.Enable&0x1F != 0
}

// Vector acknowledges the highest-priority pending interrupt: its
// pending bit is cleared and its handler address returned. Priority
// runs from bit 0 (VBlank) down to bit 4 (Joypad). Vector must only be
// called when HasPending reports true.
func (s *Service) Vector() uint16 {
	for i := uint8(0); i < 5; i++ {
		if bits.Test(s.Flag&s.Enable, i) {
			s.Flag = bits.Reset(s.Flag, i)
			return 0x0040 + uint16(i)*8
		}
	}
	return 0
}

// ReadFlag returns the IF register as seen on the bus; the unused high
// bits read back as 1.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | 0xE0
}

// WriteFlag sets the IF register from a bus write, keeping only the
// five request bits.
func (s *Service) WriteFlag(value uint8) {
	s.Flag = value & 0x1F
}

// ReadEnable returns the IE register.
func (s *Service) ReadEnable() uint8 {
	return s.Enable
}

// WriteEnable sets the IE register from a bus write.
func (s *Service) WriteEnable(value uint8) {
	s.Enable = value
}

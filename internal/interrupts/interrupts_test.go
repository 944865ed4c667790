package interrupts

import "testing"

func TestRequest(t *testing.T) {
	s := NewService()
	s.Request(TimerFlag)
	s.Request(SerialFlag)
	if s.Flag != TimerFlag|SerialFlag {
		t.Errorf("Flag = 0x%02X, expected both request bits", s.Flag)
	}
}

func TestHasPending(t *testing.T) {
	s := NewService()
	if s.HasPending() {
		t.Error("expected nothing pending on a fresh service")
	}

	s.Request(VBlankFlag)
	if s.HasPending() {
		t.Error("expected a request without its enable bit to not be pending")
	}

	s.Enable = VBlankFlag
	if !s.HasPending() {
		t.Error("expected a requested and enabled interrupt to be pending")
	}

	// the IME plays no part in pending
	s.IME = true
	if !s.HasPending() {
		t.Error("expected pending to ignore the IME")
	}
}

func TestVector(t *testing.T) {
	tests := []struct {
		name   string
		flag   uint8
		vector uint16
	}{
		{name: "VBlank", flag: VBlankFlag, vector: VBlankVector},
		{name: "LCD", flag: LCDFlag, vector: LCDVector},
		{name: "Timer", flag: TimerFlag, vector: TimerVector},
		{name: "Serial", flag: SerialFlag, vector: SerialVector},
		{name: "Joypad", flag: JoypadFlag, vector: JoypadVector},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService()
			s.Enable = 0x1F
			s.Request(tt.flag)
			if got := s.Vector(); got != tt.vector {
				t.Errorf("Vector() = 0x%04X, expected 0x%04X", got, tt.vector)
			}
			if s.Flag&tt.flag != 0 {
				t.Error("expected the acknowledged bit to be cleared")
			}
		})
	}

	t.Run("Priority", func(t *testing.T) {
		s := NewService()
		s.Enable = 0x1F
		s.Request(JoypadFlag)
		s.Request(LCDFlag)
		if got := s.Vector(); got != LCDVector {
			t.Errorf("Vector() = 0x%04X, expected the lower bit to win", got)
		}
		if s.Flag&JoypadFlag == 0 {
			t.Error("expected the losing request to stay pending")
		}
	})

	t.Run("SkipsDisabled", func(t *testing.T) {
		s := NewService()
		s.Enable = TimerFlag
		s.Request(VBlankFlag)
		s.Request(TimerFlag)
		if got := s.Vector(); got != TimerVector {
			t.Errorf("Vector() = 0x%04X, expected the disabled VBlank skipped", got)
		}
		if s.Flag&VBlankFlag == 0 {
			t.Error("expected the disabled request to stay pending")
		}
	})
}

func TestRegisterViews(t *testing.T) {
	s := NewService()

	s.WriteFlag(0xFF)
	if s.Flag != 0x1F {
		t.Errorf("Flag = 0x%02X, expected only the five request bits kept", s.Flag)
	}
	if got := s.ReadFlag(); got != 0xFF {
		t.Errorf("ReadFlag() = 0x%02X, expected the unused bits to read back set", got)
	}

	s.WriteEnable(0xAB)
	if got := s.ReadEnable(); got != 0xAB {
		t.Errorf("ReadEnable() = 0x%02X, expected 0xAB", got)
	}
}

func TestReset(t *testing.T) {
	s := NewService()
	s.Request(VBlankFlag)
	s.Enable = 0x1F
	s.IME = true
	s.Enabling = true

	s.Reset()
	if s.Flag != 0 || s.Enable != 0 || s.IME || s.Enabling {
		t.Error("expected Reset to clear all interrupt state")
	}
}

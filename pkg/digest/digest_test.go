package digest

import (
	"testing"

	"github.com/dmgcore/sm83/internal/cpu"
)

func TestDeterministic(t *testing.T) {
	states := []cpu.Snapshot{
		{A: 0x01, F: 0xB0, SP: 0xFFFE, PC: 0x0100},
		{A: 0x02, F: 0x00, SP: 0xFFFC, PC: 0x0103, IME: true},
		{A: 0x02, B: 0xFF, SP: 0xFFFC, PC: 0x0104, Halted: true},
	}

	a, b := New(), New()
	for _, s := range states {
		a.Add(s, 1)
		b.Add(s, 1)
	}
	if a.Sum64() != b.Sum64() {
		t.Error("expected identical sequences to produce identical digests")
	}
}

func TestSensitivity(t *testing.T) {
	base := cpu.Snapshot{A: 0x01, SP: 0xFFFE, PC: 0x0100}

	reference := New()
	reference.Add(base, 1)

	t.Run("Register", func(t *testing.T) {
		d := New()
		changed := base
		changed.A = 0x02
		d.Add(changed, 1)
		if d.Sum64() == reference.Sum64() {
			t.Error("expected a register change to change the digest")
		}
	})
	t.Run("Cycles", func(t *testing.T) {
		d := New()
		d.Add(base, 2)
		if d.Sum64() == reference.Sum64() {
			t.Error("expected a cycle count change to change the digest")
		}
	})
	t.Run("Mode", func(t *testing.T) {
		d := New()
		changed := base
		changed.Halted = true
		d.Add(changed, 1)
		if d.Sum64() == reference.Sum64() {
			t.Error("expected a mode change to change the digest")
		}
	})
}

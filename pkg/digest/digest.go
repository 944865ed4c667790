// Package digest fingerprints an execution. Feeding the register state
// after every step into a running xxhash yields a single value that two
// runs of the same program agree on, which makes regressions cheap to
// detect without storing full traces.
package digest

import (
	"hash"

	"github.com/cespare/xxhash"

	"github.com/dmgcore/sm83/internal/cpu"
)

// Digest accumulates CPU state snapshots into a running hash.
type Digest struct {
	h hash.Hash64
}

// New returns an empty Digest.
func New() *Digest {
	return &Digest{h: xxhash.New()}
}

// Add folds one state snapshot and the cycles its step consumed into
// the hash.
func (d *Digest) Add(s cpu.Snapshot, cycles uint8) {
	var buf [14]byte
	buf[0] = s.A
	buf[1] = s.F
	buf[2] = s.B
	buf[3] = s.C
	buf[4] = s.D
	buf[5] = s.E
	buf[6] = s.H
	buf[7] = s.L
	buf[8] = uint8(s.SP >> 8)
	buf[9] = uint8(s.SP)
	buf[10] = uint8(s.PC >> 8)
	buf[11] = uint8(s.PC)
	buf[12] = packFlags(s)
	buf[13] = cycles
	d.h.Write(buf[:])
}

// Sum64 returns the hash of everything added so far.
func (d *Digest) Sum64() uint64 {
	return d.h.Sum64()
}

func packFlags(s cpu.Snapshot) uint8 {
	var b uint8
	if s.IME {
		b |= 1 << 0
	}
	if s.Halted {
		b |= 1 << 1
	}
	if s.Stopped {
		b |= 1 << 2
	}
	return b
}

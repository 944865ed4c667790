package cpu

import "fmt"

// IllegalOpcodeError is raised (by panic) when the core fetches one of
// the opcodes the instruction map leaves unassigned. Execution cannot
// meaningfully continue past one of these; real hardware locks up. The
// error carries the opcode and the address it was fetched from so
// malformed programs can be diagnosed.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

package cpu

import "fmt"

// InstructionSetCB holds the 256 CB-prefixed instructions. The table
// is entirely regular: eight rotate and shift families over 0x00-0x3F,
// then BIT, RES and SET against every source and bit position. It is
// generated rather than spelt out.
var InstructionSetCB [256]Instruction

func init() {
	generateRotateInstructions()
	generateBitInstructions()
}

// generateRotateInstructions fills 0x00-0x3F: RLC, RRC, RL, RR, SLA,
// SRA, SWAP and SRL against each of the eight sources.
func generateRotateInstructions() {
	ops := [8]struct {
		name string
		fn   func(*CPU, uint8) uint8
	}{
		{"RLC", (*CPU).rotateLeftCarry},
		{"RRC", (*CPU).rotateRightCarry},
		{"RL", (*CPU).rotateLeft},
		{"RR", (*CPU).rotateRight},
		{"SLA", (*CPU).shiftLeftArithmetic},
		{"SRA", (*CPU).shiftRightArithmetic},
		{"SWAP", (*CPU).swap},
		{"SRL", (*CPU).shiftRightLogical},
	}

	for opcode := uint16(0x00); opcode <= 0x3F; opcode++ {
		op := ops[uint8(opcode>>3)&0x7]
		src := uint8(opcode) & 0x7

		cycles := uint8(2)
		if src == 6 {
			cycles = 4
		}
		fn := op.fn
		InstructionSetCB[opcode] = Instruction{
			name:   op.name + " " + sourceNames[src],
			cycles: cycles,
			fn:     func(c *CPU) { c.writeSource(src, fn(c, c.readSource(src))) },
		}
	}
}

// generateBitInstructions fills 0x40-0xFF: BIT, RES and SET for every
// bit position and source. BIT only reads its source, so its (HL) form
// skips the writeback cycle the other two pay for.
func generateBitInstructions() {
	for opcode := uint16(0x40); opcode <= 0xFF; opcode++ {
		src := uint8(opcode) & 0x7
		position := uint8(opcode>>3) & 0x7

		switch {
		case opcode <= 0x7F:
			cycles := uint8(2)
			if src == 6 {
				cycles = 3
			}
			InstructionSetCB[opcode] = Instruction{
				name:   fmt.Sprintf("BIT %d, %s", position, sourceNames[src]),
				cycles: cycles,
				fn:     func(c *CPU) { c.testBit(c.readSource(src), position) },
			}
		case opcode <= 0xBF:
			cycles := uint8(2)
			if src == 6 {
				cycles = 4
			}
			InstructionSetCB[opcode] = Instruction{
				name:   fmt.Sprintf("RES %d, %s", position, sourceNames[src]),
				cycles: cycles,
				fn:     func(c *CPU) { c.writeSource(src, c.resetBit(c.readSource(src), position)) },
			}
		default:
			cycles := uint8(2)
			if src == 6 {
				cycles = 4
			}
			InstructionSetCB[opcode] = Instruction{
				name:   fmt.Sprintf("SET %d, %s", position, sourceNames[src]),
				cycles: cycles,
				fn:     func(c *CPU) { c.writeSource(src, c.setBit(c.readSource(src), position)) },
			}
		}
	}
}

package cpu

import "fmt"

// Instruction is one entry of the decode tables: a mnemonic, the base
// cost in machine cycles, and the function that executes it. The base
// cost is the not-taken cost for conditional branches; the branch
// helpers add the extra cycles when the branch is taken. Operations own
// their PC advancement: operand reads move the PC and the jump family
// rewrites it outright, so there is no generic instruction-length
// bookkeeping anywhere.
type Instruction struct {
	name   string
	cycles uint8
	fn     func(*CPU)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string { return i.name }

// Cycles returns the base cost of the instruction in machine cycles.
func (i Instruction) Cycles() uint8 { return i.cycles }

// illegalOpcode builds the table entry for an opcode the instruction
// map leaves unassigned. Executing one is fatal: the entry panics with
// an IllegalOpcodeError carrying the opcode and its fetch address.
func illegalOpcode(opcode uint8) Instruction {
	return Instruction{
		name:   fmt.Sprintf("ILLEGAL 0x%02X", opcode),
		cycles: 1,
		fn: func(c *CPU) {
			panic(IllegalOpcodeError{Opcode: opcode, PC: c.PC - 1})
		},
	}
}

// InstructionSet holds the 256 base-table instructions. The regular
// blocks, LD r, r' (0x40-0x7F) and the ALU block (0x80-0xBF), are
// filled in by init from their shared opcode structure; everything
// here is data, nothing is recomputed at execution time.
var InstructionSet = [256]Instruction{
	0x00: {"NOP", 1, func(c *CPU) {}},
	0x01: {"LD BC, d16", 3, func(c *CPU) { c.loadRegister16(c.BC) }},
	0x02: {"LD (BC), A", 2, func(c *CPU) { c.loadRegisterToMemory(c.A, c.BC.Uint16()) }},
	0x03: {"INC BC", 2, func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() + 1) }},
	0x04: {"INC B", 1, func(c *CPU) { c.B = c.increment(c.B) }},
	0x05: {"DEC B", 1, func(c *CPU) { c.B = c.decrement(c.B) }},
	0x06: {"LD B, d8", 2, func(c *CPU) { c.loadRegister8(&c.B) }},
	0x07: {"RLCA", 1, func(c *CPU) { c.rotateLeftCarryAccumulator() }},
	0x08: {"LD (a16), SP", 5, func(c *CPU) {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP))
		c.writeByte(address+1, uint8(c.SP>>8))
	}},
	0x09: {"ADD HL, BC", 2, func(c *CPU) { c.addHL(c.BC.Uint16()) }},
	0x0A: {"LD A, (BC)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.BC.Uint16()) }},
	0x0B: {"DEC BC", 2, func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() - 1) }},
	0x0C: {"INC C", 1, func(c *CPU) { c.C = c.increment(c.C) }},
	0x0D: {"DEC C", 1, func(c *CPU) { c.C = c.decrement(c.C) }},
	0x0E: {"LD C, d8", 2, func(c *CPU) { c.loadRegister8(&c.C) }},
	0x0F: {"RRCA", 1, func(c *CPU) { c.rotateRightCarryAccumulator() }},

	0x10: {"STOP", 1, func(c *CPU) {
		c.stopped = true
		c.timer.ResetDivider()
		c.PC++ // STOP carries a padding byte
	}},
	0x11: {"LD DE, d16", 3, func(c *CPU) { c.loadRegister16(c.DE) }},
	0x12: {"LD (DE), A", 2, func(c *CPU) { c.loadRegisterToMemory(c.A, c.DE.Uint16()) }},
	0x13: {"INC DE", 2, func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() + 1) }},
	0x14: {"INC D", 1, func(c *CPU) { c.D = c.increment(c.D) }},
	0x15: {"DEC D", 1, func(c *CPU) { c.D = c.decrement(c.D) }},
	0x16: {"LD D, d8", 2, func(c *CPU) { c.loadRegister8(&c.D) }},
	0x17: {"RLA", 1, func(c *CPU) { c.rotateLeftAccumulator() }},
	0x18: {"JR r8", 2, func(c *CPU) { c.jumpRelative(true) }},
	0x19: {"ADD HL, DE", 2, func(c *CPU) { c.addHL(c.DE.Uint16()) }},
	0x1A: {"LD A, (DE)", 2, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.DE.Uint16()) }},
	0x1B: {"DEC DE", 2, func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() - 1) }},
	0x1C: {"INC E", 1, func(c *CPU) { c.E = c.increment(c.E) }},
	0x1D: {"DEC E", 1, func(c *CPU) { c.E = c.decrement(c.E) }},
	0x1E: {"LD E, d8", 2, func(c *CPU) { c.loadRegister8(&c.E) }},
	0x1F: {"RRA", 1, func(c *CPU) { c.rotateRightAccumulator() }},

	0x20: {"JR NZ, r8", 2, func(c *CPU) { c.jumpRelative(!c.IsFlagSet(FlagZero)) }},
	0x21: {"LD HL, d16", 3, func(c *CPU) { c.loadRegister16(c.HL) }},
	0x22: {"LD (HL+), A", 2, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}},
	0x23: {"INC HL", 2, func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() + 1) }},
	0x24: {"INC H", 1, func(c *CPU) { c.H = c.increment(c.H) }},
	0x25: {"DEC H", 1, func(c *CPU) { c.H = c.decrement(c.H) }},
	0x26: {"LD H, d8", 2, func(c *CPU) { c.loadRegister8(&c.H) }},
	0x27: {"DAA", 1, func(c *CPU) { c.decimalAdjust() }},
	0x28: {"JR Z, r8", 2, func(c *CPU) { c.jumpRelative(c.IsFlagSet(FlagZero)) }},
	0x29: {"ADD HL, HL", 2, func(c *CPU) { c.addHL(c.HL.Uint16()) }},
	0x2A: {"LD A, (HL+)", 2, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}},
	0x2B: {"DEC HL", 2, func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() - 1) }},
	0x2C: {"INC L", 1, func(c *CPU) { c.L = c.increment(c.L) }},
	0x2D: {"DEC L", 1, func(c *CPU) { c.L = c.decrement(c.L) }},
	0x2E: {"LD L, d8", 2, func(c *CPU) { c.loadRegister8(&c.L) }},
	0x2F: {"CPL", 1, func(c *CPU) { c.complement() }},

	0x30: {"JR NC, r8", 2, func(c *CPU) { c.jumpRelative(!c.IsFlagSet(FlagCarry)) }},
	0x31: {"LD SP, d16", 3, func(c *CPU) { c.SP = c.readOperand16() }},
	0x32: {"LD (HL-), A", 2, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}},
	0x33: {"INC SP", 2, func(c *CPU) { c.SP++ }},
	0x34: {"INC (HL)", 3, func(c *CPU) { c.writeByte(c.HL.Uint16(), c.increment(c.readByte(c.HL.Uint16()))) }},
	0x35: {"DEC (HL)", 3, func(c *CPU) { c.writeByte(c.HL.Uint16(), c.decrement(c.readByte(c.HL.Uint16()))) }},
	0x36: {"LD (HL), d8", 3, func(c *CPU) { c.writeByte(c.HL.Uint16(), c.readOperand()) }},
	0x37: {"SCF", 1, func(c *CPU) { c.setCarryFlag() }},
	0x38: {"JR C, r8", 2, func(c *CPU) { c.jumpRelative(c.IsFlagSet(FlagCarry)) }},
	0x39: {"ADD HL, SP", 2, func(c *CPU) { c.addHL(c.SP) }},
	0x3A: {"LD A, (HL-)", 2, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}},
	0x3B: {"DEC SP", 2, func(c *CPU) { c.SP-- }},
	0x3C: {"INC A", 1, func(c *CPU) { c.A = c.increment(c.A) }},
	0x3D: {"DEC A", 1, func(c *CPU) { c.A = c.decrement(c.A) }},
	0x3E: {"LD A, d8", 2, func(c *CPU) { c.loadRegister8(&c.A) }},
	0x3F: {"CCF", 1, func(c *CPU) { c.complementCarryFlag() }},

	// 0x40 - 0xBF filled in by init, except HALT
	0x76: {"HALT", 1, func(c *CPU) { c.halted = true }},

	0xC0: {"RET NZ", 2, func(c *CPU) { c.retConditional(!c.IsFlagSet(FlagZero)) }},
	0xC1: {"POP BC", 3, func(c *CPU) { c.pop(c.BC) }},
	0xC2: {"JP NZ, a16", 3, func(c *CPU) { c.jumpAbsolute(!c.IsFlagSet(FlagZero)) }},
	0xC3: {"JP a16", 3, func(c *CPU) { c.jumpAbsolute(true) }},
	0xC4: {"CALL NZ, a16", 3, func(c *CPU) { c.call(!c.IsFlagSet(FlagZero)) }},
	0xC5: {"PUSH BC", 4, func(c *CPU) { c.push(c.BC) }},
	0xC6: {"ADD A, d8", 2, func(c *CPU) { c.add(c.readOperand(), false) }},
	0xC7: {"RST 00h", 4, func(c *CPU) { c.rst(0x00) }},
	0xC8: {"RET Z", 2, func(c *CPU) { c.retConditional(c.IsFlagSet(FlagZero)) }},
	0xC9: {"RET", 4, func(c *CPU) { c.ret() }},
	0xCA: {"JP Z, a16", 3, func(c *CPU) { c.jumpAbsolute(c.IsFlagSet(FlagZero)) }},
	0xCB: {"PREFIX CB", 0, func(c *CPU) {
		ins := &InstructionSetCB[c.readOperand()]
		c.ticks += ins.cycles
		ins.fn(c)
	}},
	0xCC: {"CALL Z, a16", 3, func(c *CPU) { c.call(c.IsFlagSet(FlagZero)) }},
	0xCD: {"CALL a16", 3, func(c *CPU) { c.call(true) }},
	0xCE: {"ADC A, d8", 2, func(c *CPU) { c.add(c.readOperand(), true) }},
	0xCF: {"RST 08h", 4, func(c *CPU) { c.rst(0x08) }},

	0xD0: {"RET NC", 2, func(c *CPU) { c.retConditional(!c.IsFlagSet(FlagCarry)) }},
	0xD1: {"POP DE", 3, func(c *CPU) { c.pop(c.DE) }},
	0xD2: {"JP NC, a16", 3, func(c *CPU) { c.jumpAbsolute(!c.IsFlagSet(FlagCarry)) }},
	0xD4: {"CALL NC, a16", 3, func(c *CPU) { c.call(!c.IsFlagSet(FlagCarry)) }},
	0xD5: {"PUSH DE", 4, func(c *CPU) { c.push(c.DE) }},
	0xD6: {"SUB A, d8", 2, func(c *CPU) { c.sub(c.readOperand(), false) }},
	0xD7: {"RST 10h", 4, func(c *CPU) { c.rst(0x10) }},
	0xD8: {"RET C", 2, func(c *CPU) { c.retConditional(c.IsFlagSet(FlagCarry)) }},
	0xD9: {"RETI", 4, func(c *CPU) { c.retInterrupt() }},
	0xDA: {"JP C, a16", 3, func(c *CPU) { c.jumpAbsolute(c.IsFlagSet(FlagCarry)) }},
	0xDC: {"CALL C, a16", 3, func(c *CPU) { c.call(c.IsFlagSet(FlagCarry)) }},
	0xDE: {"SBC A, d8", 2, func(c *CPU) { c.sub(c.readOperand(), true) }},
	0xDF: {"RST 18h", 4, func(c *CPU) { c.rst(0x18) }},

	0xE0: {"LDH (a8), A", 3, func(c *CPU) { c.loadAToHigh(c.readOperand()) }},
	0xE1: {"POP HL", 3, func(c *CPU) { c.pop(c.HL) }},
	0xE2: {"LD (C), A", 2, func(c *CPU) { c.loadAToHigh(c.C) }},
	0xE5: {"PUSH HL", 4, func(c *CPU) { c.push(c.HL) }},
	0xE6: {"AND d8", 2, func(c *CPU) { c.and(c.readOperand()) }},
	0xE7: {"RST 20h", 4, func(c *CPU) { c.rst(0x20) }},
	0xE8: {"ADD SP, r8", 4, func(c *CPU) { c.SP = c.addSPSigned() }},
	0xE9: {"JP HL", 1, func(c *CPU) { c.PC = c.HL.Uint16() }},
	0xEA: {"LD (a16), A", 4, func(c *CPU) { c.loadRegisterToMemory(c.A, c.readOperand16()) }},
	0xEE: {"XOR d8", 2, func(c *CPU) { c.xor(c.readOperand()) }},
	0xEF: {"RST 28h", 4, func(c *CPU) { c.rst(0x28) }},

	0xF0: {"LDH A, (a8)", 3, func(c *CPU) { c.loadHighToA(c.readOperand()) }},
	0xF1: {"POP AF", 3, func(c *CPU) { c.pop(c.AF) }},
	0xF2: {"LD A, (C)", 2, func(c *CPU) { c.loadHighToA(c.C) }},
	0xF3: {"DI", 1, func(c *CPU) {
		c.irq.IME = false
		c.irq.Enabling = false
	}},
	0xF5: {"PUSH AF", 4, func(c *CPU) { c.push(c.AF) }},
	0xF6: {"OR d8", 2, func(c *CPU) { c.or(c.readOperand()) }},
	0xF7: {"RST 30h", 4, func(c *CPU) { c.rst(0x30) }},
	0xF8: {"LD HL, SP+r8", 3, func(c *CPU) { c.HL.SetUint16(c.addSPSigned()) }},
	0xF9: {"LD SP, HL", 2, func(c *CPU) { c.SP = c.HL.Uint16() }},
	0xFA: {"LD A, (a16)", 4, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.readOperand16()) }},
	0xFB: {"EI", 1, func(c *CPU) {
		// the enable is deferred by one instruction; the step loop
		// latches it after this instruction completes
	}},
	0xFE: {"CP d8", 2, func(c *CPU) { c.compare(c.readOperand()) }},
	0xFF: {"RST 38h", 4, func(c *CPU) { c.rst(0x38) }},
}

// sourceNames maps the 3-bit register index of the opcode map to its
// mnemonic.
var sourceNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func init() {
	generateLoadInstructions()
	generateALUInstructions()

	for _, opcode := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		InstructionSet[opcode] = illegalOpcode(opcode)
	}
}

// generateLoadInstructions fills the 0x40-0x7F block: the 64
// register-to-register moves, with (HL) as source or destination
// costing an extra memory cycle. 0x76 is HALT, already defined.
func generateLoadInstructions() {
	for opcode := uint16(0x40); opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dst := uint8(opcode>>3) & 0x7
		src := uint8(opcode) & 0x7

		cycles := uint8(1)
		if dst == 6 || src == 6 {
			cycles = 2
		}
		InstructionSet[opcode] = Instruction{
			name:   "LD " + sourceNames[dst] + ", " + sourceNames[src],
			cycles: cycles,
			fn:     func(c *CPU) { c.writeSource(dst, c.readSource(src)) },
		}
	}
}

// generateALUInstructions fills the 0x80-0xBF block: ADD, ADC, SUB,
// SBC, AND, XOR, OR and CP against each of the eight sources.
func generateALUInstructions() {
	ops := [8]struct {
		name string
		fn   func(*CPU, uint8)
	}{
		{"ADD A, ", func(c *CPU, n uint8) { c.add(n, false) }},
		{"ADC A, ", func(c *CPU, n uint8) { c.add(n, true) }},
		{"SUB A, ", func(c *CPU, n uint8) { c.sub(n, false) }},
		{"SBC A, ", func(c *CPU, n uint8) { c.sub(n, true) }},
		{"AND ", func(c *CPU, n uint8) { c.and(n) }},
		{"XOR ", func(c *CPU, n uint8) { c.xor(n) }},
		{"OR ", func(c *CPU, n uint8) { c.or(n) }},
		{"CP ", func(c *CPU, n uint8) { c.compare(n) }},
	}

	for opcode := uint16(0x80); opcode <= 0xBF; opcode++ {
		op := ops[uint8(opcode>>3)&0x7]
		src := uint8(opcode) & 0x7

		cycles := uint8(1)
		if src == 6 {
			cycles = 2
		}
		fn := op.fn
		InstructionSet[opcode] = Instruction{
			name:   op.name + sourceNames[src],
			cycles: cycles,
			fn:     func(c *CPU) { fn(c, c.readSource(src)) },
		}
	}
}

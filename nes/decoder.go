package nes

// Instruction is one entry of the opcode lookup table.
type Instruction struct {
	Mnemonic Mnemonic
	AddrMode AddressingMode
	Access   Access
	Cycles   byte
}

// Legal reports whether the entry describes a documented instruction.
func (inst Instruction) Legal() bool { return inst.Mnemonic != XXX }

// Instruction operation lookup, indexed by opcode. Entries left at the zero
// value are undocumented opcodes.
// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
var instLookup = [16 * 16]Instruction{
	// ADC
	0x69: {ADC, IMM, Value, 2}, 0x65: {ADC, ZP0, Value, 3}, 0x75: {ADC, ZPX, Value, 4}, 0x6D: {ADC, ABS, Value, 4},
	0x7D: {ADC, ABX, Value, 4}, 0x79: {ADC, ABY, Value, 4}, 0x61: {ADC, IZX, Value, 6}, 0x71: {ADC, IZY, Value, 5},
	// AND
	0x29: {AND, IMM, Value, 2}, 0x25: {AND, ZP0, Value, 3}, 0x35: {AND, ZPX, Value, 4}, 0x2D: {AND, ABS, Value, 4},
	0x3D: {AND, ABX, Value, 4}, 0x39: {AND, ABY, Value, 4}, 0x21: {AND, IZX, Value, 6}, 0x31: {AND, IZY, Value, 5},
	// ASL
	0x0A: {ASL, ACC, Implied, 2}, 0x06: {ASL, ZP0, Location, 5}, 0x16: {ASL, ZPX, Location, 6},
	0x0E: {ASL, ABS, Location, 6}, 0x1E: {ASL, ABX, Location, 7},
	// Branches
	0x10: {BPL, REL, Location, 2}, 0x30: {BMI, REL, Location, 2}, 0x50: {BVC, REL, Location, 2}, 0x70: {BVS, REL, Location, 2},
	0x90: {BCC, REL, Location, 2}, 0xB0: {BCS, REL, Location, 2}, 0xD0: {BNE, REL, Location, 2}, 0xF0: {BEQ, REL, Location, 2},
	// BIT
	0x24: {BIT, ZP0, Value, 3}, 0x2C: {BIT, ABS, Value, 4},
	// BRK
	0x00: {BRK, IMP, Implied, 7},
	// CMP
	0xC9: {CMP, IMM, Value, 2}, 0xC5: {CMP, ZP0, Value, 3}, 0xD5: {CMP, ZPX, Value, 4}, 0xCD: {CMP, ABS, Value, 4},
	0xDD: {CMP, ABX, Value, 4}, 0xD9: {CMP, ABY, Value, 4}, 0xC1: {CMP, IZX, Value, 6}, 0xD1: {CMP, IZY, Value, 5},
	// CPX
	0xE0: {CPX, IMM, Value, 2}, 0xE4: {CPX, ZP0, Value, 3}, 0xEC: {CPX, ABS, Value, 4},
	// CPY
	0xC0: {CPY, IMM, Value, 2}, 0xC4: {CPY, ZP0, Value, 3}, 0xCC: {CPY, ABS, Value, 4},
	// DEC
	0xC6: {DEC, ZP0, Location, 5}, 0xD6: {DEC, ZPX, Location, 6}, 0xCE: {DEC, ABS, Location, 6}, 0xDE: {DEC, ABX, Location, 7},
	// EOR
	0x49: {EOR, IMM, Value, 2}, 0x45: {EOR, ZP0, Value, 3}, 0x55: {EOR, ZPX, Value, 4}, 0x4D: {EOR, ABS, Value, 4},
	0x5D: {EOR, ABX, Value, 4}, 0x59: {EOR, ABY, Value, 4}, 0x41: {EOR, IZX, Value, 6}, 0x51: {EOR, IZY, Value, 5},
	// Processor status flags
	0x18: {CLC, IMP, Implied, 2}, 0x38: {SEC, IMP, Implied, 2}, 0x58: {CLI, IMP, Implied, 2}, 0x78: {SEI, IMP, Implied, 2},
	0xB8: {CLV, IMP, Implied, 2}, 0xD8: {CLD, IMP, Implied, 2}, 0xF8: {SED, IMP, Implied, 2},
	// INC
	0xE6: {INC, ZP0, Location, 5}, 0xF6: {INC, ZPX, Location, 6}, 0xEE: {INC, ABS, Location, 6}, 0xFE: {INC, ABX, Location, 7},
	// JMP, JSR
	0x4C: {JMP, ABS, Location, 3}, 0x6C: {JMP, IND, Location, 5},
	0x20: {JSR, ABS, Location, 6},
	// LDA
	0xA9: {LDA, IMM, Value, 2}, 0xA5: {LDA, ZP0, Value, 3}, 0xB5: {LDA, ZPX, Value, 4}, 0xAD: {LDA, ABS, Value, 4},
	0xBD: {LDA, ABX, Value, 4}, 0xB9: {LDA, ABY, Value, 4}, 0xA1: {LDA, IZX, Value, 6}, 0xB1: {LDA, IZY, Value, 5},
	// LDX
	0xA2: {LDX, IMM, Value, 2}, 0xA6: {LDX, ZP0, Value, 3}, 0xB6: {LDX, ZPY, Value, 4}, 0xAE: {LDX, ABS, Value, 4},
	0xBE: {LDX, ABY, Value, 4},
	// LDY
	0xA0: {LDY, IMM, Value, 2}, 0xA4: {LDY, ZP0, Value, 3}, 0xB4: {LDY, ZPX, Value, 4}, 0xAC: {LDY, ABS, Value, 4},
	0xBC: {LDY, ABX, Value, 4},
	// LSR
	0x4A: {LSR, ACC, Implied, 2}, 0x46: {LSR, ZP0, Location, 5}, 0x56: {LSR, ZPX, Location, 6},
	0x4E: {LSR, ABS, Location, 6}, 0x5E: {LSR, ABX, Location, 7},
	// NOP
	0xEA: {NOP, IMP, Implied, 2},
	// ORA
	0x09: {ORA, IMM, Value, 2}, 0x05: {ORA, ZP0, Value, 3}, 0x15: {ORA, ZPX, Value, 4}, 0x0D: {ORA, ABS, Value, 4},
	0x1D: {ORA, ABX, Value, 4}, 0x19: {ORA, ABY, Value, 4}, 0x01: {ORA, IZX, Value, 6}, 0x11: {ORA, IZY, Value, 5},
	// Stack
	0x48: {PHA, IMP, Implied, 3}, 0x08: {PHP, IMP, Implied, 3}, 0x68: {PLA, IMP, Implied, 4}, 0x28: {PLP, IMP, Implied, 4},
	// Register transfers, increments and decrements
	0xAA: {TAX, IMP, Implied, 2}, 0x8A: {TXA, IMP, Implied, 2}, 0xCA: {DEX, IMP, Implied, 2}, 0xE8: {INX, IMP, Implied, 2},
	0xA8: {TAY, IMP, Implied, 2}, 0x98: {TYA, IMP, Implied, 2}, 0x88: {DEY, IMP, Implied, 2}, 0xC8: {INY, IMP, Implied, 2},
	0xBA: {TSX, IMP, Implied, 2}, 0x9A: {TXS, IMP, Implied, 2},
	// ROL
	0x2A: {ROL, ACC, Implied, 2}, 0x26: {ROL, ZP0, Location, 5}, 0x36: {ROL, ZPX, Location, 6},
	0x2E: {ROL, ABS, Location, 6}, 0x3E: {ROL, ABX, Location, 7},
	// ROR
	0x6A: {ROR, ACC, Implied, 2}, 0x66: {ROR, ZP0, Location, 5}, 0x76: {ROR, ZPX, Location, 6},
	0x6E: {ROR, ABS, Location, 6}, 0x7E: {ROR, ABX, Location, 7},
	// RTI, RTS
	0x40: {RTI, IMP, Implied, 6}, 0x60: {RTS, IMP, Implied, 6},
	// SBC
	0xE9: {SBC, IMM, Value, 2}, 0xE5: {SBC, ZP0, Value, 3}, 0xF5: {SBC, ZPX, Value, 4}, 0xED: {SBC, ABS, Value, 4},
	0xFD: {SBC, ABX, Value, 4}, 0xF9: {SBC, ABY, Value, 4}, 0xE1: {SBC, IZX, Value, 6}, 0xF1: {SBC, IZY, Value, 5},
	// STA
	0x85: {STA, ZP0, Location, 3}, 0x95: {STA, ZPX, Location, 4}, 0x8D: {STA, ABS, Location, 4}, 0x9D: {STA, ABX, Location, 5},
	0x99: {STA, ABY, Location, 5}, 0x81: {STA, IZX, Location, 6}, 0x91: {STA, IZY, Location, 6},
	// STX
	0x86: {STX, ZP0, Location, 3}, 0x96: {STX, ZPY, Location, 4}, 0x8E: {STX, ABS, Location, 4},
	// STY
	0x84: {STY, ZP0, Location, 3}, 0x94: {STY, ZPX, Location, 4}, 0x8C: {STY, ABS, Location, 4},
}

// Lookup returns the table entry for an opcode.
func Lookup(opcode byte) Instruction {
	return instLookup[opcode]
}

// Decode reads the instruction at the program counter and advances the
// program counter past the opcode and its operand bytes.
//
// An opcode with no table entry returns a *DecodeError and leaves the program
// counter on the offending opcode.
func Decode(b *Bus, r *Registers) (Operation, error) {
	addr := r.Pc
	opcode := b.Read(addr)

	inst := instLookup[opcode]
	if !inst.Legal() {
		return Operation{}, &DecodeError{Opcode: opcode, Pc: addr}
	}
	r.Pc++

	var arg uint16
	switch inst.AddrMode.OperandBytes() {
	case 1:
		arg = uint16(b.Read(r.Pc))
		r.Pc++
	case 2:
		arg = b.ReadWord(r.Pc)
		r.Pc += 2
	}

	return Operation{
		Mnemonic: inst.Mnemonic,
		Access:   inst.Access,
		Operand:  Operand{Mode: inst.AddrMode, Arg: arg},
		Opcode:   opcode,
		Addr:     addr,
		Cycles:   inst.Cycles,
	}, nil
}

package nes

import (
	"fmt"
	"sort"
	"strings"
)

// Disassemble the loaded 6502 program into human-readable CPU instructions
// mapped to their respective memory address. Bytes with no instruction are
// shown as data, and unmapped addresses are skipped.
//
// Much help from https://github.com/OneLoneCoder/olcNES
func Disassemble(b *Bus, startAddr, endAddr uint16) map[uint16]string {
	disassembly := make(map[uint16]string)

	// this needs to be bigger than uint16, to determine when larger than endAddr
	var addr uint32 = uint32(startAddr)

	for addr <= uint32(endAddr) {
		lineAddr := uint16(addr)
		if !b.Mapped(lineAddr) {
			addr++
			continue
		}

		// Decode on a scratch register file; only the program counter matters.
		r := Registers{Pc: lineAddr}
		op, err := decodeMapped(b, &r)
		if err != nil {
			disassembly[lineAddr] = fmt.Sprintf("$%04X: .byte $%02X", lineAddr, b.Read(lineAddr))
			addr++
			continue
		}

		disassembly[lineAddr] = fmt.Sprintf("$%04X: %s {%v}", lineAddr, op, op.Operand.Mode)
		addr += uint32(op.Len())
	}

	return disassembly
}

// decodeMapped is Decode that refuses to read operand bytes from unmapped
// memory or from past the top of the address space.
func decodeMapped(b *Bus, r *Registers) (Operation, error) {
	inst := instLookup[b.Read(r.Pc)]
	for i := 1; i <= inst.AddrMode.OperandBytes(); i++ {
		next := uint32(r.Pc) + uint32(i)
		if next > 0xFFFF || !b.Mapped(uint16(next)) {
			return Operation{}, &DecodeError{Opcode: b.Read(r.Pc), Pc: r.Pc}
		}
	}
	return Decode(b, r)
}

// Listing renders a disassembly map in address order.
func Listing(disassembly map[uint16]string) string {
	addrs := make([]int, 0, len(disassembly))
	for addr := range disassembly {
		addrs = append(addrs, int(addr))
	}
	sort.Ints(addrs)

	var sb strings.Builder
	for _, addr := range addrs {
		sb.WriteString(disassembly[uint16(addr)])
		sb.WriteByte('\n')
	}
	return sb.String()
}

package nes

import (
	"strings"
	"testing"
)

func TestDisassemble(t *testing.T) {
	bus := NewBus()
	program := []byte{
		0xA9, 0x05,       // LDA #$05
		0x8D, 0x00, 0x02, // STA $0200
		0x02,             // illegal
		0xD0, 0xFE,       // BNE $8006
		0x00,             // BRK
	}
	if err := bus.Load(program); err != nil {
		t.Fatal(err)
	}

	got := Disassemble(bus, 0x8000, 0x8008)
	want := map[uint16]string{
		0x8000: "$8000: LDA #$05 {IMM}",
		0x8002: "$8002: STA $0200 {ABS}",
		0x8005: "$8005: .byte $02",
		0x8006: "$8006: BNE $8006 {REL}",
		0x8008: "$8008: BRK {IMP}",
	}

	if len(got) != len(want) {
		t.Errorf("got %d lines, want %d:\n%s", len(got), len(want), Listing(got))
	}
	for addr, line := range want {
		if got[addr] != line {
			t.Errorf("$%04X: got %q, want %q", addr, got[addr], line)
		}
	}
}

func TestDisassembleSkipsUnmapped(t *testing.T) {
	bus := NewBus()
	bus.Write(0x07FF, 0xAD) // LDA abs, operand runs off the end of RAM

	got := Disassemble(bus, 0x07FE, 0x8000)

	if _, ok := got[0x0800]; ok {
		t.Errorf("disassembled unmapped address $0800")
	}
	if got[0x07FF] != "$07FF: .byte $AD" {
		t.Errorf("got %q", got[0x07FF])
	}
	if len(got) != 3 {
		t.Errorf("got %d lines, want 3:\n%s", len(got), Listing(got))
	}
}

func TestDisassembleTopOfMemory(t *testing.T) {
	bus := NewBus()
	bus.Write(0xFFFE, 0xEA)
	bus.Write(0xFFFF, 0xA9) // operand would wrap past $FFFF

	got := Disassemble(bus, 0xFFFE, 0xFFFF)
	if got[0xFFFE] != "$FFFE: NOP {IMP}" || got[0xFFFF] != "$FFFF: .byte $A9" {
		t.Errorf("got:\n%s", Listing(got))
	}
}

func TestListing(t *testing.T) {
	listing := Listing(map[uint16]string{
		0x8002: "b",
		0x0001: "a",
		0xFFFF: "c",
	})

	if want := "a\nb\nc\n"; listing != want {
		t.Errorf("got %q, want %q", listing, want)
	}
	if strings.Count(Listing(nil), "\n") != 0 {
		t.Errorf("empty listing is not empty")
	}
}

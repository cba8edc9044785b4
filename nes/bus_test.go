package nes

import (
	"strings"
	"testing"
)

func TestBusReadWrite(t *testing.T) {
	bus := NewBus()

	bus.Write(0x0000, 0x11)
	bus.Write(0x07FF, 0x22)
	bus.Write(0x8000, 0x33)
	bus.Write(0xFFFF, 0x44)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{bus.Read(0x0000), byte(0x11)},
		{bus.Read(0x07FF), byte(0x22)},
		{bus.Read(0x8000), byte(0x33)},
		{bus.Read(0xFFFF), byte(0x44)},
		{bus.Mapped(0x07FF), true},
		{bus.Mapped(0x0800), false},
		{bus.Mapped(0x7FFF), false},
		{bus.Mapped(0x8000), true},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

func TestBusWordRoundTrip(t *testing.T) {
	bus := NewBus()
	values := []uint16{0x0000, 0x0001, 0x00FF, 0x0100, 0x1234, 0x8000, 0xFF00, 0xFFFF}

	for a := 0; a <= 0xFFFF; a++ {
		addr := uint16(a)
		if !bus.Mapped(addr) || !bus.Mapped(addr+1) {
			continue
		}
		for _, v := range values {
			bus.WriteWord(addr, v)
			if got := bus.ReadWord(addr); got != v {
				t.Fatalf("ReadWord($%04X) after WriteWord = $%04X, want $%04X", addr, got, v)
			}
		}
	}
}

func TestBusWordLittleEndian(t *testing.T) {
	bus := NewBus()
	bus.WriteWord(0x0010, 0xBEEF)

	if lo, hi := bus.Read(0x0010), bus.Read(0x0011); lo != 0xEF || hi != 0xBE {
		t.Errorf("got lo=%02X hi=%02X, want lo=EF hi=BE", lo, hi)
	}

	// The high byte of a word at the top of memory comes from $0000.
	bus.WriteWord(0xFFFF, 0x1234)
	if got := bus.Read(0x0000); got != 0x12 {
		t.Errorf("got $0000=%02X, want 12", got)
	}
}

func TestBusZeroPageWordWraps(t *testing.T) {
	bus := NewBus()
	bus.Write(0x00FF, 0x34)
	bus.Write(0x0000, 0x12)
	bus.Write(0x0100, 0x99)

	if got := bus.readZeroPageWord(0xFF); got != 0x1234 {
		t.Errorf("got $%04X, want $1234", got)
	}
}

func TestBusUnmappedPanics(t *testing.T) {
	for _, addr := range []uint16{0x0800, 0x2000, 0x4016, 0x7FFF} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Read($%04X) did not panic", addr)
				}
			}()
			NewBus().Read(addr)
		}()
	}
}

func TestBusDump(t *testing.T) {
	bus := NewBus()
	for i := uint16(0); i < 0x10; i++ {
		bus.Write(i, byte(i))
	}

	got := bus.Dump(0x0005, 1)
	want := "$0000: 00 01 02 03 04 05 06 07  08 09 0A 0B 0C 0D 0E 0F\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Rows past the end of RAM are skipped until ROM begins.
	got = bus.Dump(0x07F0, 2)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "$07F0:") || !strings.HasPrefix(lines[1], "$8000:") {
		t.Errorf("got %q, want rows $07F0 and $8000", got)
	}

	// Stops at the top of memory.
	if n := strings.Count(bus.Dump(0xFFF0, 4), "\n"); n != 1 {
		t.Errorf("got %d rows, want 1", n)
	}
}

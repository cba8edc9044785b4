package nes

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"small", 3, false},
		{"full", RomSize, false},
		{"too large", RomSize + 1, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bus := NewBus()
			program := bytes.Repeat([]byte{0xEA}, test.size)

			err := bus.Load(program)
			if (err != nil) != test.wantErr {
				t.Fatalf("got err %v, wantErr %v", err, test.wantErr)
			}
			if test.wantErr {
				return
			}
			if got := bus.ReadWord(ResetVectAddr); got != RomStart {
				t.Errorf("got reset vector $%04X, want $%04X", got, RomStart)
			}
			if test.size > 0 && test.size < RomSize-4 {
				if got := bus.Read(RomStart + uint16(test.size) - 1); got != 0xEA {
					t.Errorf("got last byte %02X, want EA", got)
				}
			}
		})
	}
}

func TestLoadKeepsTrailingBytes(t *testing.T) {
	bus := NewBus()
	bus.Write(0x8010, 0x77)

	if err := bus.Load([]byte{0xA9, 0x05, 0x00}); err != nil {
		t.Fatal(err)
	}
	if got := bus.Read(0x8010); got != 0x77 {
		t.Errorf("got %02X, want 77", got)
	}
}

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"empty", 0, 0},
		{"one short", RomSize - 1, RomSize - 1},
		{"exact", RomSize, RomSize},
		{"truncated", RomSize + 1, RomSize},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bus := NewBus()
			n, err := bus.LoadFrom(bytes.NewReader(bytes.Repeat([]byte{1}, test.size)))
			if err != nil {
				t.Fatal(err)
			}
			if n != test.want {
				t.Errorf("got %d bytes, want %d", n, test.want)
			}
			if got := bus.ReadWord(ResetVectAddr); got != RomStart {
				t.Errorf("got reset vector $%04X, want $%04X", got, RomStart)
			}
		})
	}
}

func TestLoadFromReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewBus().LoadFrom(iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}
}

func TestLoadFromPartialReadLeavesRom(t *testing.T) {
	bus := NewBus()
	if err := bus.Load([]byte{0xEA, 0xEA, 0xEA}); err != nil {
		t.Fatal(err)
	}

	// A few bytes arrive, then the reader fails.
	r := io.MultiReader(bytes.NewReader([]byte{0xA9, 0x05}), iotest.ErrReader(errors.New("boom")))
	n, err := bus.LoadFrom(r)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{err != nil, true},
		{n, 0},
		{bus.Read(0x8000), byte(0xEA)},
		{bus.Read(0x8001), byte(0xEA)},
		{bus.ReadWord(ResetVectAddr), RomStart},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

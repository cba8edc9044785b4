package nes

import (
	"bytes"
	"fmt"
)

// Bus is the CPU's 16-bit address space: 2KB of RAM at the bottom and 32KB of
// program ROM at the top. Anything in between is not wired to a device.
type Bus struct {
	ram [RamSize]byte
	rom [RomSize]byte
}

const (
	// RAM
	RamStart uint16 = 0x0000
	RamSize         = 0x0800

	// Program ROM, runs to the end of memory (0xFFFF inclusive).
	RomStart uint16 = 0x8000
	RomSize         = 0x8000

	// Interrupt vectors. Each holds a little endian address, read with ReadWord.
	NmiVectAddr   uint16 = 0xFFFA
	ResetVectAddr uint16 = 0xFFFC
	IrqVectAddr   uint16 = 0xFFFE

	// Zero page and stack page.
	zeroPageEnd uint16 = 0x00FF
	stackBase   uint16 = 0x0100
)

func NewBus() *Bus {
	return &Bus{}
}

// locate maps an address onto the backing storage of the region that owns
// it. An address no region owns is a broken invariant, not a bad program, so
// it panics instead of handing back a byte nobody stored.
func (b *Bus) locate(addr uint16) *byte {
	switch {
	case addr < RamStart+RamSize:
		return &b.ram[addr-RamStart]
	case addr >= RomStart:
		return &b.rom[addr-RomStart]
	}

	panic(fmt.Sprintf("nes: address $%04X is not mapped to RAM or ROM", addr))
}

// Mapped reports whether addr belongs to RAM or program ROM.
func (b *Bus) Mapped(addr uint16) bool {
	return addr < RamStart+RamSize || addr >= RomStart
}

// Read a byte from the bus.
func (b *Bus) Read(addr uint16) byte {
	return *b.locate(addr)
}

// Write a byte to the bus.
func (b *Bus) Write(addr uint16, data byte) {
	*b.locate(addr) = data
}

// ReadWord reads a word from memory (little endian order). The high byte
// comes from addr+1, wrapping from 0xFFFF to 0x0000.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)

	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord is the inverse of ReadWord.
func (b *Bus) WriteWord(addr uint16, data uint16) {
	b.Write(addr, byte(data))
	b.Write(addr+1, byte(data>>8))
}

// readZeroPageWord reads a pointer stored in the zero page. The high byte wraps
// within the page, so a pointer at $FF takes its high byte from $00.
func (b *Bus) readZeroPageWord(addr byte) uint16 {
	lo := b.Read(uint16(addr))
	hi := b.Read(uint16(addr + 1))

	return uint16(hi)<<8 | uint16(lo)
}

// Dump renders rows of 16 bytes starting at the row containing start.
// Rows outside RAM and ROM are skipped.
func (b *Bus) Dump(start uint16, rows int) string {
	var buf bytes.Buffer

	// Wider than uint16 so the loop can run off the top of memory.
	addr := uint32(start &^ 0x000F)

	for i := 0; i < rows && addr <= 0xFFFF; addr += 0x10 {
		row := uint16(addr)
		if !b.Mapped(row) {
			continue
		}

		fmt.Fprintf(&buf, "$%04X:", row)
		for j := uint16(0); j < 0x10; j++ {
			if j == 8 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, " %02X", b.Read(row+j))
		}
		buf.WriteByte('\n')
		i++
	}

	return buf.String()
}

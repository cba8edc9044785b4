package nes

import (
	"io"

	"github.com/pkg/errors"
)

// Entry point written to the reset vector when a program is loaded.
const programEntry uint16 = RomStart

// Load copies a program into ROM starting at RomStart and points the reset
// vector at it. ROM bytes past the end of the program keep their old values.
func (b *Bus) Load(program []byte) error {
	if len(program) > RomSize {
		return errors.Errorf("program is %d bytes, ROM holds %d", len(program), RomSize)
	}

	copy(b.rom[:], program)
	b.WriteWord(ResetVectAddr, programEntry)

	return nil
}

// LoadFrom reads a program from r into ROM and points the reset vector at it.
// At most RomSize bytes are consumed; the number of bytes copied is returned.
// If reading fails, ROM is left as it was and nothing is copied.
func (b *Bus) LoadFrom(r io.Reader) (int, error) {
	var image [RomSize]byte

	n, err := io.ReadFull(r, image[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, errors.Wrap(err, "reading program")
	}

	copy(b.rom[:n], image[:n])
	b.WriteWord(ResetVectAddr, programEntry)

	return n, nil
}

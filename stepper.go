package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/n-ulricksen/nes-cpu/nes"
)

var errNotTerminal = errors.New("single stepping needs an interactive terminal")

// stepper executes one instruction per key press. Raw mode keeps line
// buffering and echo out of the way; q or Ctrl-C leaves.
type stepper struct {
	cpu *nes.Cpu6502
	in  *os.File
	out io.Writer
}

func (s *stepper) run() error {
	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "setting raw mode")
	}
	defer term.Restore(fd, oldState)

	// Raw mode turns off output post-processing, so lines end in \r\n.
	fmt.Fprintf(s.out, "any key steps, q quits\r\n")
	fmt.Fprintf(s.out, "%s\r\n", s.cpu.Current())

	buf := make([]byte, 1)
	for !s.cpu.Halted() {
		if _, err := s.in.Read(buf); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "reading key")
		}

		switch buf[0] {
		case 'q', 0x03:
			return nil
		}

		if err := s.cpu.Step(); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "    %s CYC:%d\r\n", s.cpu.Registers, s.cpu.CycleCount)
		if !s.cpu.Halted() {
			fmt.Fprintf(s.out, "%s\r\n", s.cpu.Current())
		}
	}

	fmt.Fprintf(s.out, "halted after %d instructions\r\n", s.cpu.InstCount)
	return nil
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/n-ulricksen/nes-cpu/nes"
)

func TestStepperNeedsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "keys"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cpu := nes.NewCpu6502()
	cpu.Reset()

	var out bytes.Buffer
	s := &stepper{cpu: cpu, in: f, out: &out}
	if err := s.run(); err != errNotTerminal {
		t.Errorf("got %v, want %v", err, errNotTerminal)
	}
	if cpu.InstCount != 0 || out.Len() != 0 {
		t.Errorf("stepper ran without a terminal")
	}
}

package nes

import (
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"
)

// State of the run loop.
type State int

const (
	Ready State = iota
	Running
	Halted
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Halted:
		return "halted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Cpu6502 owns a register file and an address space and runs decoded
// instructions against them until something stops it.
type Cpu6502 struct {
	Registers

	Bus *Bus // Address space, owned by this CPU

	CycleCount uint64 // Approximate cycles executed since reset
	InstCount  uint64 // Instructions executed since reset

	Logger *log.Logger // Per-instruction trace, nil to disable

	state State
}

func NewCpu6502() *Cpu6502 {
	return &Cpu6502{Bus: NewBus()}
}

// Load copies a program into ROM. See Bus.Load.
func (cpu *Cpu6502) Load(program []byte) error {
	return cpu.Bus.Load(program)
}

// LoadFrom reads a program into ROM. See Bus.LoadFrom.
func (cpu *Cpu6502) LoadFrom(r io.Reader) (int, error) {
	return cpu.Bus.LoadFrom(r)
}

// Reset clears the registers and loads the program counter from the reset
// vector. Memory is left untouched.
func (cpu *Cpu6502) Reset() {
	cpu.Registers.reset()

	// Get the program counter from the reset vector location.
	cpu.Pc = cpu.Bus.ReadWord(ResetVectAddr)

	cpu.CycleCount = 0
	cpu.InstCount = 0
	cpu.state = Ready
}

// ResetTo resets the CPU and then forces the program counter to addr.
func (cpu *Cpu6502) ResetTo(addr uint16) {
	cpu.Reset()
	cpu.Pc = addr
}

// Start resets the CPU and runs from the reset vector until it halts.
func (cpu *Cpu6502) Start() error {
	cpu.Reset()
	return cpu.Resume()
}

// StartFrom resets the CPU and runs from addr until it halts.
func (cpu *Cpu6502) StartFrom(addr uint16) error {
	cpu.ResetTo(addr)
	return cpu.Resume()
}

// Resume runs instructions until BRK or an error. A program that never
// executes BRK never returns.
func (cpu *Cpu6502) Resume() error {
	for cpu.state != Halted {
		if err := cpu.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run is Resume with a budget. It stops after limit instructions, reporting
// whether the CPU halted on its own.
func (cpu *Cpu6502) Run(limit uint64) (bool, error) {
	for i := uint64(0); i < limit && cpu.state != Halted; i++ {
		if err := cpu.Step(); err != nil {
			return true, err
		}
	}
	return cpu.state == Halted, nil
}

// Step decodes and executes a single instruction. Any decode or execute error
// halts the CPU.
func (cpu *Cpu6502) Step() error {
	if cpu.state == Halted {
		return ErrHalted
	}
	cpu.state = Running

	pc := cpu.Pc
	op, err := Decode(cpu.Bus, &cpu.Registers)
	if err != nil {
		cpu.state = Halted
		return errors.Wrapf(err, "decoding at $%04X", pc)
	}

	// Store CPU state for logging before the instruction changes it.
	var before string
	if cpu.Logger != nil {
		before = fmt.Sprintf("%s CYC:%d", cpu.Registers, cpu.CycleCount)
	}

	outcome, err := Execute(op, &cpu.Registers, cpu.Bus)
	if err != nil {
		cpu.state = Halted
		return errors.Wrapf(err, "executing at $%04X", pc)
	}

	cpu.CycleCount += uint64(op.Cycles)
	cpu.InstCount++

	if cpu.Logger != nil {
		cpu.Logger.Printf("%04X  % -9X %-14s %s", op.Addr, op.Bytes(), op, before)
	}

	if outcome == Halt {
		cpu.state = Halted
	}

	return nil
}

// State reports where the run loop is.
func (cpu *Cpu6502) State() State { return cpu.state }

// Halted reports whether the CPU has stopped.
func (cpu *Cpu6502) Halted() bool { return cpu.state == Halted }

// Current disassembles the instruction at the program counter without
// executing it. A program counter or operand outside RAM and ROM is shown as
// unknown rather than read.
func (cpu *Cpu6502) Current() string {
	if !cpu.Bus.Mapped(cpu.Pc) {
		return fmt.Sprintf("%04X  ??  ????", cpu.Pc)
	}

	r := cpu.Registers
	op, err := decodeMapped(cpu.Bus, &r)
	if err != nil {
		return fmt.Sprintf("%04X  %02X  ???", cpu.Pc, cpu.Bus.Read(cpu.Pc))
	}
	return fmt.Sprintf("%04X  % -9X %s", op.Addr, op.Bytes(), op)
}

func (cpu *Cpu6502) String() string {
	return fmt.Sprintf("PC:%04X %s CYC:%d\nFlags: %s (%v)",
		cpu.Pc, cpu.Registers, cpu.CycleCount, cpu.Status, cpu.state)
}

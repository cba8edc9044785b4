package nes

import "fmt"

type AddressingMode int

const (
	IMP AddressingMode = iota // implied, no operand
	ACC                       // accumulator
	IMM                       // immediate
	REL                       // relative, signed branch displacement
	ZP0                       // zero page
	ZPX                       // zero page, X
	ZPY                       // zero page, Y
	ABS                       // absolute
	ABX                       // absolute, X
	ABY                       // absolute, Y
	IND                       // indirect, JMP only
	IZX                       // (indirect, X)
	IZY                       // (indirect), Y
)

var modeNames = [...]string{"IMP", "ACC", "IMM", "REL", "ZP0", "ZPX", "ZPY", "ABS", "ABX", "ABY", "IND", "IZX", "IZY"}

func (m AddressingMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("AddressingMode(%d)", int(m))
	}
	return modeNames[m]
}

// OperandBytes is the number of bytes following the opcode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case IMP, ACC:
		return 0
	case ABS, ABX, ABY, IND:
		return 2
	}
	return 1
}

// Operand is an instruction argument that may still need resolving. Arg holds
// the raw bytes that followed the opcode (little endian for two byte modes).
//
// IMM is already a value. ZP0 and ABS are terminal locations. Every other
// mode reduces to one of those through step.
type Operand struct {
	Mode AddressingMode
	Arg  uint16
}

// terminal reports whether the operand needs no further reduction.
func (o Operand) terminal() bool {
	switch o.Mode {
	case IMM, ZP0, ABS, IMP, ACC:
		return true
	}
	return false
}

// step applies one reduction. Zero page indexing wraps at 8 bits; absolute
// indexing and relative offsets wrap at 16 bits.
func (o Operand) step(r *Registers, b *Bus) Operand {
	switch o.Mode {
	case ZPX:
		return Operand{ZP0, uint16(byte(o.Arg) + r.X)}
	case ZPY:
		return Operand{ZP0, uint16(byte(o.Arg) + r.Y)}
	case ABX:
		return Operand{ABS, o.Arg + uint16(r.X)}
	case ABY:
		return Operand{ABS, o.Arg + uint16(r.Y)}
	case REL:
		// Sign extend the displacement.
		return Operand{ABS, r.Pc + uint16(int8(byte(o.Arg)))}
	case IND:
		return Operand{ABS, b.ReadWord(o.Arg)}
	case IZX:
		return Operand{ABS, b.readZeroPageWord(byte(o.Arg) + r.X)}
	case IZY:
		return Operand{ABY, b.readZeroPageWord(byte(o.Arg))}
	}
	return o
}

// reduce steps the operand until it is terminal.
func (o Operand) reduce(r *Registers, b *Bus) Operand {
	for !o.terminal() {
		o = o.step(r, b)
	}
	return o
}

// Location resolves the operand to the address an instruction reads from or
// writes to. Operands without an address (immediate, implied, accumulator)
// have no location; asking for one is a decoder bug and panics.
func (o Operand) Location(r *Registers, b *Bus) uint16 {
	t := o.reduce(r, b)

	switch t.Mode {
	case ZP0:
		return t.Arg & zeroPageEnd
	case ABS:
		return t.Arg
	}

	panic(fmt.Sprintf("nes: %v operand has no location", o.Mode))
}

// Value resolves the operand and reads the byte it refers to. Immediate
// operands are their own value.
func (o Operand) Value(r *Registers, b *Bus) byte {
	switch o.Mode {
	case IMM:
		return byte(o.Arg)
	case ACC:
		return r.A
	}

	return b.Read(o.Location(r, b))
}

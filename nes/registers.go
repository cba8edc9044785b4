package nes

import "fmt"

// Registers is the 6502 register file.
type Registers struct {
	Pc     uint16 // Program Counter
	Sp     byte   // Stack Pointer: low 8 bits of next free location on stack.
	A      byte   // Accumulator Register
	X      byte   // X Register
	Y      byte   // Y Register
	Status Status // Processor Status Flags
}

// Status holds the processor flags.
//
// Carry, Zero, Overflow and Negative describe the result of the last
// operation that affects them. Decimal can be set and cleared but arithmetic
// is always binary; the NES CPU has no BCD mode.
type Status struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	BreakCommand     bool
	Overflow         bool
	Negative         bool
}

////////////////////////////////////////////////////////////////
// Status Flags
type SF6502 byte // 6502 Status Flag

const (
	StatusFlagC SF6502 = 1 << iota // Carry
	StatusFlagZ                    // Zero
	StatusFlagI                    // Interrupt Disable
	StatusFlagD                    // Decimal Mode (not used on NES)
	StatusFlagB                    // Break Command
	StatusFlagX                    // UNUSED
	StatusFlagV                    // Overflow
	StatusFlagN                    // Negative
)

// Byte packs the flags into the NV-BDIZC layout. The unused bit always reads
// as set.
func (s Status) Byte() byte {
	var b byte

	flags := []struct {
		flag SF6502
		set  bool
	}{
		{StatusFlagC, s.Carry},
		{StatusFlagZ, s.Zero},
		{StatusFlagI, s.InterruptDisable},
		{StatusFlagD, s.Decimal},
		{StatusFlagB, s.BreakCommand},
		{StatusFlagX, true},
		{StatusFlagV, s.Overflow},
		{StatusFlagN, s.Negative},
	}
	for i, f := range flags {
		setBit(&b, i, boolBit(f.set))
	}

	return b
}

// SetByte unpacks a status byte. The break and unused bits only exist on the
// stack copy, so they are ignored.
func (s *Status) SetByte(b byte) {
	s.Carry = b&byte(StatusFlagC) > 0
	s.Zero = b&byte(StatusFlagZ) > 0
	s.InterruptDisable = b&byte(StatusFlagI) > 0
	s.Decimal = b&byte(StatusFlagD) > 0
	s.Overflow = b&byte(StatusFlagV) > 0
	s.Negative = b&byte(StatusFlagN) > 0
}

// String renders the flags as NV-BDIZC with clear flags shown as '-'.
func (s Status) String() string {
	const names = "CZIDBXVN"

	b := s.Byte()
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[7-i] = '-'
		if b&(1<<i) > 0 {
			out[7-i] = names[i]
		}
	}

	return string(out)
}

// setZN sets the zero and negative flags from a result.
func (r *Registers) setZN(v byte) {
	r.Status.Zero = v == 0
	r.Status.Negative = v&(1<<7) > 0
}

// reset puts every register back to its power-up value. The program counter is
// left for the caller to load.
func (r *Registers) reset() {
	*r = Registers{
		Sp: 0xFD,
		Status: Status{
			InterruptDisable: true,
		},
	}
}

func (r Registers) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		r.A, r.X, r.Y, r.Status.Byte(), r.Sp)
}

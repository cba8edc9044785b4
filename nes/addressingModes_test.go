package nes

import "testing"

func TestOperandLocation(t *testing.T) {
	bus := NewBus()
	bus.WriteWord(0x0010, 0x0203) // pointer for IZY
	bus.WriteWord(0x0024, 0x0400) // pointer for IZX, $20+X
	bus.Write(0x00FF, 0x80)
	bus.Write(0x0000, 0x05) // pointer at $FF wraps: $0580
	bus.WriteWord(0x8100, 0x9000)

	tests := []struct {
		name string
		op   Operand
		regs Registers
		want uint16
	}{
		{"ZP0", Operand{ZP0, 0x42}, Registers{}, 0x0042},
		{"ZPX wraps in zero page", Operand{ZPX, 0xFF}, Registers{X: 0x02}, 0x0001},
		{"ZPY", Operand{ZPY, 0x10}, Registers{Y: 0x05}, 0x0015},
		{"ABS", Operand{ABS, 0x0200}, Registers{}, 0x0200},
		{"ABX", Operand{ABX, 0x0200}, Registers{X: 0x10}, 0x0210},
		{"ABY wraps at 16 bits", Operand{ABY, 0xFFFF}, Registers{Y: 0x01}, 0x0000},
		{"REL forward", Operand{REL, 0x10}, Registers{Pc: 0x8002}, 0x8012},
		{"REL backward", Operand{REL, 0xFC}, Registers{Pc: 0x8002}, 0x7FFE},
		{"IND", Operand{IND, 0x8100}, Registers{}, 0x9000},
		{"IZX", Operand{IZX, 0x20}, Registers{X: 0x04}, 0x0400},
		{"IZX pointer wraps", Operand{IZX, 0xFE}, Registers{X: 0x01}, 0x0580},
		{"IZY", Operand{IZY, 0x10}, Registers{Y: 0x01}, 0x0204},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			regs := test.regs
			if got := test.op.Location(&regs, bus); got != test.want {
				t.Errorf("got $%04X, want $%04X", got, test.want)
			}
		})
	}
}

func TestOperandValue(t *testing.T) {
	bus := NewBus()
	bus.Write(0x0001, 0xAB)
	bus.Write(0x0204, 0xCD)
	bus.WriteWord(0x0010, 0x0203)

	tests := []struct {
		name string
		op   Operand
		regs Registers
		want byte
	}{
		{"IMM", Operand{IMM, 0x05}, Registers{}, 0x05},
		{"ACC", Operand{ACC, 0}, Registers{A: 0x66}, 0x66},
		{"ZPX", Operand{ZPX, 0xFF}, Registers{X: 0x02}, 0xAB},
		{"IZY", Operand{IZY, 0x10}, Registers{Y: 0x01}, 0xCD},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			regs := test.regs
			if got := test.op.Value(&regs, bus); got != test.want {
				t.Errorf("got %02X, want %02X", got, test.want)
			}
		})
	}
}

func TestOperandStep(t *testing.T) {
	bus := NewBus()
	bus.WriteWord(0x0010, 0x0203)
	regs := Registers{Y: 0x01}

	// (indirect),Y reduces through absolute,Y before reaching absolute.
	op := Operand{IZY, 0x10}
	chain := []AddressingMode{IZY, ABY, ABS}
	for i, want := range chain {
		if op.Mode != want {
			t.Fatalf("step %d: got %v, want %v", i, op.Mode, want)
		}
		op = op.step(&regs, bus)
	}
	if !op.terminal() || op.Arg != 0x0204 {
		t.Errorf("got %v $%04X, want terminal ABS $0204", op.Mode, op.Arg)
	}
}

func TestOperandLocationPanicsWithoutAddress(t *testing.T) {
	for _, mode := range []AddressingMode{IMM, IMP, ACC} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%v: Location did not panic", mode)
				}
			}()
			Operand{mode, 0}.Location(&Registers{}, NewBus())
		}()
	}
}

func TestOperandBytes(t *testing.T) {
	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{IMP.OperandBytes(), 0},
		{ACC.OperandBytes(), 0},
		{IMM.OperandBytes(), 1},
		{REL.OperandBytes(), 1},
		{IZY.OperandBytes(), 1},
		{ABX.OperandBytes(), 2},
		{IND.OperandBytes(), 2},
		{ZPY.String(), "ZPY"},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

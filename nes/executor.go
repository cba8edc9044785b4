package nes

// Outcome tells the run loop whether to keep going after an operation.
type Outcome int

const (
	Continue Outcome = iota
	Halt
)

// Functions to push and pop from the stack.
func stackPush(r *Registers, b *Bus, data byte) {
	b.Write(stackBase|uint16(r.Sp), data)
	r.Sp--
}

func stackPop(r *Registers, b *Bus) byte {
	r.Sp++
	return b.Read(stackBase | uint16(r.Sp))
}

func stackPushWord(r *Registers, b *Bus, data uint16) {
	// High byte first so the word sits little endian in memory.
	stackPush(r, b, byte(data>>8))
	stackPush(r, b, byte(data))
}

func stackPopWord(r *Registers, b *Bus) uint16 {
	lo := stackPop(r, b)
	hi := stackPop(r, b)

	return uint16(hi)<<8 | uint16(lo)
}

// Execute performs an operation against the registers and memory. It holds no
// state of its own. BRK asks the caller to stop; an operation with no case
// returns an *ExecuteError.
func Execute(op Operation, r *Registers, b *Bus) (Outcome, error) {
	switch op.Mnemonic {
	// Loads, stores and transfers
	case LDA:
		r.A = op.Operand.Value(r, b)
		r.setZN(r.A)
	case LDX:
		r.X = op.Operand.Value(r, b)
		r.setZN(r.X)
	case LDY:
		r.Y = op.Operand.Value(r, b)
		r.setZN(r.Y)
	case STA:
		b.Write(op.Operand.Location(r, b), r.A)
	case STX:
		b.Write(op.Operand.Location(r, b), r.X)
	case STY:
		b.Write(op.Operand.Location(r, b), r.Y)
	case TAX:
		r.X = r.A
		r.setZN(r.X)
	case TAY:
		r.Y = r.A
		r.setZN(r.Y)
	case TXA:
		r.A = r.X
		r.setZN(r.A)
	case TYA:
		r.A = r.Y
		r.setZN(r.A)
	case TSX:
		r.X = r.Sp
		r.setZN(r.X)
	case TXS:
		// The only transfer that leaves the flags alone.
		r.Sp = r.X

	// Arithmetic and logic
	case ADC:
		adc(r, op.Operand.Value(r, b))
	case SBC:
		// A - M - (1 - C) is A + ^M + C.
		adc(r, ^op.Operand.Value(r, b))
	case AND:
		r.A &= op.Operand.Value(r, b)
		r.setZN(r.A)
	case ORA:
		r.A |= op.Operand.Value(r, b)
		r.setZN(r.A)
	case EOR:
		r.A ^= op.Operand.Value(r, b)
		r.setZN(r.A)
	case BIT:
		m := op.Operand.Value(r, b)
		r.Status.Zero = r.A&m == 0
		r.Status.Overflow = m&(1<<6) > 0
		r.Status.Negative = m&(1<<7) > 0
	case CMP:
		compare(r, r.A, op.Operand.Value(r, b))
	case CPX:
		compare(r, r.X, op.Operand.Value(r, b))
	case CPY:
		compare(r, r.Y, op.Operand.Value(r, b))

	// Increments and decrements
	case INC:
		modify(op, r, b, func(v byte) byte { return v + 1 })
	case DEC:
		modify(op, r, b, func(v byte) byte { return v - 1 })
	case INX:
		r.X++
		r.setZN(r.X)
	case INY:
		r.Y++
		r.setZN(r.Y)
	case DEX:
		r.X--
		r.setZN(r.X)
	case DEY:
		r.Y--
		r.setZN(r.Y)

	// Shifts and rotates
	case ASL:
		modify(op, r, b, func(v byte) byte {
			r.Status.Carry = v&(1<<7) > 0
			return v << 1
		})
	case LSR:
		modify(op, r, b, func(v byte) byte {
			r.Status.Carry = v&1 > 0
			return v >> 1
		})
	case ROL:
		modify(op, r, b, func(v byte) byte {
			carry := boolBit(r.Status.Carry)
			r.Status.Carry = v&(1<<7) > 0
			return v<<1 | carry
		})
	case ROR:
		modify(op, r, b, func(v byte) byte {
			carry := boolBit(r.Status.Carry)
			r.Status.Carry = v&1 > 0
			return v>>1 | carry<<7
		})

	// Branches
	case BCC:
		branch(op, r, b, !r.Status.Carry)
	case BCS:
		branch(op, r, b, r.Status.Carry)
	case BNE:
		branch(op, r, b, !r.Status.Zero)
	case BEQ:
		branch(op, r, b, r.Status.Zero)
	case BPL:
		branch(op, r, b, !r.Status.Negative)
	case BMI:
		branch(op, r, b, r.Status.Negative)
	case BVC:
		branch(op, r, b, !r.Status.Overflow)
	case BVS:
		branch(op, r, b, r.Status.Overflow)

	// Jumps and subroutines
	case JMP:
		r.Pc = op.Operand.Location(r, b)
	case JSR:
		target := op.Operand.Location(r, b)
		// Push the address of the last byte of the JSR; RTS adds one.
		stackPushWord(r, b, r.Pc-1)
		r.Pc = target
	case RTS:
		r.Pc = stackPopWord(r, b) + 1
	case RTI:
		r.Status.SetByte(stackPop(r, b))
		r.Pc = stackPopWord(r, b)

	// Stack
	case PHA:
		stackPush(r, b, r.A)
	case PHP:
		// Set B flag according to: http://visual6502.org/wiki/index.php?title=6502_BRK_and_B_bit
		stackPush(r, b, r.Status.Byte()|byte(StatusFlagB))
	case PLA:
		r.A = stackPop(r, b)
		r.setZN(r.A)
	case PLP:
		r.Status.SetByte(stackPop(r, b))

	// Status flags
	case CLC:
		r.Status.Carry = false
	case SEC:
		r.Status.Carry = true
	case CLI:
		r.Status.InterruptDisable = false
	case SEI:
		r.Status.InterruptDisable = true
	case CLD:
		r.Status.Decimal = false
	case SED:
		r.Status.Decimal = true
	case CLV:
		r.Status.Overflow = false

	case NOP:
	case BRK:
		// Skip the padding byte. The interrupt sequence through the IRQ vector
		// is not emulated; BRK stops the machine.
		r.Pc++
		r.Status.BreakCommand = true
		return Halt, nil

	default:
		return Continue, &ExecuteError{Op: op}
	}

	return Continue, nil
}

// adc adds m and the carry to the accumulator. Overflow is set when both
// inputs share a sign that the result does not.
func adc(r *Registers, m byte) {
	// 16-bit to keep any carry.
	sum := uint16(r.A) + uint16(m) + uint16(boolBit(r.Status.Carry))
	result := byte(sum)

	r.Status.Carry = sum > 0xFF
	r.Status.Overflow = (r.A^result)&(m^result)&0x80 != 0
	r.A = result
	r.setZN(r.A)
}

func compare(r *Registers, reg, m byte) {
	r.Status.Carry = reg >= m
	r.setZN(reg - m)
}

func branch(op Operation, r *Registers, b *Bus, taken bool) {
	if taken {
		r.Pc = op.Operand.Location(r, b)
	}
}

// modify applies f to the accumulator or to the operand's memory location,
// then sets zero and negative from the result.
func modify(op Operation, r *Registers, b *Bus, f func(byte) byte) {
	if op.Operand.Mode == ACC {
		r.A = f(r.A)
		r.setZN(r.A)
		return
	}

	addr := op.Operand.Location(r, b)
	result := f(b.Read(addr))
	b.Write(addr, result)
	r.setZN(result)
}

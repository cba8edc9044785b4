package nes

import "fmt"

// Mnemonic identifies one of the 56 documented 6502 instructions. The zero
// value, XXX, marks an opcode with no instruction.
type Mnemonic int

const (
	XXX Mnemonic = iota
	ADC          // Add with Carry
	AND          // Logical AND
	ASL          // Arithmetic Shift Left
	BCC          // Branch if Carry Clear
	BCS          // Branch if Carry Set
	BEQ          // Branch if Equal
	BIT          // Bit Test
	BMI          // Branch if Minus
	BNE          // Branch if Not Equal
	BPL          // Branch if Positive
	BRK          // Force Interrupt
	BVC          // Branch if Overflow Clear
	BVS          // Branch if Overflow Set
	CLC          // Clear Carry Flag
	CLD          // Clear Decimal Mode
	CLI          // Clear Interrupt Disable
	CLV          // Clear Overflow Flag
	CMP          // Compare (Accumulator)
	CPX          // Compare X Register
	CPY          // Compare Y Register
	DEC          // Decrement Memory
	DEX          // Decrement X Register
	DEY          // Decrement Y Register
	EOR          // Exclusive OR
	INC          // Increment Memory
	INX          // Increment X Register
	INY          // Increment Y Register
	JMP          // Jump
	JSR          // Jump to Subroutine
	LDA          // Load Accumulator
	LDX          // Load X Register
	LDY          // Load Y Register
	LSR          // Logical Shift Right
	NOP          // No Operation
	ORA          // Logical Inclusive OR
	PHA          // Push Accumulator
	PHP          // Push Processor Status
	PLA          // Pull Accumulator
	PLP          // Pull Processor Status
	ROL          // Rotate Left
	ROR          // Rotate Right
	RTI          // Return from Interrupt
	RTS          // Return from Subroutine
	SBC          // Subtract with Carry
	SEC          // Set Carry Flag
	SED          // Set Decimal Flag
	SEI          // Set Interrupt Disable
	STA          // Store Accumulator
	STX          // Store X Register
	STY          // Store Y Register
	TAX          // Transfer Accumulator to X
	TAY          // Transfer Accumulator to Y
	TSX          // Transfer Stack Pointer to X
	TXA          // Transfer X to Accumulator
	TXS          // Transfer X to Stack Pointer
	TYA          // Transfer Y to Accumulator

	mnemonicCount
)

var mnemonicNames = [mnemonicCount]string{
	"XXX", "ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL", "BRK", "BVC", "BVS",
	"CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY",
	"JMP", "JSR", "LDA", "LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL", "ROR",
	"RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS",
	"TYA",
}

func (m Mnemonic) String() string {
	if m < 0 || m >= mnemonicCount {
		return fmt.Sprintf("Mnemonic(%d)", int(m))
	}
	return mnemonicNames[m]
}

// Access says how an instruction uses its operand.
type Access int

const (
	Implied  Access = iota // no memory operand, or the accumulator
	Value                  // reads the operand
	Location               // writes to, or jumps to, the operand's address
)

// Operation is a decoded instruction, built fresh by Decode and consumed once
// by Execute.
type Operation struct {
	Mnemonic Mnemonic
	Access   Access
	Operand  Operand

	Opcode byte   // Opcode the operation was decoded from
	Addr   uint16 // Address of the opcode
	Cycles byte   // Base cycle count, ignoring page crossings
}

// Len is the encoded size of the instruction in bytes.
func (op Operation) Len() int {
	return 1 + op.Operand.Mode.OperandBytes()
}

// String renders the instruction in assembler syntax. Branch targets are shown
// as absolute addresses.
func (op Operation) String() string {
	arg := op.Operand.Arg
	name := op.Mnemonic.String()

	switch op.Operand.Mode {
	case ACC:
		return name + " A"
	case IMM:
		return fmt.Sprintf("%s #$%02X", name, byte(arg))
	case REL:
		next := op.Addr + uint16(op.Len())
		return fmt.Sprintf("%s $%04X", name, next+uint16(int8(byte(arg))))
	case ZP0:
		return fmt.Sprintf("%s $%02X", name, byte(arg))
	case ZPX:
		return fmt.Sprintf("%s $%02X,X", name, byte(arg))
	case ZPY:
		return fmt.Sprintf("%s $%02X,Y", name, byte(arg))
	case ABS:
		return fmt.Sprintf("%s $%04X", name, arg)
	case ABX:
		return fmt.Sprintf("%s $%04X,X", name, arg)
	case ABY:
		return fmt.Sprintf("%s $%04X,Y", name, arg)
	case IND:
		return fmt.Sprintf("%s ($%04X)", name, arg)
	case IZX:
		return fmt.Sprintf("%s ($%02X,X)", name, byte(arg))
	case IZY:
		return fmt.Sprintf("%s ($%02X),Y", name, byte(arg))
	}

	return name
}

// Bytes returns the encoded instruction.
func (op Operation) Bytes() []byte {
	out := []byte{op.Opcode}
	switch op.Operand.Mode.OperandBytes() {
	case 1:
		out = append(out, byte(op.Operand.Arg))
	case 2:
		out = append(out, byte(op.Operand.Arg), byte(op.Operand.Arg>>8))
	}
	return out
}

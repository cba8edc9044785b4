package nes

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnimplementedOpcode is the cause of every *DecodeError.
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")

	// ErrUnimplementedOperation is the cause of every *ExecuteError.
	ErrUnimplementedOperation = errors.New("unimplemented operation")

	// ErrHalted is returned when stepping a CPU that has already stopped.
	ErrHalted = errors.New("cpu is halted")
)

// DecodeError reports an opcode byte with no entry in the decode table.
type DecodeError struct {
	Opcode byte
	Pc     uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v $%02X at $%04X", ErrUnimplementedOpcode, e.Opcode, e.Pc)
}

func (e *DecodeError) Cause() error  { return ErrUnimplementedOpcode }
func (e *DecodeError) Unwrap() error { return ErrUnimplementedOpcode }

// ExecuteError reports a decoded operation the executor has no case for.
type ExecuteError struct {
	Op Operation
}

func (e *ExecuteError) Error() string {
	return fmt.Sprintf("%v %v at $%04X", ErrUnimplementedOperation, e.Op.Mnemonic, e.Op.Addr)
}

func (e *ExecuteError) Cause() error  { return ErrUnimplementedOperation }
func (e *ExecuteError) Unwrap() error { return ErrUnimplementedOperation }

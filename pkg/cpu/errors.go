package cpu

import (
	"errors"
	"fmt"

	"gochip8/pkg/opcode"
	"gochip8/pkg/stack"
)

var (
	// ErrCallStackFull is returned when CALL is executed at maximum nesting depth.
	ErrCallStackFull = fmt.Errorf("call stack full: %w", stack.ErrOverflow)
	// ErrCallStackEmpty is returned when RET is executed with no pending call.
	ErrCallStackEmpty = errors.New("call stack empty")
)

// InvalidAddressModeError reports a handler receiving an addressing mode it
// does not implement.
type InvalidAddressModeError struct {
	Kind opcode.Kind
	Mode opcode.Mode
}

func (e *InvalidAddressModeError) Error() string {
	return fmt.Sprintf("invalid address mode %T for %s", e.Mode, e.Kind)
}

func invalidMode(op opcode.Opcode) error {
	return &InvalidAddressModeError{Kind: op.Kind, Mode: op.Mode}
}

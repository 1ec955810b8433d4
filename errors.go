package cargo

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound       = errors.New("client table not found")
	ErrInputMalformed      = errors.New("client table malformed")
	ErrOracleUnavailable   = errors.New("solver oracle unavailable")
	ErrAssignmentInvariant = errors.New("assignment invariant violated")
	ErrObjectiveMismatch   = errors.New("objective value mismatch")
)

// InputError identifies the offending record of a malformed table.
type InputError struct {
	Line  int
	Field string
	Msg   string
}

func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d, field %s: %s", e.Line, e.Field, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *InputError) Unwrap() error {
	return ErrInputMalformed
}

package codes

import (
	"errors"
	"fmt"
)

// ErrUnknownIdentifier matches any *UnknownIdentifierError via errors.Is.
var ErrUnknownIdentifier = errors.New("codes: unknown identifier")

// UnknownIdentifierError reports input that is neither a code nor a known
// name or alias in the table for Dimension.
type UnknownIdentifierError struct {
	Dimension Dimension
	Input     string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("codes: unknown %s %q", e.Dimension, e.Input)
}

// Is reports whether target is ErrUnknownIdentifier.
func (e *UnknownIdentifierError) Is(target error) bool {
	return target == ErrUnknownIdentifier
}

package options

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownOption is returned for a setting with no matching option.
	ErrUnknownOption = errors.New("unknown option")
	// ErrOutOfRange is returned for a range value outside its bounds.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidValue is returned when a value has the wrong shape for its option.
	ErrInvalidValue = errors.New("invalid option value")
	// ErrUnknownItem is returned when an item set names an item the game lacks.
	ErrUnknownItem = errors.New("unknown item name")
)

// ValidationError collects every problem found while resolving settings.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return "invalid settings: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

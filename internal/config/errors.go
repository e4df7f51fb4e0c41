package config

import (
	"errors"
	"fmt"
)

// Validation errors for frame configuration.
var (
	// ErrInvalidViewport indicates non-finite or inverted bounds.
	ErrInvalidViewport = errors.New("config: invalid viewport")

	// ErrInvalidResolution indicates a non-positive width or height.
	ErrInvalidResolution = errors.New("config: invalid resolution")

	// ErrInvalidIterations indicates a zero iteration cap.
	ErrInvalidIterations = errors.New("config: invalid iteration cap")

	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("config: invalid worker count")

	// ErrUnknownPreset indicates a region name missing from the preset table.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// ArgError wraps a positional argument that failed to parse.
type ArgError struct {
	Name    string
	Value   string
	Wrapped error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("problem parsing argument %s=%q: %v", e.Name, e.Value, e.Wrapped)
}

func (e *ArgError) Unwrap() error {
	return e.Wrapped
}

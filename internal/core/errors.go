package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration reports a grid that would have no cells.
	ErrInvalidConfiguration = errors.New("invalid grid configuration")
	// ErrOutOfRange reports a coordinate outside the grid extent.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrUnknownAttribute reports a write of a key the active rule never declared.
	ErrUnknownAttribute = errors.New("unknown cell attribute")

	ErrInvalidRule   = errors.New("invalid rule")
	ErrMissingUpdate = fmt.Errorf("%w: missing update function", ErrInvalidRule)
	ErrMissingName   = fmt.Errorf("%w: missing name", ErrInvalidRule)
	ErrInvalidSchema = fmt.Errorf("%w: bad attribute schema", ErrInvalidRule)

	// ErrRunning is returned by manual stepping while the clock runs.
	ErrRunning = errors.New("simulation is running")
	// ErrNoRule is returned when stepping an engine without a selected rule.
	ErrNoRule = errors.New("no rule selected")

	ErrUnknownPreset   = errors.New("unknown preset")
	ErrDuplicatePreset = errors.New("preset already registered")
)

// CoordError describes an out-of-range grid access.
type CoordError struct {
	I, J int
	W, H int
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("coordinate (%d,%d) out of range for %dx%d grid", e.I, e.J, e.W, e.H)
}

func (e *CoordError) Unwrap() error { return ErrOutOfRange }

// AttrError describes a write of an undeclared attribute.
type AttrError struct {
	Key string
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("attribute %q not declared by rule", e.Key)
}

func (e *AttrError) Unwrap() error { return ErrUnknownAttribute }

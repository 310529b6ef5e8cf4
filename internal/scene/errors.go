package scene

import "errors"

var (
	// ErrEmptyGrid is returned when a scene has no grid rows.
	ErrEmptyGrid = errors.New("scene grid is empty")

	// ErrUnknownStep is returned for a step type the compiler does not know.
	ErrUnknownStep = errors.New("unknown step type")

	// ErrUnknownSlot is returned when a step names a slot Cell does not have.
	ErrUnknownSlot = errors.New("unknown slot")

	// ErrInvalidRange is returned when a range bound is not a [start, end] pair.
	ErrInvalidRange = errors.New("invalid range")
)

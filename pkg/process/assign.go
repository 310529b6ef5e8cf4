package process

import "github.com/aretw0/mosaic/pkg/channel"

// AssignProcess writes a constant into one slot.
type AssignProcess[C, T any] struct {
	slot  channel.Slot[C, T]
	value T
}

// Assign creates a process that overwrites slot with value.
func Assign[C, T any](slot channel.Slot[C, T], value T) AssignProcess[C, T] {
	return AssignProcess[C, T]{slot: slot, value: value}
}

func (a AssignProcess[C, T]) Process(c C) C {
	return a.slot.Set(c, a.value)
}

// Value returns the constant the process assigns.
func (a AssignProcess[C, T]) Value() T {
	return a.value
}

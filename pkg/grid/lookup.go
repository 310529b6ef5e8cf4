package grid

import "github.com/aretw0/mosaic/pkg/channel"

// LookupProcess reads a coordinate from the channel and writes the matrix value
// at that coordinate into a value slot.
type LookupProcess[C, T any] struct {
	matrix *Matrix[T]
	point  channel.Slot[C, Point]
	value  channel.Slot[C, T]
}

// Lookup uses m as a process over channels of type C.
func Lookup[C, T any](m *Matrix[T], point channel.Slot[C, Point], value channel.Slot[C, T]) LookupProcess[C, T] {
	return LookupProcess[C, T]{matrix: m, point: point, value: value}
}

func (l LookupProcess[C, T]) Process(c C) C {
	return l.value.Set(c, l.matrix.At(l.point.Get(c)))
}

package process

import (
	"github.com/aretw0/mosaic/pkg/channel"
	"github.com/aretw0/mosaic/pkg/grid"
)

// MapFieldProcess reads slot A, applies fn and writes the result into slot B.
type MapFieldProcess[C, A, B any] struct {
	from channel.Slot[C, A]
	to   channel.Slot[C, B]
	fn   func(A) B
}

// MapField creates a process deriving the to slot from the from slot.
// from and to may be the same slot for an in-place transform.
func MapField[C, A, B any](from channel.Slot[C, A], to channel.Slot[C, B], fn func(A) B) MapFieldProcess[C, A, B] {
	return MapFieldProcess[C, A, B]{from: from, to: to, fn: fn}
}

func (m MapFieldProcess[C, A, B]) Process(c C) C {
	return m.to.Set(c, m.fn(m.from.Get(c)))
}

// Offset shifts the point held in slot by (dx, dy).
func Offset[C any](slot channel.Slot[C, grid.Point], dx, dy int) MapFieldProcess[C, grid.Point, grid.Point] {
	return MapField(slot, slot, func(p grid.Point) grid.Point {
		return p.Add(grid.Point{X: dx, Y: dy})
	})
}

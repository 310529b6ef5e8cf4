package screen

import (
	"fmt"

	"github.com/aretw0/mosaic/pkg/channel"
	"github.com/aretw0/mosaic/pkg/grid"
)

// Process is the transformation Display runs for every coordinate.
// It matches process.Process without importing it.
type Process[C any] interface {
	Process(c C) C
}

// Hooks are called after each successful emit.
type Hooks struct {
	OnCell func(p grid.Point)
	OnRow  func(y int)
}

// Option configures a Display call.
type Option func(*options)

type options struct {
	hooks []Hooks
}

// WithHooks registers observation hooks. It may be given more than once.
func WithHooks(h Hooks) Option {
	return func(o *options) {
		o.hooks = append(o.hooks, h)
	}
}

// Display renders proc over rng into sink.
// point receives each coordinate; value is read back after proc and printed.
func Display[C, V any](
	sink Sink[V],
	proc Process[C],
	rng Range,
	point channel.Slot[C, grid.Point],
	value channel.Slot[C, V],
	opts ...Option,
) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	for y := rng.Y.Start; y < rng.Y.End; y++ {
		for x := rng.X.Start; x < rng.X.End; x++ {
			p := grid.Point{X: x, Y: y}

			var zero C
			out := proc.Process(point.Set(zero, p))

			if err := sink.Print(value.Get(out)); err != nil {
				return fmt.Errorf("print cell %s: %w", p, err)
			}
			for _, h := range o.hooks {
				if h.OnCell != nil {
					h.OnCell(p)
				}
			}
		}

		if err := sink.Println(); err != nil {
			return fmt.Errorf("terminate row %d: %w", y, err)
		}
		for _, h := range o.hooks {
			if h.OnRow != nil {
				h.OnRow(y)
			}
		}
	}
	return nil
}

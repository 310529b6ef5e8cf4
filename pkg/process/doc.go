/*
Package process provides stateless transformations over channel values.

A Process consumes a channel by value and returns a (possibly) modified channel of the
same type. Processes hold only their own configuration and never keep a reference to a
channel, so one instance can be applied any number of times.

# Combinators

  - Assign: overwrite one slot with a constant.
  - MapField: read one slot, apply a pure function, write another (or the same) slot.
  - Chain: apply an ordered list of processes left to right. Later writes win.
  - Offset: shift a point slot by a fixed amount.

Example:

	pipeline := process.Chain[Pixel]{
		process.Offset(PixelPoint, 1, 0),
		grid.Lookup(sprite, PixelPoint, PixelColor),
		process.MapField(PixelColor, PixelColor, darken),
	}
	out := pipeline.Process(Pixel{Point: grid.Point{X: 3, Y: 4}})
*/
package process

/*
Package channel defines the typed read/write capability that processes operate on.

A channel is any Go value type, usually a small struct, threaded by value through a
pipeline of processes. Instead of exposing fields by name, a channel exposes one
Slot per field. A Slot[C, T] is the capability "channel type C can read and write a
value of type T". Processes are written against slots, so the compiler rejects any
pipeline that asks a channel for a type it was never wired to support.

# Key Types

  - Slot: the read/write capability for one typed value of a channel.
  - Field: the standard Slot implementation, built from a getter and a copy-on-write setter.

Slots are usually generated with cmd/slotgen:

	//go:generate go run github.com/aretw0/mosaic/cmd/slotgen --type Pixel --file pixel.go

	type Pixel struct {
		Point grid.Point
		Color int
	}

	// pixel_slots.go (generated)
	var PixelPoint = channel.Field("Point",
		func(c Pixel) grid.Point { return c.Point },
		func(c Pixel, v grid.Point) Pixel { c.Point = v; return c },
	)

Two fields of the same type are never ambiguous: each has its own slot, and a process
names the slot it wants.
*/
package channel

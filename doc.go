/*
Package mosaic renders two-dimensional scenes by running typed, composable processes
over every coordinate of a range.

The building blocks live in pkg/:

  - channel: Slot, the type-indexed read/write capability of a channel value.
  - process: Process plus the Assign, MapField and Chain combinators.
  - grid: Matrix, a bounds-checked lookup table usable as a process.
  - screen: Display, the row-major renderer, and the Sink it writes to.

This package ties them to YAML scene files for hosts that just want output.

# Usage

	eng, err := mosaic.New("scenes/corner.yaml", mosaic.WithColor(termenv.TrueColor))
	if err != nil {
		log.Fatal(err)
	}
	if err := eng.Render(os.Stdout); err != nil {
		log.Fatal(err)
	}

A scene file declares the grid, the range to render, an optional palette and the
pipeline steps:

	name: corner
	grid:
	  - [3, 3, 1, 3]
	  - [3, 3, 3, 3]
	range:
	  x: [0, 3]
	  y: [-1, 2]
	palette:
	  1: "#ef4444"
	steps:
	  - type: offset
	    args: {dx: 1, dy: 0}

Coordinates outside the grid render as 0. A lookup step is added automatically when
the pipeline has none.
*/
package mosaic

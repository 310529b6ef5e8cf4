package scene

import "github.com/aretw0/mosaic/pkg/grid"

//go:generate go run github.com/aretw0/mosaic/cmd/slotgen --type Cell --file cell.go --out cell_slots.go

// Cell is the channel threaded through a scene pipeline.
// Value and Layer share a type; steps address them through their own slots.
type Cell struct {
	Point grid.Point
	Value int
	Layer int
}

package scene

import (
	"fmt"

	"github.com/aretw0/mosaic/pkg/channel"
	"github.com/aretw0/mosaic/pkg/grid"
	"github.com/aretw0/mosaic/pkg/process"
	"github.com/mitchellh/mapstructure"
)

// Step types understood by Compile.
const (
	StepOffset = "offset"
	StepPin    = "pin"
	StepLookup = "lookup"
	StepRemap  = "remap"
	StepAssign = "assign"
	StepCopy   = "copy"
)

// OffsetArgs shifts the cell coordinate before lookup.
type OffsetArgs struct {
	DX int `mapstructure:"dx"`
	DY int `mapstructure:"dy"`
}

// PinArgs forces every cell to read the same coordinate.
type PinArgs struct {
	At grid.Point `mapstructure:"at"`
}

// LookupArgs reads the grid at the cell coordinate into Into (default "value").
type LookupArgs struct {
	Into string `mapstructure:"into"`
}

// RemapArgs replaces values found in Table, reading From and writing To.
// Values missing from Table pass through unchanged.
type RemapArgs struct {
	From  string      `mapstructure:"from"`
	To    string      `mapstructure:"to"`
	Table map[int]int `mapstructure:"table"`
}

// AssignArgs writes a constant into Slot.
type AssignArgs struct {
	Slot  string `mapstructure:"slot"`
	Value int    `mapstructure:"value"`
}

// CopyArgs copies one int slot into another.
type CopyArgs struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// intSlot resolves the name of one of Cell's int slots.
func intSlot(name string) (channel.Slot[Cell, int], error) {
	switch name {
	case "", "value":
		return CellValue, nil
	case "layer":
		return CellLayer, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSlot)
	}
}

func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}

// buildStep turns one configured step into a process over Cell.
func buildStep(step Step, m *grid.Matrix[int]) (process.Process[Cell], error) {
	switch step.Type {
	case StepOffset:
		var a OffsetArgs
		if err := decodeArgs(step.Args, &a); err != nil {
			return nil, err
		}
		return process.Offset[Cell](CellPoint, a.DX, a.DY), nil

	case StepPin:
		var a PinArgs
		if err := decodeArgs(step.Args, &a); err != nil {
			return nil, err
		}
		return process.Assign[Cell, grid.Point](CellPoint, a.At), nil

	case StepLookup:
		var a LookupArgs
		if err := decodeArgs(step.Args, &a); err != nil {
			return nil, err
		}
		into, err := intSlot(a.Into)
		if err != nil {
			return nil, err
		}
		return grid.Lookup[Cell, int](m, CellPoint, into), nil

	case StepRemap:
		var a RemapArgs
		if err := decodeArgs(step.Args, &a); err != nil {
			return nil, err
		}
		from, err := intSlot(a.From)
		if err != nil {
			return nil, err
		}
		to, err := intSlot(a.To)
		if err != nil {
			return nil, err
		}
		table := a.Table
		return process.MapField(from, to, func(v int) int {
			if r, ok := table[v]; ok {
				return r
			}
			return v
		}), nil

	case StepAssign:
		var a AssignArgs
		if err := decodeArgs(step.Args, &a); err != nil {
			return nil, err
		}
		slot, err := intSlot(a.Slot)
		if err != nil {
			return nil, err
		}
		return process.Assign(slot, a.Value), nil

	case StepCopy:
		var a CopyArgs
		if err := decodeArgs(step.Args, &a); err != nil {
			return nil, err
		}
		from, err := intSlot(a.From)
		if err != nil {
			return nil, err
		}
		to, err := intSlot(a.To)
		if err != nil {
			return nil, err
		}
		return process.MapField(from, to, func(v int) int { return v }), nil

	default:
		return nil, fmt.Errorf("%q: %w", step.Type, ErrUnknownStep)
	}
}

// movesPoint reports whether a step type rewrites the cell coordinate.
func movesPoint(stepType string) bool {
	return stepType == StepOffset || stepType == StepPin
}

package scene

import (
	"fmt"
	"slices"

	"github.com/aretw0/mosaic/pkg/grid"
	"github.com/aretw0/mosaic/pkg/process"
	"github.com/aretw0/mosaic/pkg/screen"
)

// Scene is a compiled, ready-to-render scene.
type Scene struct {
	Config   *Config
	Matrix   *grid.Matrix[int]
	Pipeline process.Chain[Cell]
	Range    screen.Range
	// Steps lists the effective step types, including an implicit lookup.
	Steps []string
}

// Compile validates cfg and builds its pipeline.
//
// When no step is a lookup, one is inserted right after the last step that moves the
// cell coordinate, so geometry runs before the lookup and value steps after it.
func Compile(cfg *Config) (*Scene, error) {
	if len(cfg.Grid) == 0 {
		return nil, ErrEmptyGrid
	}
	m, err := grid.New(cfg.Grid)
	if err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}
	rng, err := cfg.ScreenRange()
	if err != nil {
		return nil, err
	}

	steps := effectiveSteps(cfg.Steps)

	chain := make(process.Chain[Cell], 0, len(steps))
	types := make([]string, 0, len(steps))
	for i, step := range steps {
		p, err := buildStep(step, m)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Type, err)
		}
		chain = append(chain, p)
		types = append(types, step.Type)
	}

	return &Scene{
		Config:   cfg,
		Matrix:   m,
		Pipeline: chain,
		Range:    rng,
		Steps:    types,
	}, nil
}

func effectiveSteps(steps []Step) []Step {
	hasLookup := slices.ContainsFunc(steps, func(s Step) bool { return s.Type == StepLookup })
	if hasLookup {
		return steps
	}

	at := 0
	for i, s := range steps {
		if movesPoint(s.Type) {
			at = i + 1
		}
	}
	out := make([]Step, 0, len(steps)+1)
	out = append(out, steps[:at]...)
	out = append(out, Step{Type: StepLookup})
	return append(out, steps[at:]...)
}

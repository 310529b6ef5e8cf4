package mosaic

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/mosaic/internal/presentation/legend"
	"github.com/aretw0/mosaic/internal/presentation/tui"
	"github.com/aretw0/mosaic/internal/scene"
	"github.com/aretw0/mosaic/pkg/observability"
	"github.com/aretw0/mosaic/pkg/screen"
	"github.com/muesli/termenv"
)

// Version is the current release of mosaic.
const Version = "0.3.0"

// Engine is the high-level entry point: a compiled scene plus its output settings.
type Engine struct {
	scene   *scene.Scene
	logger  *slog.Logger
	metrics *observability.Metrics
	profile termenv.Profile
	color   bool
	rng     *screen.Range
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics feeds render activity into m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithColor renders through the palette using the given terminal profile.
// Without it the engine writes plain values.
func WithColor(profile termenv.Profile) Option {
	return func(e *Engine) {
		e.color = true
		e.profile = profile
	}
}

// WithRange overrides the range configured in the scene.
func WithRange(r screen.Range) Option {
	return func(e *Engine) {
		e.rng = &r
	}
}

// New loads the scene file at path and compiles it.
func New(path string, opts ...Option) (*Engine, error) {
	cfg, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return FromConfig(cfg, opts...)
}

// FromConfig compiles an in-memory scene configuration.
func FromConfig(cfg *scene.Config, opts ...Option) (*Engine, error) {
	eng := &Engine{Name: cfg.Name}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("scene", eng.Name)
	}

	s, err := scene.Compile(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to compile scene: %w", err)
	}
	eng.scene = s

	eng.logger.Debug("scene compiled",
		"width", s.Matrix.Width(),
		"height", s.Matrix.Height(),
		"steps", len(s.Steps),
	)
	return eng, nil
}

// Range returns the coordinate range Render visits.
func (e *Engine) Range() screen.Range {
	if e.rng != nil {
		return *e.rng
	}
	return e.scene.Range
}

// Within returns a copy of the engine that renders r instead.
func (e *Engine) Within(r screen.Range) *Engine {
	c := *e
	c.rng = &r
	return &c
}

// Scene returns the compiled scene.
func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

// Legend returns a markdown summary of the scene.
func (e *Engine) Legend() string {
	return legend.Markdown(e.sceneForLegend())
}

// Render draws the scene into w, one line per row.
// Write failures are returned, never dropped.
func (e *Engine) Render(w io.Writer) error {
	rng := e.Range()

	var opts []screen.Option
	if e.metrics != nil {
		opts = append(opts, screen.WithHooks(e.metrics.Hooks()))
	}

	err := screen.Display[scene.Cell, int](e.sink(w), e.scene.Pipeline, rng, scene.CellPoint, scene.CellValue, opts...)
	if e.metrics != nil {
		e.metrics.ObserveError(err)
	}
	if err != nil {
		e.logger.Error("render failed", "range", rng.String(), "error", err)
		return fmt.Errorf("render failed: %w", err)
	}

	e.logger.Debug("render finished", "range", rng.String(), "cells", rng.Cells(), "rows", rng.Y.Len())
	return nil
}

func (e *Engine) sink(w io.Writer) screen.Sink[int] {
	cfg := e.scene.Config
	if e.color {
		return tui.NewColorSink(w, e.profile, cfg.Palette,
			tui.WithGlyph(cfg.Glyph),
			tui.WithTerminator(cfg.RowTerminator()),
		)
	}
	return screen.NewTextSink[int](w, screen.WithTerminator(cfg.RowTerminator()))
}

// sceneForLegend reflects a WithRange override in the summary.
func (e *Engine) sceneForLegend() *scene.Scene {
	if e.rng == nil {
		return e.scene
	}
	s := *e.scene
	s.Range = *e.rng
	return &s
}

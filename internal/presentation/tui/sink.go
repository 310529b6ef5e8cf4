package tui

import (
	"io"
	"strconv"

	"github.com/aretw0/mosaic/pkg/screen"
	"github.com/muesli/termenv"
)

// ColorSink is a screen.Sink that paints each value with its palette colour.
type ColorSink struct {
	w          io.Writer
	out        *termenv.Output
	palette    map[int]termenv.Color
	glyph      string
	terminator string
}

// SinkOption configures a ColorSink.
type SinkOption func(*ColorSink)

// WithGlyph prints glyph for every cell instead of the cell's number.
func WithGlyph(glyph string) SinkOption {
	return func(s *ColorSink) {
		s.glyph = glyph
	}
}

// WithTerminator overrides the row terminator (default: reset marker + newline).
func WithTerminator(t string) SinkOption {
	return func(s *ColorSink) {
		s.terminator = t
	}
}

// NewColorSink creates a sink writing to w with the given colour profile.
// Palette values are hex or ANSI colour strings, as accepted by termenv.
func NewColorSink(w io.Writer, profile termenv.Profile, palette map[int]string, opts ...SinkOption) *ColorSink {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	colors := make(map[int]termenv.Color, len(palette))
	for v, c := range palette {
		colors[v] = out.Color(c)
	}

	s := &ColorSink{
		w:          w,
		out:        out,
		palette:    colors,
		terminator: screen.ResetMarker + "\n",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ColorSink) Print(v int) error {
	text := s.glyph
	if text == "" {
		text = strconv.Itoa(v)
	}
	style := s.out.String(text)
	if c, ok := s.palette[v]; ok {
		style = style.Foreground(c)
	}
	_, err := io.WriteString(s.w, style.String())
	return err
}

func (s *ColorSink) Println() error {
	_, err := io.WriteString(s.w, s.terminator)
	return err
}

var _ screen.Sink[int] = (*ColorSink)(nil)

package screen

import (
	"fmt"
	"io"
)

// ResetMarker is the ANSI attribute reset written before every line break by TextSink.
const ResetMarker = "\x1b[0m"

// Sink receives rendered values and row terminators in render order.
type Sink[V any] interface {
	Print(v V) error
	Println() error
}

// TextSink writes values with fmt.Fprint and ends rows with a terminator.
type TextSink[V any] struct {
	w          io.Writer
	terminator string
}

// SinkOption configures a TextSink.
type SinkOption func(*sinkConfig)

type sinkConfig struct {
	terminator string
}

// WithTerminator replaces the default row terminator (ResetMarker + "\n").
func WithTerminator(t string) SinkOption {
	return func(c *sinkConfig) {
		c.terminator = t
	}
}

// NewTextSink creates a text sink writing to w.
func NewTextSink[V any](w io.Writer, opts ...SinkOption) *TextSink[V] {
	cfg := sinkConfig{terminator: ResetMarker + "\n"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TextSink[V]{w: w, terminator: cfg.terminator}
}

func (s *TextSink[V]) Print(v V) error {
	_, err := fmt.Fprint(s.w, v)
	return err
}

func (s *TextSink[V]) Println() error {
	_, err := io.WriteString(s.w, s.terminator)
	return err
}

package screen

import (
	"fmt"
	"strconv"
	"strings"
)

// Span is the half-open integer interval [Start, End).
type Span struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

// Len returns the number of integers in the span, or 0 if End <= Start.
func (s Span) Len() int {
	return max(s.End-s.Start, 0)
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// ParseSpan parses "start:end", e.g. "-1:3".
func ParseSpan(text string) (Span, error) {
	before, after, ok := strings.Cut(text, ":")
	if !ok {
		return Span{}, fmt.Errorf("invalid span %q: expected start:end", text)
	}
	start, err := strconv.Atoi(strings.TrimSpace(before))
	if err != nil {
		return Span{}, fmt.Errorf("invalid span start %q: %w", before, err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(after))
	if err != nil {
		return Span{}, fmt.Errorf("invalid span end %q: %w", after, err)
	}
	return Span{Start: start, End: end}, nil
}

// Range is the rectangle X x Y visited by Display.
type Range struct {
	X Span `yaml:"x" json:"x"`
	Y Span `yaml:"y" json:"y"`
}

// Rect builds a Range from [x0, x1) x [y0, y1).
func Rect(x0, x1, y0, y1 int) Range {
	return Range{X: Span{Start: x0, End: x1}, Y: Span{Start: y0, End: y1}}
}

// Cells returns the number of coordinates in the range.
func (r Range) Cells() int {
	return r.X.Len() * r.Y.Len()
}

func (r Range) String() string {
	return r.X.String() + "x" + r.Y.String()
}

package legend

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/mosaic/internal/scene"
)

// Markdown produces a human-readable summary of a compiled scene:
// - a property table (grid size, render range, cell count)
// - the palette legend, sorted by value
// - the effective pipeline, in application order
func Markdown(s *scene.Scene) string {
	var sb strings.Builder

	title := s.Config.Name
	if title == "" {
		title = "Scene"
	}
	fmt.Fprintf(&sb, "# %s\n\n", escape(title))

	sb.WriteString("| Property | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Grid | %d x %d |\n", s.Matrix.Width(), s.Matrix.Height())
	fmt.Fprintf(&sb, "| Range | `%s` |\n", s.Range)
	fmt.Fprintf(&sb, "| Cells | %d |\n", s.Range.Cells())
	if s.Config.Glyph != "" {
		fmt.Fprintf(&sb, "| Glyph | `%s` |\n", s.Config.Glyph)
	}

	if len(s.Config.Palette) > 0 {
		sb.WriteString("\n## Palette\n\n| Value | Colour |\n|---|---|\n")
		values := make([]int, 0, len(s.Config.Palette))
		for v := range s.Config.Palette {
			values = append(values, v)
		}
		slices.Sort(values)
		for _, v := range values {
			fmt.Fprintf(&sb, "| %d | `%s` |\n", v, escape(s.Config.Palette[v]))
		}
	}

	sb.WriteString("\n## Pipeline\n\n")
	for i, step := range s.Steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}

	return sb.String()
}

// escape keeps table cells from breaking on pipes.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

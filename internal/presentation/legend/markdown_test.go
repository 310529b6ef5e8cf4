package legend_test

import (
	"strings"
	"testing"

	"github.com/aretw0/mosaic/internal/presentation/legend"
	"github.com/aretw0/mosaic/internal/scene"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *scene.Config
		contains []string
		absent   []string
	}{
		{
			name: "Defaults",
			cfg:  &scene.Config{Grid: [][]int{{1, 2, 3}, {4, 5, 6}}},
			contains: []string{
				"# Scene",
				"| Grid | 3 x 2 |",
				"| Range | `[0,3)x[0,2)` |",
				"| Cells | 6 |",
				"1. lookup",
			},
			absent: []string{"## Palette", "Glyph"},
		},
		{
			name: "Palette Sorted",
			cfg: &scene.Config{
				Name:    "sorted",
				Grid:    [][]int{{1}},
				Palette: map[int]string{3: "#333333", 1: "#111111", 2: "#222222"},
				Glyph:   "##",
			},
			contains: []string{
				"# sorted",
				"| 1 | `#111111` |\n| 2 | `#222222` |\n| 3 | `#333333` |",
				"| Glyph | `##` |",
			},
		},
		{
			name: "Pipeline Order",
			cfg: &scene.Config{
				Grid: [][]int{{1}},
				Steps: []scene.Step{
					{Type: scene.StepAssign, Args: map[string]any{"value": 1}},
					{Type: scene.StepOffset, Args: map[string]any{"dx": 1}},
				},
			},
			contains: []string{
				"1. assign\n2. offset\n3. lookup\n",
			},
		},
		{
			name:     "Title Escaping",
			cfg:      &scene.Config{Name: "a|b", Grid: [][]int{{1}}},
			contains: []string{`# a\|b`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := scene.Compile(tt.cfg)
			if err != nil {
				t.Fatalf("Compile() failed: %v", err)
			}
			got := legend.Markdown(s)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Markdown() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(got, unwanted) {
					t.Errorf("Markdown() = \n%v\nUnexpected substring: %v", got, unwanted)
				}
			}
		})
	}
}

package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/mosaic/pkg/grid"
	"github.com/aretw0/mosaic/pkg/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "corner.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "corner", cfg.Name)
	assert.Len(t, cfg.Grid, 4)
	assert.Equal(t, "#ef4444", cfg.Palette[1])
	assert.Equal(t, screen.ResetMarker+"\n", cfg.RowTerminator())

	rng, err := cfg.ScreenRange()
	require.NoError(t, err)
	assert.Equal(t, screen.Rect(0, 3, -1, 3), rng)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("grid: [[1, 2], oops"))
	assert.Error(t, err)
}

func TestScreenRange_DefaultsToGrid(t *testing.T) {
	cfg := &Config{Grid: [][]int{{1, 2, 3}, {4, 5, 6}}}
	rng, err := cfg.ScreenRange()
	require.NoError(t, err)
	assert.Equal(t, screen.Rect(0, 3, 0, 2), rng)
}

func TestScreenRange_Invalid(t *testing.T) {
	cfg := &Config{Grid: [][]int{{1}}, Range: &RangeConfig{X: []int{0}, Y: []int{0, 1}}}
	_, err := cfg.ScreenRange()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCompile_ImplicitLookup(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "corner.yaml"))
	require.NoError(t, err)

	s, err := Compile(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{StepLookup}, s.Steps)
	assert.Equal(t, 1, s.Pipeline.Process(Cell{Point: grid.Pt(2, 0)}).Value)
	assert.Equal(t, 2, s.Pipeline.Process(Cell{Point: grid.Pt(0, 2)}).Value)
	assert.Equal(t, 0, s.Pipeline.Process(Cell{Point: grid.Pt(0, -1)}).Value)
}

func TestCompile_Pipeline(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "pipeline.yaml"))
	require.NoError(t, err)

	s, err := Compile(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{StepOffset, StepLookup, StepRemap, StepCopy, StepAssign}, s.Steps)
	assert.Equal(t, "|", cfg.RowTerminator())

	// (0,0) reads (1,0)=2, remapped to 20, copied to Layer, then Value forced to 7.
	out := s.Pipeline.Process(Cell{Point: grid.Pt(0, 0)})
	assert.Equal(t, Cell{Point: grid.Pt(1, 0), Value: 7, Layer: 20}, out)

	// (0,1) reads (1,1)=4 -> 40.
	out = s.Pipeline.Process(Cell{Point: grid.Pt(0, 1)})
	assert.Equal(t, 40, out.Layer)

	// (1,0) reads (2,0), outside the grid: zero passes the remap untouched.
	out = s.Pipeline.Process(Cell{Point: grid.Pt(1, 0)})
	assert.Equal(t, 0, out.Layer)
}

func TestCompile_Steps(t *testing.T) {
	base := [][]int{{1, 2}, {3, 4}}

	tests := []struct {
		name  string
		steps []Step
		in    Cell
		want  Cell
	}{
		{
			name:  "pin then lookup into layer",
			steps: []Step{{Type: StepPin, Args: map[string]any{"at": map[string]any{"x": 1, "y": 1}}}, {Type: StepLookup, Args: map[string]any{"into": "layer"}}},
			in:    Cell{Point: grid.Pt(0, 0)},
			want:  Cell{Point: grid.Pt(1, 1), Layer: 4},
		},
		{
			name:  "lookup after explicit offset",
			steps: []Step{{Type: StepOffset, Args: map[string]any{"dx": -1, "dy": -1}}},
			in:    Cell{Point: grid.Pt(1, 1)},
			want:  Cell{Point: grid.Pt(0, 0), Value: 1},
		},
		{
			name:  "weakly typed args",
			steps: []Step{{Type: StepOffset, Args: map[string]any{"dx": "1"}}},
			in:    Cell{Point: grid.Pt(0, 1)},
			want:  Cell{Point: grid.Pt(1, 1), Value: 4},
		},
		{
			name: "remap with string keys",
			steps: []Step{
				{Type: StepLookup},
				{Type: StepRemap, Args: map[string]any{"from": "value", "to": "layer", "table": map[any]any{"3": 30}}},
			},
			in:   Cell{Point: grid.Pt(0, 1)},
			want: Cell{Point: grid.Pt(0, 1), Value: 3, Layer: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compile(&Config{Grid: base, Steps: tt.steps})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Pipeline.Process(tt.in))
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want error
	}{
		{
			name: "empty grid",
			cfg:  &Config{},
			want: ErrEmptyGrid,
		},
		{
			name: "ragged grid",
			cfg:  &Config{Grid: [][]int{{1, 2}, {3}}},
			want: grid.ErrRagged,
		},
		{
			name: "unknown step",
			cfg:  &Config{Grid: [][]int{{1}}, Steps: []Step{{Type: "blur"}}},
			want: ErrUnknownStep,
		},
		{
			name: "unknown slot",
			cfg:  &Config{Grid: [][]int{{1}}, Steps: []Step{{Type: StepAssign, Args: map[string]any{"slot": "alpha"}}}},
			want: ErrUnknownSlot,
		},
		{
			name: "bad range",
			cfg:  &Config{Grid: [][]int{{1}}, Range: &RangeConfig{X: []int{0, 1, 2}, Y: []int{0, 1}}},
			want: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCompile_UnusedArgs(t *testing.T) {
	_, err := Compile(&Config{Grid: [][]int{{1}}, Steps: []Step{{Type: StepOffset, Args: map[string]any{"dz": 1}}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 0 (offset)")
}

package screen_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aretw0/mosaic/pkg/channel"
	"github.com/aretw0/mosaic/pkg/grid"
	"github.com/aretw0/mosaic/pkg/process"
	"github.com/aretw0/mosaic/pkg/screen"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pixel struct {
	Point grid.Point
	Value int
}

var (
	pixelPoint = channel.Field("Point",
		func(c pixel) grid.Point { return c.Point },
		func(c pixel, v grid.Point) pixel { c.Point = v; return c },
	)
	pixelValue = channel.Field("Value",
		func(c pixel) int { return c.Value },
		func(c pixel, v int) pixel { c.Value = v; return c },
	)
)

func testMatrix() *grid.Matrix[int] {
	return grid.NewBuilder[int](4, 4).
		Fill(3).
		Set(2, 0, 1).
		Set(0, 2, 2).
		Build()
}

func TestDisplay_EndToEnd(t *testing.T) {
	var buf bytes.Buffer
	sink := screen.NewTextSink[int](&buf)
	lookup := grid.Lookup(testMatrix(), pixelPoint, pixelValue)

	err := screen.Display[pixel, int](sink, lookup, screen.Rect(0, 3, -1, 3), pixelPoint, pixelValue)
	require.NoError(t, err)

	reset := screen.ResetMarker + "\n"
	want := "000" + reset +
		"331" + reset +
		"333" + reset +
		"233" + reset
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Display output mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplay_Deterministic(t *testing.T) {
	proc := process.Chain[pixel]{
		process.Offset(pixelPoint, 1, 1),
		grid.Lookup(testMatrix(), pixelPoint, pixelValue),
	}
	render := func() string {
		var buf bytes.Buffer
		err := screen.Display[pixel, int](screen.NewTextSink[int](&buf), proc, screen.Rect(-2, 5, -2, 5), pixelPoint, pixelValue)
		require.NoError(t, err)
		return buf.String()
	}

	assert.Equal(t, render(), render())
}

type recordingSink struct {
	events []string
}

func (r *recordingSink) Print(v grid.Point) error {
	r.events = append(r.events, v.String())
	return nil
}

func (r *recordingSink) Println() error {
	r.events = append(r.events, "EOL")
	return nil
}

func TestDisplay_RowMajorOrder(t *testing.T) {
	sink := &recordingSink{}

	err := screen.Display[pixel, grid.Point](sink, process.Identity[pixel](), screen.Rect(-1, 1, 5, 7), pixelPoint, pixelPoint)
	require.NoError(t, err)

	want := []string{
		"(-1,5)", "(0,5)", "EOL",
		"(-1,6)", "(0,6)", "EOL",
	}
	assert.Equal(t, want, sink.events)
}

func TestDisplay_EmptyRange(t *testing.T) {
	sink := &recordingSink{}

	require.NoError(t, screen.Display[pixel, grid.Point](sink, process.Identity[pixel](), screen.Rect(0, 3, 2, 2), pixelPoint, pixelPoint))
	assert.Empty(t, sink.events)

	require.NoError(t, screen.Display[pixel, grid.Point](sink, process.Identity[pixel](), screen.Rect(3, 0, 0, 2), pixelPoint, pixelPoint))
	assert.Equal(t, []string{"EOL", "EOL"}, sink.events, "rows with no columns still end")
}

var errSinkClosed = errors.New("sink closed")

type failingSink struct {
	printsLeft int
	failRow    bool
}

func (f *failingSink) Print(int) error {
	if f.printsLeft == 0 {
		return errSinkClosed
	}
	f.printsLeft--
	return nil
}

func (f *failingSink) Println() error {
	if f.failRow {
		return errSinkClosed
	}
	return nil
}

func TestDisplay_SinkErrors(t *testing.T) {
	lookup := grid.Lookup(testMatrix(), pixelPoint, pixelValue)

	t.Run("print", func(t *testing.T) {
		err := screen.Display[pixel, int](&failingSink{printsLeft: 4}, lookup, screen.Rect(0, 3, 0, 3), pixelPoint, pixelValue)
		require.ErrorIs(t, err, errSinkClosed)
		assert.Contains(t, err.Error(), "(1,1)")
	})

	t.Run("row terminator", func(t *testing.T) {
		err := screen.Display[pixel, int](&failingSink{printsLeft: 100, failRow: true}, lookup, screen.Rect(0, 3, 0, 3), pixelPoint, pixelValue)
		require.ErrorIs(t, err, errSinkClosed)
		assert.Contains(t, err.Error(), "row 0")
	})
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errSinkClosed }

func TestTextSink_WriteError(t *testing.T) {
	sink := screen.NewTextSink[int](errWriter{})
	assert.ErrorIs(t, sink.Print(1), errSinkClosed)
	assert.ErrorIs(t, sink.Println(), errSinkClosed)
}

func TestTextSink_Terminator(t *testing.T) {
	var buf bytes.Buffer
	sink := screen.NewTextSink[string](&buf, screen.WithTerminator("|"))

	require.NoError(t, sink.Print("a"))
	require.NoError(t, sink.Print("b"))
	require.NoError(t, sink.Println())

	assert.Equal(t, "ab|", buf.String())
}

func TestDisplay_Hooks(t *testing.T) {
	var cells []grid.Point
	var rows []int
	hooks := screen.Hooks{
		OnCell: func(p grid.Point) { cells = append(cells, p) },
		OnRow:  func(y int) { rows = append(rows, y) },
	}

	var buf bytes.Buffer
	err := screen.Display[pixel, int](screen.NewTextSink[int](&buf), process.Identity[pixel](), screen.Rect(0, 2, 0, 2), pixelPoint, pixelValue,
		screen.WithHooks(hooks), screen.WithHooks(screen.Hooks{}))
	require.NoError(t, err)

	assert.Equal(t, []grid.Point{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(0, 1), grid.Pt(1, 1)}, cells)
	assert.Equal(t, []int{0, 1}, rows)
}

func TestParseSpan(t *testing.T) {
	tests := []struct {
		in      string
		want    screen.Span
		wantErr bool
	}{
		{in: "0:3", want: screen.Span{Start: 0, End: 3}},
		{in: "-1:3", want: screen.Span{Start: -1, End: 3}},
		{in: " -4 : -2 ", want: screen.Span{Start: -4, End: -2}},
		{in: "3", wantErr: true},
		{in: "a:3", wantErr: true},
		{in: "1:b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := screen.ParseSpan(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRange(t *testing.T) {
	r := screen.Rect(0, 3, -1, 3)
	assert.Equal(t, 12, r.Cells())
	assert.Equal(t, "[0,3)x[-1,3)", r.String())
	assert.Equal(t, 0, screen.Span{Start: 4, End: 1}.Len())
}

package grid

import "fmt"

// Matrix is a read-only width x height table of values.
type Matrix[T any] struct {
	width  int
	height int
	rows   [][]T
}

// New builds a Matrix from rows, where rows[y][x] is the value at (x, y).
// The rows are copied. All rows must have the same length.
func New[T any](rows [][]T) (*Matrix[T], error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}

	copied := make([][]T, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", y, len(row), width, ErrRagged)
		}
		copied[y] = append([]T(nil), row...)
	}

	return &Matrix[T]{width: width, height: len(rows), rows: copied}, nil
}

// MustNew is like New but panics on ragged input. It is meant for literal tables.
func MustNew[T any](rows [][]T) *Matrix[T] {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Matrix[T]) Width() int { return m.width }

func (m *Matrix[T]) Height() int { return m.height }

// Contains reports whether p lies inside [0, width) x [0, height).
func (m *Matrix[T]) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.height
}

// Get returns the value at column x, row y, or the zero value of T when the
// coordinate is outside the matrix. It never panics.
func (m *Matrix[T]) Get(x, y int) T {
	var zero T
	if !m.Contains(Point{X: x, Y: y}) {
		return zero
	}
	return m.rows[y][x]
}

// At is Get for a Point.
func (m *Matrix[T]) At(p Point) T {
	return m.Get(p.X, p.Y)
}

// Rows returns a copy of the backing table.
func (m *Matrix[T]) Rows() [][]T {
	out := make([][]T, len(m.rows))
	for y, row := range m.rows {
		out[y] = append([]T(nil), row...)
	}
	return out
}

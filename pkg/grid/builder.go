package grid

// Builder assembles a Matrix cell by cell.
type Builder[T any] struct {
	rows [][]T
}

// NewBuilder creates a builder for a width x height matrix of zero values.
func NewBuilder[T any](width, height int) *Builder[T] {
	width = max(width, 0)
	height = max(height, 0)
	rows := make([][]T, height)
	for y := range rows {
		rows[y] = make([]T, width)
	}
	return &Builder[T]{rows: rows}
}

// Fill sets every cell to v.
func (b *Builder[T]) Fill(v T) *Builder[T] {
	for _, row := range b.rows {
		for x := range row {
			row[x] = v
		}
	}
	return b
}

// Set writes v at (x, y). Coordinates outside the builder are ignored.
func (b *Builder[T]) Set(x, y int, v T) *Builder[T] {
	if y < 0 || y >= len(b.rows) || x < 0 || x >= len(b.rows[y]) {
		return b
	}
	b.rows[y][x] = v
	return b
}

// Build returns the finished matrix.
func (b *Builder[T]) Build() *Matrix[T] {
	// Rows are rectangular by construction.
	return MustNew(b.rows)
}

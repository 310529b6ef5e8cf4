package grid

import "fmt"

// Point is a signed (x, y) coordinate.
type Point struct {
	X int `yaml:"x" json:"x" mapstructure:"x"`
	Y int `yaml:"y" json:"y" mapstructure:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

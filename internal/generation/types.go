package generation

import "math"

// Point represents a grid cell coordinate
type Point struct {
	X, Y int
}

// Add returns a new point offset by dx, dy
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Adjacent returns the 4 cardinal neighbors
func (p Point) Adjacent() []Point {
	return []Point{
		{p.X, p.Y - 1}, // N
		{p.X + 1, p.Y}, // E
		{p.X, p.Y + 1}, // S
		{p.X - 1, p.Y}, // W
	}
}

// Neighbors8 returns the 8 surrounding cells in row-major order
func (p Point) Neighbors8() []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Point{p.X + dx, p.Y + dy})
		}
	}
	return out
}

// Dist returns the Euclidean distance between two cells
func (p Point) Dist(o Point) float64 {
	return math.Hypot(float64(p.X-o.X), float64(p.Y-o.Y))
}

// Vec is a continuous position in grid units
type Vec struct {
	X, Y float64
}

// Vec returns the continuous position of a cell
func (p Point) Vec() Vec {
	return Vec{float64(p.X), float64(p.Y)}
}

// Field is a fixed-size row-major grid of scalars in [0,1].
// It is written once by the field builder and read-only afterwards.
type Field struct {
	Width, Height int
	values        []float64
}

// NewField allocates a zeroed field
func NewField(width, height int) *Field {
	return &Field{Width: width, Height: height, values: make([]float64, width*height)}
}

// InBounds checks if a point is within the field
func (f *Field) InBounds(p Point) bool {
	return p.X >= 0 && p.X < f.Width && p.Y >= 0 && p.Y < f.Height
}

// At returns the value at (x, y). Out-of-bounds cells read as 0.
func (f *Field) At(x, y int) float64 {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0
	}
	return f.values[y*f.Width+x]
}

// Get is At for a Point
func (f *Field) Get(p Point) float64 {
	return f.At(p.X, p.Y)
}

func (f *Field) set(x, y int, v float64) {
	f.values[y*f.Width+x] = v
}

// Values returns a copy of the backing data in row-major order
func (f *Field) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

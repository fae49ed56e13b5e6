package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Point is a logical (x, y) address. It is not bounds-checked by construction;
// whether it resolves depends on the grid it is used with.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Rotation is the facing direction of a tile. Up is the identity orientation.
type Rotation uint8

const (
	// Up leaves a grid unchanged.
	Up Rotation = iota
	// Down turns a grid by 180 degrees.
	Down
	// Left applies RotateLeft.
	Left
	// Right applies RotateRight.
	Right
)

// String returns the lowercase name of the rotation.
func (r Rotation) String() string {
	switch r {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for moving one cell in direction r on a y-down grid.
func (r Rotation) Delta() Point {
	switch r {
	case Up:
		return Point{Y: -1}
	case Down:
		return Point{Y: 1}
	case Left:
		return Point{X: -1}
	case Right:
		return Point{X: 1}
	default:
		return Point{}
	}
}

// Transform pairs a position with a facing direction.
type Transform struct {
	Point
	Rotation Rotation
}

// Step moves the transform n cells towards dir and turns it to face dir.
func (t *Transform) Step(dir Rotation, n int) {
	d := dir.Delta()
	t.X += d.X * n
	t.Y += d.Y * n
	t.Rotation = dir
}

// Maybe is implemented by element types that may be absent. Value reports the
// element and whether it is present.
type Maybe[T any] interface {
	Value() (T, bool)
}

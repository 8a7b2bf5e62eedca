package draw

import "fmt"

// A Coord is a signed 16-bit pixel coordinate or extent.
// Panels driven by this package are small enough that
// every coordinate of interest fits comfortably.
type Coord int16

// A Point is an X, Y coordinate pair, a location on a Plane.
// The coordinate system has X increasing to the right and Y increasing down.
type Point struct {
	X, Y Coord
}

// A Size is a width and height in pixels.
type Size struct {
	W, H Coord
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: Coord(x), Y: Coord(y)}
}

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h int) Size {
	return Size{W: Coord(w), H: Coord(h)}
}

// ZP is the zero Point.
var ZP Point

// Add returns the vector p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// AddSize returns p displaced by s.
func (p Point) AddSize(s Size) Point { return Point{p.X + s.W, p.Y + s.H} }

// SubSize returns p displaced by -s.
func (p Point) SubSize(s Size) Point { return Point{p.X - s.W, p.Y - s.H} }

// AddN returns p with n added to both coordinates.
func (p Point) AddN(n int) Point { return Point{p.X + Coord(n), p.Y + Coord(n)} }

// SubN returns p with n subtracted from both coordinates.
func (p Point) SubN(n int) Point { return Point{p.X - Coord(n), p.Y - Coord(n)} }

// In reports whether p is in r.
func (p Point) In(r Rect) bool { return r.Contains(p) }

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Empty reports whether s covers no pixels.
func (s Size) Empty() bool { return s.W == 0 || s.H == 0 }

// Mul returns s scaled by n.
func (s Size) Mul(n int) Size { return Size{s.W * Coord(n), s.H * Coord(n)} }

// Div returns s divided by n.
func (s Size) Div(n int) Size { return Size{s.W / Coord(n), s.H / Coord(n)} }

// AddN returns s grown by n in both dimensions.
func (s Size) AddN(n int) Size { return Size{s.W + Coord(n), s.H + Coord(n)} }

// SubN returns s shrunk by n in both dimensions.
func (s Size) SubN(n int) Size { return Size{s.W - Coord(n), s.H - Coord(n)} }

// Area returns the number of pixels covered by s.
// It is computed in int so that a full 16-bit panel does not overflow.
func (s Size) Area() int { return int(s.W) * int(s.H) }

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

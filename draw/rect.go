package draw

import "fmt"

// A Rect is a rectangular area on a Plane.
// By convention, the right (Max.X) and bottom (Max.Y)
// edges are excluded from the represented rectangle,
// so abutting rectangles have no points in common.
// A Rect is normal when Min.X ≤ Max.X and Min.Y ≤ Max.Y.
// Rectangles with zero area, and rectangles that are not normal,
// are valid values that contain no points.
type Rect struct {
	Min, Max Point
}

// ZR is the zero Rect.
var ZR Rect

// R returns the rectangle with origin (x, y), width w and height h.
func R(x, y, w, h int) Rect {
	return Rect{Pt(x, y), Pt(x+w, y+h)}
}

// Rpt is shorthand for Rect{min, max}.
// It does not reorder the corners; see Normalize.
func Rpt(min, max Point) Rect {
	return Rect{Min: min, Max: max}
}

// RectOf returns the rectangle with origin p and size s.
func RectOf(p Point, s Size) Rect {
	return Rect{p, p.AddSize(s)}
}

// Dx returns r's width.
func (r Rect) Dx() Coord { return r.Max.X - r.Min.X }

// Dy returns r's height.
func (r Rect) Dy() Coord { return r.Max.Y - r.Min.Y }

// Size returns r's width and height.
func (r Rect) Size() Size { return Size{r.Dx(), r.Dy()} }

// Empty reports whether r contains no points.
func (r Rect) Empty() bool { return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y }

// Normal reports whether r's corners are in canonical order.
func (r Rect) Normal() bool { return r.Max.X >= r.Min.X && r.Max.Y >= r.Min.Y }

// Normalize swaps r's corner coordinates as needed to make r normal.
func (r *Rect) Normalize() {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
}

// Canon returns the normalized copy of r.
func (r Rect) Canon() Rect {
	r.Normalize()
	return r
}

// Intersects reports whether r and s share at least one point.
func (r Rect) Intersects(s Rect) bool {
	if r.Empty() || s.Empty() {
		return false
	}
	return r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Contains reports whether p lies in r:
// Min.X ≤ p.X < Max.X and Min.Y ≤ p.Y < Max.Y.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// ContainsRect reports whether every point of s lies in r.
// An empty s is contained in any rectangle.
func (r Rect) ContainsRect(s Rect) bool {
	if s.Empty() {
		return true
	}
	return r.Min.X <= s.Min.X && s.Max.X <= r.Max.X &&
		r.Min.Y <= s.Min.Y && s.Max.Y <= r.Max.Y
}

// Intersect returns the largest rectangle contained by both r and s.
// The result is not clamped: when r and s do not intersect it is
// empty, possibly not normal, and callers must check Empty.
func (r Rect) Intersect(s Rect) Rect {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Union returns the smallest rectangle that contains both r and s.
// An empty operand does not contribute to the result.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Add returns r translated by p.
func (r Rect) Add(p Point) Rect {
	return Rect{r.Min.Add(p), r.Max.Add(p)}
}

// MoveTo returns r relocated so that its origin is p, keeping its size.
func (r Rect) MoveTo(p Point) Rect {
	return RectOf(p, r.Size())
}

// Outset returns r grown by s.W on the left and right
// and by s.H on the top and bottom.
func (r Rect) Outset(s Size) Rect {
	return Rect{r.Min.SubSize(s), r.Max.AddSize(s)}
}

// Inset returns r shrunk by s.W on the left and right
// and by s.H on the top and bottom.
func (r Rect) Inset(s Size) Rect {
	return Rect{r.Min.AddSize(s), r.Max.SubSize(s)}
}

// Center returns the point halfway between r's corners.
func (r Rect) Center() Point {
	return r.Min.AddSize(r.Size().Div(2))
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

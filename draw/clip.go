package draw

// Outcode bits classify a point against the four half-planes
// bounding a rectangle.
const (
	Inside = 0
	Left   = 1 << 0
	Right  = 1 << 1
	Bottom = 1 << 2
	Top    = 1 << 3
)

// Outcode returns the outcode of p with respect to r.
// The rectangle's pixel extent is used: a point on Max.X-1 is inside,
// a point on Max.X is to the Right.
func (r Rect) Outcode(p Point) int {
	code := Inside
	if p.X < r.Min.X {
		code |= Left
	} else if p.X >= r.Max.X {
		code |= Right
	}
	if p.Y < r.Min.Y {
		code |= Top
	} else if p.Y >= r.Max.Y {
		code |= Bottom
	}
	return code
}

// Clip clips the segment p0-p1 to r using the Cohen-Sutherland algorithm.
// If some part of the segment is visible, Clip rewrites p0 and p1 to the
// endpoints of the visible part and returns true. Otherwise it returns
// false and leaves p0 and p1 unchanged.
// A segment fully inside r is left unchanged.
//
// Each clipped endpoint is tracked exactly, as a rational parameter along
// the original segment, and rounded to the nearest pixel only at the end.
// So a segment is rejected exactly when it misses r, and the endpoints of
// an accepted one lie inside r within half a pixel of the segment.
func (r Rect) Clip(p0, p1 *Point) bool {
	if r.Empty() {
		return false
	}
	xmin, ymin := int64(r.Min.X), int64(r.Min.Y)
	xmax, ymax := int64(r.Max.X)-1, int64(r.Max.Y)-1
	x0, y0 := int64(p0.X), int64(p0.Y)
	dx, dy := int64(p1.X)-x0, int64(p1.Y)-y0

	// outcode classifies the point at parameter t.
	// All products stay below 2^35.
	outcode := func(t param) int {
		x := x0*t.d + dx*t.n
		y := y0*t.d + dy*t.n
		code := Inside
		if x < xmin*t.d {
			code |= Left
		} else if x > xmax*t.d {
			code |= Right
		}
		if y < ymin*t.d {
			code |= Top
		} else if y > ymax*t.d {
			code |= Bottom
		}
		return code
	}

	t0, t1 := param{0, 1}, param{1, 1}
	c0, c1 := outcode(t0), outcode(t1)
	for c0|c1 != Inside {
		if c0&c1 != 0 {
			return false
		}

		// Pick an endpoint outside the rectangle and move it
		// to the boundary it violates. The other endpoint is
		// not beyond that boundary, so the divisor is not zero.
		code := c0
		if code == Inside {
			code = c1
		}
		var t param
		switch {
		case code&Top != 0:
			t = paramOf(ymin-y0, dy)
		case code&Bottom != 0:
			t = paramOf(ymax-y0, dy)
		case code&Right != 0:
			t = paramOf(xmax-x0, dx)
		case code&Left != 0:
			t = paramOf(xmin-x0, dx)
		}
		if code == c0 {
			t0, c0 = t, outcode(t)
		} else {
			t1, c1 = t, outcode(t)
		}
	}

	*p0 = Point{Coord(x0 + roundDiv(dx*t0.n, t0.d)), Coord(y0 + roundDiv(dy*t0.n, t0.d))}
	*p1 = Point{Coord(x0 + roundDiv(dx*t1.n, t1.d)), Coord(y0 + roundDiv(dy*t1.n, t1.d))}
	return true
}

// A param is the position n/d along a segment, with d > 0.
type param struct{ n, d int64 }

func paramOf(n, d int64) param {
	if d < 0 {
		n, d = -n, -d
	}
	return param{n, d}
}

// roundDiv returns a/b rounded to the nearest integer, halves up. b > 0.
func roundDiv(a, b int64) int64 {
	a, b = 2*a+b, 2*b
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

package canvas

import "github.com/aktlab/views/draw"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DrawLine draws a one pixel wide line from p0 to p1 inclusive.
// The segment is first clipped to the clip rectangle; a segment entirely
// outside it draws nothing. The visible part is rasterized with
// Bresenham's algorithm, so the pixels chosen within the clip are the
// same as for the unclipped segment up to rounding at the clip edge.
func (c *Canvas) DrawLine(p0, p1 draw.Point, v draw.Pixel) {
	if !c.clip.Clip(&p0, &p1) {
		return
	}
	x0, y0 := int(p0.X), int(p0.Y)
	x1, y1 := int(p1.X), int(p1.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.DrawPixel(draw.Pt(x0, y0), v)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Package canvas binds a plane to a clip rectangle and provides the
// clipped drawing operations used by views: pixels, lines, filled
// rectangles and strings.
//
// Every operation intersects its geometry with the current clip rectangle
// before touching the plane, so no pixel outside the clip is ever written
// and the plane's bounds checks cannot fire. Geometry that clips away
// entirely, including empty or inverted rectangles, draws nothing.
//
// A Canvas is not safe for concurrent use.
package canvas

import (
	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/plane"
)

// A Flusher moves finished pixels to a display.
// Flush is called with the rectangle that changed; an implementation
// may send more than r but must send at least r.
type Flusher interface {
	Flush(pl plane.Plane, r draw.Rect) error
}

// An Initer is a Flusher that must be prepared before its first Flush.
type Initer interface {
	Init() error
}

// A Resetter is a Flusher that can return its display to a known state.
type Resetter interface {
	Reset() error
}

// A Canvas draws into one Plane through a clip rectangle.
type Canvas struct {
	plane  plane.Plane
	bounds draw.Rect
	clip   draw.Rect
	out    Flusher
}

// New returns a Canvas drawing into pl and flushing to out.
// The canvas does not own pl. A nil out makes Flush a no-op,
// which suits off-screen canvases and tests.
func New(pl plane.Plane, out Flusher) *Canvas {
	b := plane.Bounds(pl)
	return &Canvas{plane: pl, bounds: b, clip: b, out: out}
}

// Init resets the clip rectangle and initializes the flusher,
// if it needs initializing.
func (c *Canvas) Init() error {
	c.clip = c.bounds
	if i, ok := c.out.(Initer); ok {
		return i.Init()
	}
	return nil
}

// Reset resets the clip rectangle to the canvas bounds and resets the
// flusher, if it can be reset.
func (c *Canvas) Reset() error {
	c.clip = c.bounds
	if r, ok := c.out.(Resetter); ok {
		return r.Reset()
	}
	return nil
}

// Plane returns the plane c draws into.
func (c *Canvas) Plane() plane.Plane { return c.plane }

// Bounds returns the rectangle covered by the plane.
func (c *Canvas) Bounds() draw.Rect { return c.bounds }

// Clip returns the current clip rectangle.
func (c *Canvas) Clip() draw.Rect { return c.clip }

// SetClip sets the clip rectangle to the part of r inside the canvas
// bounds and returns the previous clip, so that callers can restore it.
func (c *Canvas) SetClip(r draw.Rect) draw.Rect {
	old := c.clip
	c.clip = r.Intersect(c.bounds)
	return old
}

// Flush hands the rectangle r of the plane to the display.
func (c *Canvas) Flush(r draw.Rect) error {
	if c.out == nil {
		return nil
	}
	r = r.Intersect(c.bounds)
	if r.Empty() {
		return nil
	}
	return c.out.Flush(c.plane, r)
}

// DrawPixel sets the pixel at p to v if p is inside the clip rectangle.
func (c *Canvas) DrawPixel(p draw.Point, v draw.Pixel) {
	if !c.clip.Contains(p) {
		return
	}
	c.plane.SetPixel(p, v)
}

// FillRect sets every pixel of r inside the clip rectangle to v.
func (c *Canvas) FillRect(r draw.Rect, v draw.Pixel) {
	r = r.Intersect(c.clip)
	if r.Empty() {
		return
	}
	n := int(r.Dx())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		plane.SetPixels(c.plane, draw.Point{X: r.Min.X, Y: y}, n, v)
	}
}

// Clear fills the whole clip rectangle with v.
func (c *Canvas) Clear(v draw.Pixel) {
	c.FillRect(c.clip, v)
}

// DrawRect outlines r with v. The outline is drawn on the pixels just
// inside r, so a rectangle drawn and then filled with Inset(Sz(1, 1))
// tiles exactly.
func (c *Canvas) DrawRect(r draw.Rect, v draw.Pixel) {
	if r.Empty() {
		return
	}
	x0, y0 := r.Min.X, r.Min.Y
	x1, y1 := r.Max.X-1, r.Max.Y-1
	c.FillRect(draw.Rect{Min: draw.Point{X: x0, Y: y0}, Max: draw.Point{X: x1 + 1, Y: y0 + 1}}, v)
	c.FillRect(draw.Rect{Min: draw.Point{X: x0, Y: y1}, Max: draw.Point{X: x1 + 1, Y: y1 + 1}}, v)
	c.FillRect(draw.Rect{Min: draw.Point{X: x0, Y: y0}, Max: draw.Point{X: x0 + 1, Y: y1 + 1}}, v)
	c.FillRect(draw.Rect{Min: draw.Point{X: x1, Y: y0}, Max: draw.Point{X: x1 + 1, Y: y1 + 1}}, v)
}

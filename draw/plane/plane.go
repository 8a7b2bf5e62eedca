// Package plane provides pixel storage for display frame buffers.
//
// A Plane is a fixed-size rectangle of pixels in one encoding. Two families
// are provided: Word planes, which store one machine word per pixel in
// row-major order, and Bit planes, which pack one pixel per bit.
//
// Plane methods do not clip. Addressing a pixel outside the plane is a
// programming error and panics; code that cannot prove its coordinates are
// in range should use Check, SetPixelChecked or PixelChecked, which report
// ErrOutOfBounds instead. The canvas package clips every drawing operation
// before it reaches a Plane.
package plane

import (
	"errors"
	"fmt"

	"github.com/aktlab/views/draw"
)

// ErrOutOfBounds is returned by the checked accessors for a point
// outside the plane.
var ErrOutOfBounds = errors.New("plane: point out of bounds")

// A Plane is backing pixel storage of fixed dimensions.
// Its size never changes after construction.
type Plane interface {
	Size() draw.Size
	SetPixel(p draw.Point, v draw.Pixel)
	Pixel(p draw.Point) draw.Pixel
}

// A RunSetter is a Plane with a fast path for horizontal runs.
type RunSetter interface {
	Plane
	// SetPixels sets n pixels starting at p and continuing to the right.
	// The whole run must lie within the plane.
	SetPixels(p draw.Point, n int, v draw.Pixel)
}

// SetPixels sets n pixels of pl starting at p and continuing to the right.
// It uses pl's own SetPixels if it has one and falls back to
// n calls of SetPixel otherwise.
func SetPixels(pl Plane, p draw.Point, n int, v draw.Pixel) {
	if rs, ok := pl.(RunSetter); ok {
		rs.SetPixels(p, n, v)
		return
	}
	for ; n > 0; n-- {
		pl.SetPixel(p, v)
		p.X++
	}
}

// Bounds returns the rectangle covered by pl, with origin at (0, 0).
func Bounds(pl Plane) draw.Rect {
	return draw.RectOf(draw.ZP, pl.Size())
}

// Check reports ErrOutOfBounds if p is not a pixel of pl.
func Check(pl Plane, p draw.Point) error {
	if !Bounds(pl).Contains(p) {
		return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, p, pl.Size())
	}
	return nil
}

// SetPixelChecked is SetPixel with a bounds check.
func SetPixelChecked(pl Plane, p draw.Point, v draw.Pixel) error {
	if err := Check(pl, p); err != nil {
		return err
	}
	pl.SetPixel(p, v)
	return nil
}

// PixelChecked is Pixel with a bounds check.
func PixelChecked(pl Plane, p draw.Point) (draw.Pixel, error) {
	if err := Check(pl, p); err != nil {
		return 0, err
	}
	return pl.Pixel(p), nil
}

func assertIn(s draw.Size, p draw.Point) {
	if p.X < 0 || p.X >= s.W || p.Y < 0 || p.Y >= s.H {
		panic(fmt.Sprintf("plane: point %v outside %v plane", p, s))
	}
}

func assertRun(s draw.Size, p draw.Point, n int) {
	assertIn(s, p)
	if n < 0 || int(p.X)+n > int(s.W) {
		panic(fmt.Sprintf("plane: run of %d at %v outside %v plane", n, p, s))
	}
}

// A RowAppender is a Plane that can expose its storage
// for transmission, one row segment at a time.
type RowAppender interface {
	Plane
	AppendRow(dst []byte, y, x0, x1 draw.Coord) []byte
}

// An Aligner is a Plane whose rows can only be transmitted in
// units larger than a pixel. Align returns the smallest transmittable
// rectangle containing r.
type Aligner interface {
	Align(r draw.Rect) draw.Rect
}

// Package display connects a canvas to a display controller through a
// transport.
//
// A Display is a canvas.Flusher. Each flush sends the rows of the changed
// rectangle, in plane memory order, inside one Select/Deselect bracket.
// Controller specifics, such as the command that opens a drawing window
// on the panel, are supplied by an Addresser.
package display

import (
	"fmt"
	"log/slog"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/plane"
	"github.com/aktlab/views/transport"
)

// An Addresser prepares a controller to receive the pixels of r.
// It is called with the transport already selected.
type Addresser interface {
	Address(t transport.Transport, r draw.Rect) error
}

// AddresserFunc adapts a function to the Addresser interface.
type AddresserFunc func(t transport.Transport, r draw.Rect) error

func (f AddresserFunc) Address(t transport.Transport, r draw.Rect) error { return f(t, r) }

// A Display flushes planes to a transport.
// It is not safe for concurrent use.
type Display struct {
	t    transport.Transport
	addr Addresser
	buf  []byte
}

// New returns a Display sending through t. A nil addr sends
// pixel data with no preceding command.
func New(t transport.Transport, addr Addresser) *Display {
	return &Display{t: t, addr: addr}
}

// Init initializes the transport.
func (d *Display) Init() error {
	if err := d.t.Init(); err != nil {
		return fmt.Errorf("display init: %w", err)
	}
	return nil
}

// Reset resets the transport.
func (d *Display) Reset() error {
	if err := d.t.Reset(); err != nil {
		return fmt.Errorf("display reset: %w", err)
	}
	return nil
}

// Flush sends the pixels of pl inside r. Planes that transmit in units
// wider than a pixel have r widened accordingly. pl must implement
// plane.RowAppender.
func (d *Display) Flush(pl plane.Plane, r draw.Rect) error {
	ra, ok := pl.(plane.RowAppender)
	if !ok {
		return fmt.Errorf("display: cannot transmit %T", pl)
	}
	if a, ok := pl.(plane.Aligner); ok {
		r = a.Align(r)
	}
	r = r.Intersect(alignedBounds(pl))
	if r.Empty() {
		return nil
	}

	d.buf = d.buf[:0]
	for y := r.Min.Y; y < r.Max.Y; y++ {
		d.buf = ra.AppendRow(d.buf, y, r.Min.X, r.Max.X)
	}

	err := transport.With(d.t, func() error {
		if d.addr != nil {
			if err := d.addr.Address(d.t, r); err != nil {
				return err
			}
		}
		return d.t.Send(d.buf)
	})
	if err != nil {
		logger().Warn("flush failed", slog.String("rect", r.String()), slog.Any("err", err))
		return fmt.Errorf("display flush %v: %w", r, err)
	}
	logger().Debug("flush", slog.String("rect", r.String()), slog.Int("bytes", len(d.buf)))
	return nil
}

// alignedBounds returns the bounds of pl widened the way pl aligns
// rectangles, so that a row's final partial byte can be sent.
func alignedBounds(pl plane.Plane) draw.Rect {
	b := plane.Bounds(pl)
	if a, ok := pl.(plane.Aligner); ok {
		return a.Align(b)
	}
	return b
}

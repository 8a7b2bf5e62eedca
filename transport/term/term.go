// Package term shows planes on a terminal, for developing views without
// a panel attached.
//
// Each terminal cell displays two vertically adjacent pixels using the
// upper half block character: the foreground color is the upper pixel
// and the background color the lower one.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/plane"
)

const upperHalf = '▀'

// A Device is a canvas.Flusher drawing on a tcell screen.
type Device struct {
	s     tcell.Screen
	model draw.Model
}

// New returns a Device showing planes on s, decoding pixels with model.
func New(s tcell.Screen, model draw.Model) *Device {
	return &Device{s: s, model: model}
}

// Init initializes the terminal.
func (d *Device) Init() error {
	if err := d.s.Init(); err != nil {
		return err
	}
	d.s.Clear()
	return nil
}

// Screen returns the underlying tcell screen, for event handling.
func (d *Device) Screen() tcell.Screen { return d.s }

func (d *Device) color(pl plane.Plane, p draw.Point) tcell.Color {
	return tcellColor(d.model(pl.Pixel(p)))
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Flush redraws the cells covering r and shows the screen.
func (d *Device) Flush(pl plane.Plane, r draw.Rect) error {
	r = r.Intersect(plane.Bounds(pl))
	if r.Empty() {
		return nil
	}
	h := pl.Size().H
	for y := r.Min.Y &^ 1; y < r.Max.Y; y += 2 {
		for x := r.Min.X; x < r.Max.X; x++ {
			st := tcell.StyleDefault.Foreground(d.color(pl, draw.Point{X: x, Y: y}))
			if y+1 < h {
				st = st.Background(d.color(pl, draw.Point{X: x, Y: y + 1}))
			} else {
				st = st.Background(tcell.ColorBlack)
			}
			d.s.SetContent(int(x), int(y/2), upperHalf, nil, st)
		}
	}
	d.s.Show()
	return nil
}

// Close restores the terminal.
func (d *Device) Close() {
	d.s.Fini()
}

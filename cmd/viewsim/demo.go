package main

import (
	"fmt"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/bw"
	"github.com/aktlab/views/draw/canvas"
	"github.com/aktlab/views/draw/font"
	"github.com/aktlab/views/draw/plane"
	"github.com/aktlab/views/draw/rgb565"
	"github.com/aktlab/views/views"
)

type palette struct {
	back, fore, accent, bar draw.Pixel
}

var (
	colorPalette = palette{back: rgb565.Navy, fore: rgb565.White, accent: rgb565.Orange, bar: rgb565.GreenYellow}
	monoPalette  = palette{back: bw.White, fore: bw.Black, accent: bw.Black, bar: bw.Black}
)

// fill paints its frame in one color.
type fill draw.Pixel

func (f fill) DrawSelf(v *views.View, c *canvas.Canvas) {
	c.FillRect(v.Frame(), draw.Pixel(f))
}

// label draws a line of text at the top left of its frame.
type label struct {
	text  string
	font  *font.MikroFont
	color draw.Pixel
}

func (l *label) DrawSelf(v *views.View, c *canvas.Canvas) {
	old := c.SetClip(v.Frame().Intersect(c.Clip()))
	l.font.DrawString(c, v.Frame().Min, l.text, l.color)
	c.SetClip(old)
}

// cross draws a box with both diagonals.
type cross draw.Pixel

func (x cross) DrawSelf(v *views.View, c *canvas.Canvas) {
	r := v.Frame()
	c.DrawRect(r, draw.Pixel(x))
	c.DrawLine(r.Min, r.Max.SubN(1), draw.Pixel(x))
	c.DrawLine(draw.Point{X: r.Min.X, Y: r.Max.Y - 1}, draw.Point{X: r.Max.X - 1, Y: r.Min.Y}, draw.Pixel(x))
}

// meter is a horizontal bar gauge.
type meter struct {
	value, max int
	pal        palette
}

func (m *meter) DrawSelf(v *views.View, c *canvas.Canvas) {
	r := v.Frame()
	c.FillRect(r, m.pal.back)
	c.DrawRect(r, m.pal.fore)
	in := r.Inset(draw.Sz(2, 2))
	w := int(in.Dx()) * m.value / m.max
	c.FillRect(draw.RectOf(in.Min, draw.Size{W: draw.Coord(w), H: in.Dy()}), m.pal.bar)
}

type demo struct {
	screen *views.Screen
	gauge  *views.View
	meter  *meter
	status *views.View
	text   *label
}

func newDemo(pl plane.Plane, out canvas.Flusher, pal palette) *demo {
	c := canvas.New(pl, out)
	d := &demo{screen: views.NewScreen(c, fill(pal.back))}
	b := c.Bounds()
	f := font.Fixed5x8
	lh := f.Height() + 2

	title := views.New(&label{text: "views demo", font: f, color: pal.accent})
	title.SetFrame(draw.RectOf(draw.Pt(2, 2), draw.Size{W: b.Dx() - 4, H: lh}))
	d.screen.AddSubview(title)

	box := views.New(cross(pal.fore))
	side := b.Dy() - 3*lh - 6
	if side < 4 {
		side = 4
	}
	box.SetFrame(draw.RectOf(draw.Point{X: 2, Y: 4 + lh}, draw.Size{W: side, H: side}))
	d.screen.AddSubview(box)

	d.meter = &meter{max: 100, pal: pal}
	d.gauge = views.New(d.meter)
	d.gauge.SetFrame(draw.Rect{
		Min: draw.Point{X: 2, Y: b.Max.Y - 2*lh - 2},
		Max: draw.Point{X: b.Max.X - 2, Y: b.Max.Y - lh - 2},
	})
	d.screen.AddSubview(d.gauge)

	d.text = &label{font: f, color: pal.fore}
	d.status = views.New(d.text)
	d.status.SetFrame(draw.Rect{
		Min: draw.Point{X: 2, Y: b.Max.Y - lh},
		Max: draw.Point{X: b.Max.X - 2, Y: b.Max.Y},
	})
	statusBox := views.New(fill(pal.back))
	statusBox.SetFrame(d.status.Frame())
	statusBox.AddSubview(d.status)
	d.screen.AddSubview(statusBox)
	d.setStatus()
	return d
}

func (d *demo) setStatus() {
	d.text.text = fmt.Sprintf("level %d%%", d.meter.value)
}

// tick advances the meter and repaints the parts of the screen
// that changed.
func (d *demo) tick() error {
	d.meter.value = (d.meter.value + 5) % (d.meter.max + 5)
	d.setStatus()
	if err := d.screen.Refresh(d.gauge); err != nil {
		return err
	}
	return d.screen.Refresh(d.status.Superview())
}

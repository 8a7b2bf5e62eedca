package plane

import (
	"image"
	"image/color"
	godraw "image/draw"

	"github.com/aktlab/views/draw"
)

// Image adapts a Plane to the image.Image interface,
// decoding pixel values with a Model.
type Image struct {
	Plane Plane
	Model draw.Model
}

func (m *Image) ColorModel() color.Model { return color.RGBAModel }

func (m *Image) Bounds() image.Rectangle {
	s := m.Plane.Size()
	return image.Rect(0, 0, int(s.W), int(s.H))
}

func (m *Image) At(x, y int) color.Color {
	p := draw.Pt(x, y)
	if !Bounds(m.Plane).Contains(p) {
		return color.Transparent
	}
	return m.Model(m.Plane.Pixel(p))
}

// Snapshot copies the part of pl inside r into a new RGBA image,
// decoding pixel values with model. The result has the same
// coordinates as pl.
func Snapshot(pl Plane, model draw.Model, r draw.Rect) *image.RGBA {
	r = r.Intersect(Bounds(pl))
	ir := image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
	if r.Empty() {
		ir = image.Rectangle{}
	}
	dst := image.NewRGBA(ir)
	godraw.Draw(dst, ir, &Image{pl, model}, ir.Min, godraw.Src)
	return dst
}

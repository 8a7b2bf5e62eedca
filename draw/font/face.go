package font

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/aktlab/views/draw"
)

// FromFace rasterizes characters first through last of face into a
// MikroFont. Character codes are mapped to runes with cm; a nil cm
// means ISO 8859-1. The cell is as tall as the face's ascent plus descent
// and as wide as its widest advance. A pixel is inked when the face's
// coverage for it is at least one half.
func FromFace(face font.Face, first, last byte, cm *charmap.Charmap) (*MikroFont, error) {
	if first > last {
		return nil, fmt.Errorf("%w: range %#x-%#x", ErrBadFontData, first, last)
	}
	if cm == nil {
		cm = charmap.ISO8859_1
	}
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if height <= 0 || height > 255 {
		return nil, fmt.Errorf("%w: face height %d", ErrBadFontData, height)
	}

	width := 0
	for c := int(first); c <= int(last); c++ {
		if adv, ok := face.GlyphAdvance(cm.DecodeByte(byte(c))); ok && adv.Ceil() > width {
			width = adv.Ceil()
		}
	}
	if width <= 0 || width > 255 {
		return nil, fmt.Errorf("%w: face width %d", ErrBadFontData, width)
	}

	hb := (height + 7) / 8
	stride := 1 + width*hb
	data := make([]byte, 0, (int(last)-int(first)+1)*stride)
	cell := image.Rect(0, 0, width, height)
	for c := int(first); c <= int(last); c++ {
		rec := make([]byte, stride)
		dot := fixed.P(0, ascent)
		dr, mask, mp, adv, ok := face.Glyph(dot, cm.DecodeByte(byte(c)))
		if ok {
			w := adv.Round()
			if w > width {
				w = width
			}
			rec[0] = byte(w)
			vis := dr.Intersect(cell)
			for y := vis.Min.Y; y < vis.Max.Y; y++ {
				for x := vis.Min.X; x < vis.Max.X; x++ {
					_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
					if a >= 0x8000 {
						rec[1+x*hb+y/8] |= 1 << (y % 8)
					}
				}
			}
		}
		data = append(data, rec...)
	}
	f, err := NewMikro(data, draw.Sz(width, height), 0, first, last)
	if err != nil {
		return nil, err
	}
	f.Charmap = cm
	return f, nil
}

// Package font rasterizes compact bitmap fonts onto a canvas.
//
// The format handled here is the one written by the MikroElektronika GLCD
// Font Creator: a flat array holding, for every character from first to
// last, one fixed-size record. A record is a single byte giving the
// rendered width of the glyph, followed by the glyph bits stored column by
// column. Each column occupies ⌈height/8⌉ bytes, and within a column the
// least significant bit of the first byte is the topmost pixel.
// A set bit is inked; a clear bit is background.
//
// Consider this 5x7 glyph for the numeral '1', whose record is
// 0x04, 0x00, 0x42, 0x7f, 0x40, 0x00:
//
//	0 0 1 0 0
//	0 1 1 0 0
//	0 0 1 0 0
//	0 0 1 0 0
//	0 0 1 0 0
//	0 0 1 0 0
//	0 1 1 1 0
//
// Glyphs are drawn with a transparent background: only inked pixels are
// written, so text can be laid over any fill.
package font

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/canvas"
)

// Gap is the number of blank columns between rendered glyphs.
const Gap = 1

// ErrBadFontData is returned for font data inconsistent with its
// declared geometry.
var ErrBadFontData = errors.New("font: bad font data")

// A MikroFont is a proportional bitmap font in the GLCD Font Creator format.
// It implements canvas.Font.
type MikroFont struct {
	data        []byte
	size        draw.Size
	offset      draw.Coord
	heightBytes int
	stride      int
	first, last byte

	// Charmap maps runes of the strings passed to MeasureString and
	// DrawString to the font's character codes.
	// Runes it cannot encode are drawn as the fallback glyph.
	Charmap *charmap.Charmap
}

// NewMikro returns the font described by data, whose glyph cells are
// size.W columns by size.H rows and which holds characters first through
// last. Offset is the distance from the top of the cell to the point
// passed to DrawChar; an offset of 0 draws cells from their top-left corner.
func NewMikro(data []byte, size draw.Size, offset int, first, last byte) (*MikroFont, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("%w: cell size %v", ErrBadFontData, size)
	}
	if first > last {
		return nil, fmt.Errorf("%w: range %#x-%#x", ErrBadFontData, first, last)
	}
	hb := (int(size.H) + 7) / 8
	stride := 1 + int(size.W)*hb
	n := int(last) - int(first) + 1
	if len(data) < n*stride {
		return nil, fmt.Errorf("%w: %d bytes for %d glyphs of %d bytes", ErrBadFontData, len(data), n, stride)
	}
	return &MikroFont{
		data:        data,
		size:        size,
		offset:      draw.Coord(offset),
		heightBytes: hb,
		stride:      stride,
		first:       first,
		last:        last,
		Charmap:     charmap.ISO8859_1,
	}, nil
}

// MustMikro is like NewMikro but panics on error.
// It is meant for fonts compiled into the program.
func MustMikro(data []byte, size draw.Size, offset int, first, last byte) *MikroFont {
	f, err := NewMikro(data, size, offset, first, last)
	if err != nil {
		panic(err)
	}
	return f
}

// Size returns the dimensions of the glyph cell.
func (f *MikroFont) Size() draw.Size { return f.size }

// Height returns the height of the glyph cell.
func (f *MikroFont) Height() draw.Coord { return f.size.H }

// Offset returns the vertical offset of the glyph cell.
func (f *MikroFont) Offset() draw.Coord { return f.offset }

// Range returns the first and last character codes the font defines.
func (f *MikroFont) Range() (first, last byte) { return f.first, f.last }

// Stride returns the size in bytes of one glyph record.
func (f *MikroFont) Stride() int { return f.stride }

// Data returns the font's backing array.
func (f *MikroFont) Data() []byte { return f.data }

// glyph returns the width and column data of ch.
// Codes outside the font's range select the first glyph.
func (f *MikroFont) glyph(ch byte) (int, []byte) {
	if ch < f.first || ch > f.last {
		ch = f.first
	}
	rec := f.data[int(ch-f.first)*f.stride:]
	w := int(rec[0])
	if w > int(f.size.W) {
		w = int(f.size.W)
	}
	return w, rec[1:f.stride]
}

// Width returns the rendered width of ch, not counting spacing.
func (f *MikroFont) Width(ch byte) draw.Coord {
	w, _ := f.glyph(ch)
	return draw.Coord(w)
}

// Measure returns the advance and height of ch.
func (f *MikroFont) Measure(ch byte) draw.Size {
	return draw.Size{W: f.Width(ch) + Gap, H: f.size.H}
}

// code returns the character code for r.
func (f *MikroFont) code(r rune) byte {
	if f.Charmap == nil {
		if r < utf8.RuneSelf {
			return byte(r)
		}
		return f.first
	}
	b, ok := f.Charmap.EncodeRune(r)
	if !ok {
		return f.first
	}
	return b
}

// Encode returns the character codes for the UTF-8 string s, one byte per
// rune, in the form canvas.Canvas.DrawString expects. Encoding stops at
// the first NUL, and runes the font cannot encode become its first code.
func (f *MikroFont) Encode(s string) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		if r == 0 {
			break
		}
		b = append(b, f.code(r))
	}
	return string(b)
}

// MeasureCodes is MeasureString for a string of character codes,
// such as the result of Encode.
func (f *MikroFont) MeasureCodes(s string) draw.Size {
	var w draw.Coord
	for i := 0; i < len(s) && s[i] != 0; i++ {
		w += f.Width(s[i]) + Gap
	}
	if w > 0 {
		w -= Gap
	}
	return draw.Size{W: w, H: f.size.H}
}

// MeasureString returns the size of s as drawn by DrawString: the sum of
// the advances of its characters less the trailing gap, by the cell height.
// Measuring stops at the first NUL.
func (f *MikroFont) MeasureString(s string) draw.Size {
	return f.MeasureCodes(f.Encode(s))
}

// DrawChar draws ch in color v and returns its advance.
// Each column is drawn as vertical runs of inked pixels;
// background pixels are left untouched.
func (f *MikroFont) DrawChar(c *canvas.Canvas, p draw.Point, ch byte, v draw.Pixel) draw.Coord {
	w, bits := f.glyph(ch)
	h := int(f.size.H)
	top := p.Y - f.offset
	for col := 0; col < w; col++ {
		x := p.X + draw.Coord(col)
		cb := bits[col*f.heightBytes : (col+1)*f.heightBytes]
		start := -1
		for row := 0; row <= h; row++ {
			ink := row < h && cb[row/8]&(1<<(row%8)) != 0
			switch {
			case ink && start < 0:
				start = row
			case !ink && start >= 0:
				c.FillRect(draw.Rect{
					Min: draw.Point{X: x, Y: top + draw.Coord(start)},
					Max: draw.Point{X: x + 1, Y: top + draw.Coord(row)},
				}, v)
				start = -1
			}
		}
	}
	return draw.Coord(w) + Gap
}

// DrawString draws s, decoding it as UTF-8 and mapping each rune through
// f.Charmap, and returns the point just past the last character.
// Drawing stops at the first NUL.
func (f *MikroFont) DrawString(c *canvas.Canvas, p draw.Point, s string, v draw.Pixel) draw.Point {
	return c.DrawString(p, f.Encode(s), f, v)
}

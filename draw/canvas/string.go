package canvas

import "github.com/aktlab/views/draw"

// A Font rasterizes characters onto a Canvas.
// Characters are 8-bit codes in the font's own encoding.
type Font interface {
	// Height returns the height of the font's glyph cell.
	Height() draw.Coord

	// DrawChar draws ch with its cell's origin at p in color v and
	// returns the horizontal advance to the next character,
	// including inter-character spacing.
	DrawChar(c *Canvas, p draw.Point, ch byte, v draw.Pixel) draw.Coord
}

// DrawString draws the characters of s left to right on a common baseline
// starting at p, and returns the point just past the last character.
// Each byte of s is one character code in the font's own encoding, not
// UTF-8; drawing stops at the end of s or at the first NUL. Text held as
// UTF-8 must be encoded first (font.MikroFont.Encode does this), and is
// then measured by the font from the same codes.
func (c *Canvas) DrawString(p draw.Point, s string, f Font, v draw.Pixel) draw.Point {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			break
		}
		p.X += f.DrawChar(c, p, s[i], v)
	}
	return p
}

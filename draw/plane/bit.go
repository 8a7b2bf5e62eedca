package plane

import (
	"fmt"

	"github.com/aktlab/views/draw"
)

// A Bit plane packs one pixel per bit.
//
// Rows are Stride bytes apart. Pixel (x, y) is bit x%8 of byte
// y*Stride + x/8, with the least significant bit holding the leftmost
// pixel of the byte. That is the horizontal layout consumed by the
// monochrome controllers this package drives; any other layout is
// converted at flush time.
//
// Only the low bit of a stored value is kept.
type Bit struct {
	size   draw.Size
	Stride int
	Pix    []byte
}

// NewBit allocates a Bit plane of size s with the minimal stride.
func NewBit(s draw.Size) *Bit {
	stride := (int(s.W) + 7) / 8
	return &Bit{size: s, Stride: stride, Pix: make([]byte, stride*int(s.H))}
}

// BitOver returns a Bit plane of size s backed by storage.
// A stride of 0 selects the minimal stride, ⌈s.W/8⌉.
func BitOver(storage []byte, s draw.Size, stride int) (*Bit, error) {
	if s.W < 0 || s.H < 0 {
		return nil, fmt.Errorf("plane: bad size %v", s)
	}
	min := (int(s.W) + 7) / 8
	if stride == 0 {
		stride = min
	}
	if stride < min {
		return nil, fmt.Errorf("plane: stride %d too small for width %d", stride, s.W)
	}
	if len(storage) < stride*int(s.H) {
		return nil, fmt.Errorf("plane: storage of %d bytes too small for %v at stride %d", len(storage), s, stride)
	}
	return &Bit{size: s, Stride: stride, Pix: storage}, nil
}

func (b *Bit) Size() draw.Size { return b.size }

func (b *Bit) addr(p draw.Point) (int, byte) {
	return int(p.Y)*b.Stride + int(p.X)/8, 1 << (uint(p.X) % 8)
}

func (b *Bit) SetPixel(p draw.Point, v draw.Pixel) {
	assertIn(b.size, p)
	i, m := b.addr(p)
	if v&1 != 0 {
		b.Pix[i] |= m
	} else {
		b.Pix[i] &^= m
	}
}

// SetPixels writes whole bytes where the run covers them.
func (b *Bit) SetPixels(p draw.Point, n int, v draw.Pixel) {
	assertRun(b.size, p, n)
	var fill byte
	if v&1 != 0 {
		fill = 0xFF
	}
	for n > 0 {
		i, m := b.addr(p)
		if m == 1 && n >= 8 {
			b.Pix[i] = fill
			p.X += 8
			n -= 8
			continue
		}
		if fill != 0 {
			b.Pix[i] |= m
		} else {
			b.Pix[i] &^= m
		}
		p.X++
		n--
	}
}

func (b *Bit) Pixel(p draw.Point) draw.Pixel {
	assertIn(b.size, p)
	i, m := b.addr(p)
	if b.Pix[i]&m != 0 {
		return 1
	}
	return 0
}

// AppendRow appends to dst the bytes of row y that hold pixels
// x0 up to x1. The run is widened to whole bytes.
func (b *Bit) AppendRow(dst []byte, y, x0, x1 draw.Coord) []byte {
	base := int(y) * b.Stride
	return append(dst, b.Pix[base+int(x0)/8:base+(int(x1)+7)/8]...)
}

// Align widens r horizontally to whole bytes, the unit
// in which AppendRow transmits.
func (b *Bit) Align(r draw.Rect) draw.Rect {
	r.Min.X &^= 7
	r.Max.X = (r.Max.X + 7) &^ 7
	return r
}

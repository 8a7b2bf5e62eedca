package plane

import (
	"fmt"

	"github.com/aktlab/views/draw"
)

// A Cell is the storage type of one pixel in a Word plane.
type Cell interface {
	~uint8 | ~uint16 | ~uint32
}

// A Word plane stores one T per pixel in row-major order.
// Pixel values are converted to T on store, so a Word[uint8] plane
// keeps only the low byte of each value.
type Word[T Cell] struct {
	size draw.Size
	Pix  []T
}

// NewWord allocates a Word plane of size s.
// The store is allocated once; drawing never allocates.
func NewWord[T Cell](s draw.Size) *Word[T] {
	return &Word[T]{size: s, Pix: make([]T, s.Area())}
}

// WordOver returns a Word plane of size s backed by storage,
// which must hold at least s.W*s.H pixels.
func WordOver[T Cell](storage []T, s draw.Size) (*Word[T], error) {
	if s.W < 0 || s.H < 0 {
		return nil, fmt.Errorf("plane: bad size %v", s)
	}
	if len(storage) < s.Area() {
		return nil, fmt.Errorf("plane: storage of %d pixels too small for %v", len(storage), s)
	}
	return &Word[T]{size: s, Pix: storage[:s.Area()]}, nil
}

func (w *Word[T]) Size() draw.Size { return w.size }

func (w *Word[T]) offset(p draw.Point) int {
	return int(p.Y)*int(w.size.W) + int(p.X)
}

func (w *Word[T]) SetPixel(p draw.Point, v draw.Pixel) {
	assertIn(w.size, p)
	w.Pix[w.offset(p)] = T(v)
}

func (w *Word[T]) SetPixels(p draw.Point, n int, v draw.Pixel) {
	assertRun(w.size, p, n)
	run := w.Pix[w.offset(p) : w.offset(p)+n]
	for i := range run {
		run[i] = T(v)
	}
}

func (w *Word[T]) Pixel(p draw.Point) draw.Pixel {
	assertIn(w.size, p)
	return draw.Pixel(w.Pix[w.offset(p)])
}

// Row returns the pixels of row y from x0 up to but not including x1.
// The slice aliases the plane's storage.
func (w *Word[T]) Row(y, x0, x1 draw.Coord) []T {
	base := int(y) * int(w.size.W)
	return w.Pix[base+int(x0) : base+int(x1)]
}

// cellBytes returns the width of T in bytes.
func cellBytes[T Cell]() int {
	b, w := uint32(0x100), uint32(0x10000)
	switch {
	case T(b) == 0:
		return 1
	case T(w) == 0:
		return 2
	}
	return 4
}

// AppendRow appends the pixels of row y from x0 up to x1 to dst,
// each in little-endian byte order, which is the plane's memory order.
func (w *Word[T]) AppendRow(dst []byte, y, x0, x1 draw.Coord) []byte {
	n := cellBytes[T]()
	for _, v := range w.Row(y, x0, x1) {
		u := uint32(v)
		for k := 0; k < n; k++ {
			dst = append(dst, byte(u>>(8*k)))
		}
	}
	return dst
}

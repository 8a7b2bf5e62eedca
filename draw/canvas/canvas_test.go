package canvas

import (
	"errors"
	"strings"
	"testing"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/bw"
	"github.com/aktlab/views/draw/plane"
	"github.com/aktlab/views/draw/rgb565"
)

// dump renders pl as rows of '#' (value on) and '.' (anything else).
func dump(pl plane.Plane, on draw.Pixel) string {
	var b strings.Builder
	s := pl.Size()
	for y := draw.Coord(0); y < s.H; y++ {
		for x := draw.Coord(0); x < s.W; x++ {
			if pl.Pixel(draw.Point{X: x, Y: y}) == on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func picture(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

type flushRecord struct {
	rects []draw.Rect
	inits int
	err   error
}

func (f *flushRecord) Flush(pl plane.Plane, r draw.Rect) error {
	f.rects = append(f.rects, r)
	return f.err
}

func (f *flushRecord) Init() error {
	f.inits++
	return nil
}

func TestDiagonal(t *testing.T) {
	pl := plane.NewWord[uint16](draw.Sz(16, 16))
	c := New(pl, nil)
	c.FillRect(draw.R(0, 0, 16, 16), rgb565.White)
	c.DrawLine(draw.Pt(0, 0), draw.Pt(15, 15), rgb565.Black)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := rgb565.White
			if x == y {
				want = rgb565.Black
			}
			if got := pl.Pixel(draw.Pt(x, y)); got != want {
				t.Errorf("pixel (%d,%d) = %#04x; want %#04x", x, y, got, want)
			}
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 draw.Point
		want   string
	}{
		{"horizontal", draw.Pt(1, 1), draw.Pt(4, 1), picture(
			"......",
			".####.",
			"......",
			"......",
		)},
		{"reversed vertical", draw.Pt(2, 3), draw.Pt(2, 0), picture(
			"..#...",
			"..#...",
			"..#...",
			"..#...",
		)},
		{"shallow", draw.Pt(0, 0), draw.Pt(5, 2), picture(
			"##....",
			"..##..",
			"....##",
			"......",
		)},
		{"clipped", draw.Pt(-3, 1), draw.Pt(10, 1), picture(
			"......",
			"######",
			"......",
			"......",
		)},
		{"outside", draw.Pt(-3, -1), draw.Pt(10, -1), picture(
			"......",
			"......",
			"......",
			"......",
		)},
	}
	for _, tt := range tests {
		pl := plane.NewBit(draw.Sz(6, 4))
		c := New(pl, nil)
		c.DrawLine(tt.p0, tt.p1, bw.Black)
		if got := dump(pl, bw.Black); got != tt.want {
			t.Errorf("%s: DrawLine(%v, %v) =\n%swant\n%s", tt.name, tt.p0, tt.p1, got, tt.want)
		}
	}
}

func TestLongLineMissesClip(t *testing.T) {
	pl := plane.NewBit(draw.Sz(3100, 3970))
	c := New(pl, nil)
	clip := draw.Rpt(draw.Pt(1939, 3435), draw.Pt(3089, 3963))
	c.SetClip(clip)
	// Across the clip's columns the line runs at y 1782 to 2960,
	// well above the clip rectangle.
	c.DrawLine(draw.Pt(-31512, -32435), draw.Pt(30730, 31233), bw.Black)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if pl.Pixel(draw.Point{X: x, Y: y}) == bw.Black {
				t.Fatalf("pixel (%d,%d) drawn for a line that misses the clip", x, y)
			}
		}
	}
}

func TestLongLineOnLine(t *testing.T) {
	pl := plane.NewBit(draw.Sz(64, 64))
	c := New(pl, nil)
	// x = y, seen through the plane only.
	c.DrawLine(draw.Pt(-32000, -32000), draw.Pt(32000, 32000), bw.Black)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			want := bw.White
			if x == y {
				want = bw.Black
			}
			if got := pl.Pixel(draw.Pt(x, y)); got != want {
				t.Fatalf("pixel (%d,%d) = %d; want %d", x, y, got, want)
			}
		}
	}
}

func TestFillRectClip(t *testing.T) {
	pl := plane.NewBit(draw.Sz(6, 4))
	c := New(pl, nil)
	old := c.SetClip(draw.R(1, 1, 3, 10))
	if old != c.Bounds() {
		t.Errorf("SetClip returned %v; want bounds %v", old, c.Bounds())
	}
	if want := draw.R(1, 1, 3, 3); c.Clip() != want {
		t.Errorf("clip = %v; want %v", c.Clip(), want)
	}
	c.FillRect(draw.R(-5, -5, 20, 20), bw.Black)
	c.DrawPixel(draw.Pt(0, 0), bw.Black) // outside the clip
	want := picture(
		"......",
		".###..",
		".###..",
		".###..",
	)
	if got := dump(pl, bw.Black); got != want {
		t.Errorf("clipped fill =\n%swant\n%s", got, want)
	}

	c.Reset()
	if c.Clip() != c.Bounds() {
		t.Errorf("Reset left clip %v", c.Clip())
	}
	c.FillRect(draw.Rpt(draw.Pt(5, 3), draw.Pt(0, 0)), bw.White) // inverted: no-op
	c.FillRect(draw.R(2, 2, 0, 3), bw.White)                      // zero width: no-op
	if got := dump(pl, bw.Black); got != want {
		t.Errorf("empty fills changed the plane:\n%s", got)
	}
}

func TestDrawRect(t *testing.T) {
	pl := plane.NewBit(draw.Sz(6, 4))
	c := New(pl, nil)
	c.DrawRect(draw.R(1, 0, 4, 4), bw.Black)
	want := picture(
		".####.",
		".#..#.",
		".#..#.",
		".####.",
	)
	if got := dump(pl, bw.Black); got != want {
		t.Errorf("DrawRect =\n%swant\n%s", got, want)
	}
}

// blockFont draws every character as a solid block 2 wide
// and the character's code modulo 4 high.
type blockFont struct{ drawn []byte }

func (f *blockFont) Height() draw.Coord { return 3 }

func (f *blockFont) DrawChar(c *Canvas, p draw.Point, ch byte, v draw.Pixel) draw.Coord {
	f.drawn = append(f.drawn, ch)
	c.FillRect(draw.RectOf(p, draw.Sz(2, int(ch%4))), v)
	return 3
}

func TestDrawString(t *testing.T) {
	pl := plane.NewBit(draw.Sz(10, 3))
	c := New(pl, nil)
	f := new(blockFont)
	end := c.DrawString(draw.Pt(1, 0), "\x01\x03\x02\x00\x03", f, bw.Black)
	if end != draw.Pt(10, 0) {
		t.Errorf("DrawString ended at %v; want (10,0)", end)
	}
	if string(f.drawn) != "\x01\x03\x02" {
		t.Errorf("drew %q; want stop at NUL", f.drawn)
	}
	want := picture(
		".##.##.##.",
		"....##.##.",
		"....##....",
	)
	if got := dump(pl, bw.Black); got != want {
		t.Errorf("DrawString =\n%swant\n%s", got, want)
	}
}

func TestFlush(t *testing.T) {
	pl := plane.NewWord[uint16](draw.Sz(8, 8))
	if err := New(pl, nil).Flush(draw.R(0, 0, 8, 8)); err != nil {
		t.Errorf("Flush without flusher: %v", err)
	}

	f := new(flushRecord)
	c := New(pl, f)
	if err := c.Init(); err != nil {
		t.Fatal(err)
	}
	if f.inits != 1 {
		t.Errorf("Init did not reach flusher")
	}
	if err := c.Flush(draw.R(4, 4, 10, 10)); err != nil {
		t.Fatal(err)
	}
	if err := c.Flush(draw.R(20, 20, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if len(f.rects) != 1 || f.rects[0] != draw.R(4, 4, 4, 4) {
		t.Errorf("flushed %v; want [%v]", f.rects, draw.R(4, 4, 4, 4))
	}

	f.err = errors.New("bus fault")
	if err := c.Flush(c.Bounds()); !errors.Is(err, f.err) {
		t.Errorf("Flush error = %v; want %v", err, f.err)
	}
}

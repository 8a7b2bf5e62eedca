package font

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/bw"
	"github.com/aktlab/views/draw/canvas"
	"github.com/aktlab/views/draw/plane"
)

// testFont holds 'A' (width 5), 'B' (width 3) and '1' (width 4) in 5x7 cells.
// Characters between B and 1 are not defined, so the range is A..B and
// '1' lives in a font of its own.
var abData = []byte{
	0x05, 0x7C, 0x12, 0x11, 0x12, 0x7C, // A
	0x03, 0x7F, 0x49, 0x36, 0x00, 0x00, // B
}

var oneData = []byte{
	0x04, 0x00, 0x42, 0x7f, 0x40, 0x00, // 1
}

func dump(pl plane.Plane) string {
	var b strings.Builder
	s := pl.Size()
	for y := draw.Coord(0); y < s.H; y++ {
		for x := draw.Coord(0); x < s.W; x++ {
			if pl.Pixel(draw.Point{X: x, Y: y}) == bw.Black {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestMeasure(t *testing.T) {
	f := MustMikro(abData, draw.Sz(5, 7), 0, 'A', 'B')
	if got, want := f.Measure('A'), draw.Sz(6, 7); got != want {
		t.Errorf("Measure('A') = %v; want %v", got, want)
	}
	if got, want := f.MeasureString("AB"), draw.Sz(9, 7); got != want {
		t.Errorf(`MeasureString("AB") = %v; want %v`, got, want)
	}
	if got, want := f.MeasureString(""), draw.Sz(0, 7); got != want {
		t.Errorf(`MeasureString("") = %v; want %v`, got, want)
	}
	if got, want := f.MeasureString("B\x00A"), draw.Sz(3, 7); got != want {
		t.Errorf(`MeasureString("B\x00A") = %v; want %v`, got, want)
	}
}

func TestFallback(t *testing.T) {
	f := MustMikro(abData, draw.Sz(5, 7), 0, 'A', 'B')
	for _, ch := range []byte{'@', 'C', 0xFF} {
		if got := f.Width(ch); got != 5 {
			t.Errorf("Width(%q) = %d; want fallback width 5", ch, got)
		}
	}
	// Runes outside ISO 8859-1 fall back too.
	if got, want := f.MeasureString("A☃"), draw.Sz(11, 7); got != want {
		t.Errorf("MeasureString with unsupported rune = %v; want %v", got, want)
	}
}

func TestDrawChar(t *testing.T) {
	f := MustMikro(oneData, draw.Sz(5, 7), 0, '1', '1')
	pl := plane.NewBit(draw.Sz(6, 7))
	c := canvas.New(pl, nil)
	adv := f.DrawChar(c, draw.Pt(0, 0), '1', bw.Black)
	if adv != 5 {
		t.Errorf("advance = %d; want 5", adv)
	}
	want := strings.Join([]string{
		"..#...",
		".##...",
		"..#...",
		"..#...",
		"..#...",
		"..#...",
		".###..",
	}, "\n") + "\n"
	if got := dump(pl); got != want {
		t.Errorf("DrawChar('1') =\n%swant\n%s", got, want)
	}
}

func TestTransparentBackground(t *testing.T) {
	f := MustMikro(oneData, draw.Sz(5, 7), 0, '1', '1')
	pl := plane.NewBit(draw.Sz(5, 7))
	c := canvas.New(pl, nil)
	c.Clear(bw.Black)
	f.DrawChar(c, draw.Pt(0, 0), '1', bw.White)
	// Background bits left the fill alone; only the inked strokes changed.
	if got := pl.Pixel(draw.Pt(0, 0)); got != bw.Black {
		t.Errorf("background pixel overwritten")
	}
	if got := pl.Pixel(draw.Pt(2, 3)); got != bw.White {
		t.Errorf("ink pixel not drawn")
	}
}

func TestDrawStringClipsAndOffsets(t *testing.T) {
	f := MustMikro(oneData, draw.Sz(5, 7), 2, '1', '1')
	pl := plane.NewBit(draw.Sz(12, 4))
	c := canvas.New(pl, nil)
	end := f.DrawString(c, draw.Pt(-1, 2), "11", bw.Black)
	if end != draw.Pt(9, 2) {
		t.Errorf("DrawString ended at %v; want (9,2)", end)
	}
	// The cell top is two rows above the pen, and the bottom of the
	// glyph is clipped by the plane.
	want := strings.Join([]string{
		".#....#.....",
		"##...##.....",
		".#....#.....",
		".#....#.....",
	}, "\n") + "\n"
	if got := dump(pl); got != want {
		t.Errorf("DrawString =\n%swant\n%s", got, want)
	}
}

func TestTallGlyph(t *testing.T) {
	// A 1x10 cell spans two bytes per column.
	data := []byte{0x01, 0x01, 0x02} // rows 0 and 9
	f := MustMikro(data, draw.Sz(1, 10), 0, 'x', 'x')
	if f.Stride() != 3 {
		t.Fatalf("Stride = %d; want 3", f.Stride())
	}
	pl := plane.NewBit(draw.Sz(1, 10))
	f.DrawChar(canvas.New(pl, nil), draw.ZP, 'x', bw.Black)
	for y := 0; y < 10; y++ {
		want := draw.Pixel(0)
		if y == 0 || y == 9 {
			want = 1
		}
		if got := pl.Pixel(draw.Pt(0, y)); got != want {
			t.Errorf("row %d = %d; want %d", y, got, want)
		}
	}
}

func TestBadData(t *testing.T) {
	if _, err := NewMikro(abData[:7], draw.Sz(5, 7), 0, 'A', 'B'); !errors.Is(err, ErrBadFontData) {
		t.Errorf("short data: err = %v; want ErrBadFontData", err)
	}
	if _, err := NewMikro(abData, draw.Sz(5, 7), 0, 'B', 'A'); !errors.Is(err, ErrBadFontData) {
		t.Errorf("inverted range: err = %v; want ErrBadFontData", err)
	}
}

func TestFixed5x8(t *testing.T) {
	f := Fixed5x8
	first, last := f.Range()
	if first != ' ' || last != '~' {
		t.Errorf("Range = %q-%q", first, last)
	}
	if got, want := f.MeasureString("Hi"), draw.Sz(11, 8); got != want {
		t.Errorf(`MeasureString("Hi") = %v; want %v`, got, want)
	}
	if got := f.Width(' '); got != 3 {
		t.Errorf("space width = %d; want 3", got)
	}
}

func TestFromFace(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13, ' ', '~', nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.Size(), draw.Sz(7, 13); got != want {
		t.Errorf("cell size = %v; want %v", got, want)
	}
	if got := f.Stride(); got != 1+7*2 {
		t.Errorf("Stride = %d; want 15", got)
	}
	if got := f.Measure('M'); got.W != 8 {
		t.Errorf("Measure('M') = %v; want width 8", got)
	}

	pl := plane.NewBit(draw.Sz(7, 13))
	c := canvas.New(pl, nil)
	f.DrawChar(c, draw.ZP, ' ', bw.Black)
	if strings.Contains(dump(pl), "#") {
		t.Errorf("space inked pixels")
	}
	f.DrawChar(c, draw.ZP, 'I', bw.Black)
	if !strings.Contains(dump(pl), "#") {
		t.Errorf("'I' drew nothing")
	}
}

func TestEncodeMatchesCanvas(t *testing.T) {
	f := MustMikro(abData, draw.Sz(5, 7), 0, 'A', 'B')
	s := "AéB☃"
	codes := f.Encode(s)
	if codes != "A\xe9BA" {
		t.Errorf("Encode(%q) = %q; want %q", s, codes, "A\xe9BA")
	}
	c := canvas.New(plane.NewBit(draw.Sz(32, 7)), nil)
	end := c.DrawString(draw.ZP, codes, f, bw.Black)
	m := f.MeasureString(s)
	if end.X != m.W+Gap {
		t.Errorf("canvas drew to x=%d; MeasureString(%q) = %v", end.X, s, m)
	}
	if got := f.DrawString(c, draw.ZP, s, bw.Black); got != end {
		t.Errorf("MikroFont.DrawString ended at %v; canvas at %v", got, end)
	}
	if got := f.MeasureCodes(codes); got != m {
		t.Errorf("MeasureCodes = %v; want %v", got, m)
	}
	if got := f.Encode("B\x00A"); got != "B" {
		t.Errorf("Encode stopped at %q; want %q", got, "B")
	}
}

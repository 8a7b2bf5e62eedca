package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/bw"
	"github.com/aktlab/views/draw/plane"
)

func TestFlush(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	d := New(s, bw.Model)
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	pl := plane.NewBit(draw.Sz(4, 3))
	pl.SetPixel(draw.Pt(1, 0), bw.Black)
	pl.SetPixel(draw.Pt(2, 1), bw.Black)
	pl.SetPixel(draw.Pt(3, 2), bw.Black)
	if err := d.Flush(pl, plane.Bounds(pl)); err != nil {
		t.Fatal(err)
	}

	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(0xFF, 0xFF, 0xFF)
	tests := []struct {
		x, y   int
		fg, bg tcell.Color
	}{
		{0, 0, white, white},
		{1, 0, black, white},
		{2, 0, white, black},
		{3, 1, black, tcell.ColorBlack}, // last row has no lower pixel
		{0, 1, white, tcell.ColorBlack},
	}
	for _, tt := range tests {
		r, _, st, _ := s.GetContent(tt.x, tt.y)
		if r != upperHalf {
			t.Errorf("cell (%d,%d) = %q; want %q", tt.x, tt.y, r, upperHalf)
		}
		fg, bg, _ := st.Decompose()
		if fg != tt.fg || bg != tt.bg {
			t.Errorf("cell (%d,%d) colors = %v/%v; want %v/%v", tt.x, tt.y, fg, bg, tt.fg, tt.bg)
		}
	}
}

func TestFlushPartial(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	d := New(s, bw.Model)
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	pl := plane.NewBit(draw.Sz(4, 4))
	// Row 3 shares a cell with row 2, so flushing row 3 redraws both.
	if err := d.Flush(pl, draw.R(2, 3, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if r, _, _, _ := s.GetContent(2, 1); r != upperHalf {
		t.Errorf("cell (2,1) not drawn")
	}
	if r, _, _, _ := s.GetContent(1, 1); r == upperHalf {
		t.Errorf("cell (1,1) drawn outside the flushed rectangle")
	}
	if err := d.Flush(pl, draw.R(10, 10, 2, 2)); err != nil {
		t.Errorf("Flush outside the plane: %v", err)
	}
}

package views

import "github.com/aktlab/views/draw/canvas"

// A Screen is the root view of one display. It is bound to the canvas
// of that display for its whole life.
type Screen struct {
	View
	root *canvas.Canvas
}

// NewScreen returns a Screen drawing on c. Its frame is the bounds of c
// and it paints nothing of its own unless d does.
func NewScreen(c *canvas.Canvas, d Drawer) *Screen {
	s := &Screen{root: c}
	s.View.Init(d)
	s.View.frame = c.Bounds()
	return s
}

// Canvas returns the canvas s draws on.
func (s *Screen) Canvas() *canvas.Canvas { return s.root }

// Init initializes the canvas and the display behind it.
func (s *Screen) Init() error {
	return s.root.Init()
}

// DrawAll paints the whole tree rooted at s onto its canvas.
func (s *Screen) DrawAll() {
	s.View.DrawAll(s.root)
}

// Flush sends the whole canvas to the display.
func (s *Screen) Flush() error {
	return s.root.Flush(s.root.Bounds())
}

// Refresh repaints the subtree rooted at v with the canvas clipped to
// v's frame, and flushes just that frame. The clip is restored afterwards.
// Views above v are not repainted, so v should be opaque over its frame.
func (s *Screen) Refresh(v *View) error {
	c := s.root
	old := c.SetClip(v.frame.Intersect(c.Clip()))
	v.DrawAll(c)
	c.SetClip(old)
	return c.Flush(v.frame)
}

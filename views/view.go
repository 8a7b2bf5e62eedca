// Package views composes drawable rectangles into a tree and paints the
// tree onto a canvas.
//
// A View starts detached: it has no superview and no siblings. AddSubview
// attaches it to a parent, moving it from any parent it already had, and
// RemoveFromSuperview detaches it again. The tree only links views; it
// never owns them. A view belongs to whoever created it, and dropping the
// last reference to a detached subtree is how it is destroyed.
//
// Children are kept in an intrusive ring and are painted in ring order,
// which is the order in which they were added (a re-added view moves to
// the end). A child is not clipped to its parent's frame: views that need
// that consult their Frame and the canvas clip in DrawSelf.
//
// Views are not safe for concurrent use. An application that mutates a
// tree from several goroutines must serialize access to the whole tree.
package views

import (
	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/canvas"
	"github.com/aktlab/views/draw/ring"
)

// A Drawer paints one view.
type Drawer interface {
	DrawSelf(v *View, c *canvas.Canvas)
}

// A FrameSetter is a Drawer that is told when its view's frame changes.
type FrameSetter interface {
	Drawer
	SetFrame(v *View, old draw.Rect)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(v *View, c *canvas.Canvas)

func (f DrawerFunc) DrawSelf(v *View, c *canvas.Canvas) { f(v, c) }

// A View is a rectangle-framed node of a view tree.
type View struct {
	frame     draw.Rect
	superview *View
	sibling   ring.Ring[*View] // links v into its superview's subviews
	subviews  ring.Ring[*View] // list head; never holds a view of its own
	drawer    Drawer
}

// New returns a detached view painted by d.
// A nil d paints nothing, which is useful for pure containers.
func New(d Drawer) *View {
	v := new(View)
	v.Init(d)
	return v
}

// Init prepares a View embedded in another structure.
// It must be called before the view is used and not again while the
// view is attached or has subviews.
func (v *View) Init(d Drawer) {
	v.superview = nil
	v.drawer = d
	v.sibling.Value = v
	v.sibling.Init()
	v.subviews.Init()
}

// Frame returns v's frame.
func (v *View) Frame() draw.Rect { return v.frame }

// SetFrame sets v's frame, telling v's Drawer if it is a FrameSetter.
// Setting the frame does not redraw anything.
func (v *View) SetFrame(r draw.Rect) {
	old := v.frame
	v.frame = r
	if fs, ok := v.drawer.(FrameSetter); ok {
		fs.SetFrame(v, old)
	}
}

// Superview returns v's parent, or nil if v is detached.
func (v *View) Superview() *View { return v.superview }

// AddSubview makes sub the last child of v, first detaching it from
// any view it is attached to. Adding a view to itself or to one of its
// own descendants is a no-op, so the tree never has a cycle.
// AddSubview does not change sub's frame.
func (v *View) AddSubview(sub *View) {
	for a := v; a != nil; a = a.superview {
		if a == sub {
			return
		}
	}
	// Detach first: if sub is already v's last child,
	// Prev would be sub itself and Join would only unlink it.
	sub.sibling.Remove()
	ring.Join(v.subviews.Prev(), &sub.sibling)
	sub.superview = v
}

// RemoveFromSuperview detaches v from its parent.
// It is a no-op for a detached view.
func (v *View) RemoveFromSuperview() {
	v.sibling.Remove()
	v.superview = nil
}

// CountSubviews returns the number of v's direct children.
func (v *View) CountSubviews() int {
	return v.subviews.Len() - 1
}

// RemoveAllSubviews detaches every child of v.
func (v *View) RemoveAllSubviews() {
	for !v.subviews.Empty() {
		v.subviews.Next().Value.RemoveFromSuperview()
	}
}

// Subviews returns v's children in painting order.
func (v *View) Subviews() []*View {
	var s []*View
	v.subviews.Do(func(sub *View) { s = append(s, sub) })
	return s
}

// Each calls f for each child of v in painting order.
// f must not add or remove children of v.
func (v *View) Each(f func(*View)) {
	v.subviews.Do(f)
}

// DrawSelf paints v alone, by calling its Drawer.
func (v *View) DrawSelf(c *canvas.Canvas) {
	if v.drawer != nil {
		v.drawer.DrawSelf(v, c)
	}
}

// DrawAll paints v and then, depth first, each of its subviews.
func (v *View) DrawAll(c *canvas.Canvas) {
	v.DrawSelf(c)
	v.subviews.Do(func(sub *View) { sub.DrawAll(c) })
}

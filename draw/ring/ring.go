// Package ring implements intrusive circular doubly linked lists.
//
// A Ring is embedded in (or allocated beside) the value it links, and
// carries a back reference to that value, so that a list of siblings needs
// no container allocation of its own. Every Ring is always a member of
// exactly one cycle; a Ring that has not been joined to anything is a
// cycle of one.
//
// Unlike container/ring, the element type is carried in the type parameter
// and a Ring moves between cycles with a single operation, Join.
package ring

// A Ring is one node of a circular doubly linked list.
// The zero Ring is not ready for use; call Init or use New.
type Ring[T any] struct {
	left, right *Ring[T]

	// Value is the element that owns this node.
	Value T
}

// New returns a singleton ring holding v.
func New[T any](v T) *Ring[T] {
	r := &Ring[T]{Value: v}
	return r.Init()
}

// Init makes r a singleton ring and returns it.
// It must not be called on a ring that is linked to others.
func (r *Ring[T]) Init() *Ring[T] {
	r.left = r
	r.right = r
	return r
}

func (r *Ring[T]) lazyInit() {
	if r.right == nil {
		r.Init()
	}
}

// Join removes src from the ring it currently belongs to, repairing the
// neighbors it leaves behind, and splices it in immediately to the right
// of dst. Join(src, src) therefore removes src, leaving it a singleton.
func Join[T any](dst, src *Ring[T]) {
	dst.lazyInit()
	src.lazyInit()

	// remove src from its current ring
	src.left.right = src.right
	src.right.left = src.left

	// form a singleton so that Join(x, x) works
	src.left = src
	src.right = src

	// splice src into dst
	src.right = dst.right
	src.left = dst
	dst.right.left = src
	dst.right = src
}

// Remove detaches r from its ring, leaving it a singleton.
func (r *Ring[T]) Remove() {
	Join(r, r)
}

// Empty reports whether r is a singleton.
// Only one side needs checking: the links are always consistent.
func (r *Ring[T]) Empty() bool {
	return r.left == nil || r.left == r
}

// Next returns the node to the right of r.
func (r *Ring[T]) Next() *Ring[T] {
	r.lazyInit()
	return r.right
}

// Prev returns the node to the left of r.
func (r *Ring[T]) Prev() *Ring[T] {
	r.lazyInit()
	return r.left
}

// Len counts the nodes in r's ring, including r.
func (r *Ring[T]) Len() int {
	n := 1
	for p := r.Next(); p != r; p = p.right {
		n++
	}
	return n
}

// Do calls f on the value of every node in r's ring other than r itself,
// in ring order starting to the right of r. When r is used as the head of a
// list, this visits the list's members in order.
// f must not modify the ring.
func (r *Ring[T]) Do(f func(T)) {
	for p := r.Next(); p != r; p = p.right {
		f(p.Value)
	}
}

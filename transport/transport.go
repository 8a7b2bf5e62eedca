// Package transport defines the byte stream that carries finished pixels
// to a display controller, and provides an in-memory implementation.
//
// A transmission is bracketed by Select and Deselect, which on a bus such
// as SPI assert and release the device's chip select. Bytes may only be
// sent while selected.
package transport

import (
	"errors"
	"sync"
)

// ErrNotSelected is returned by Send and SendByte outside a
// Select/Deselect bracket.
var ErrNotSelected = errors.New("transport: device not selected")

// A Transport is a byte stream to one display controller.
type Transport interface {
	Init() error
	Reset() error
	Select() error
	Deselect() error
	SendByte(b byte) error
	Send(p []byte) error
}

// With selects t, calls fn, and deselects t again even if fn fails.
// The first error encountered is returned.
func With(t Transport, fn func() error) (err error) {
	if err := t.Select(); err != nil {
		return err
	}
	defer func() {
		if derr := t.Deselect(); err == nil {
			err = derr
		}
	}()
	return fn()
}

// A Recorder is a Transport that keeps every transmission in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	selected bool
	cur      []byte
	Inits    int
	Resets   int
	Frames   [][]byte // one entry per Select/Deselect bracket
}

func (r *Recorder) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Inits++
	return nil
}

func (r *Recorder) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Resets++
	r.Frames = nil
	return nil
}

func (r *Recorder) Select() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = true
	r.cur = nil
	return nil
}

func (r *Recorder) Deselect() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.selected {
		return ErrNotSelected
	}
	r.selected = false
	r.Frames = append(r.Frames, r.cur)
	r.cur = nil
	return nil
}

func (r *Recorder) SendByte(b byte) error {
	return r.Send([]byte{b})
}

func (r *Recorder) Send(p []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.selected {
		return ErrNotSelected
	}
	r.cur = append(r.cur, p...)
	return nil
}

// Bytes returns the concatenation of all recorded frames.
func (r *Recorder) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b []byte
	for _, f := range r.Frames {
		b = append(b, f...)
	}
	return b
}

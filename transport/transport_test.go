package transport

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	if err := r.Send([]byte{1}); !errors.Is(err, ErrNotSelected) {
		t.Errorf("Send outside bracket: err = %v; want ErrNotSelected", err)
	}
	if err := r.Deselect(); !errors.Is(err, ErrNotSelected) {
		t.Errorf("unbalanced Deselect: err = %v; want ErrNotSelected", err)
	}

	err := With(&r, func() error {
		if err := r.SendByte(0x2A); err != nil {
			return err
		}
		return r.Send([]byte{1, 2, 3})
	})
	if err != nil {
		t.Fatal(err)
	}
	err = With(&r, func() error { return r.Send([]byte{9}) })
	if err != nil {
		t.Fatal(err)
	}
	want := [][]byte{{0x2A, 1, 2, 3}, {9}}
	if diff := cmp.Diff(want, r.Frames); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte{0x2A, 1, 2, 3, 9}, r.Bytes()); diff != "" {
		t.Errorf("Bytes mismatch (-want +got):\n%s", diff)
	}

	r.Init()
	r.Reset()
	if r.Inits != 1 || r.Resets != 1 || len(r.Frames) != 0 {
		t.Errorf("after Init/Reset: Inits=%d Resets=%d Frames=%d", r.Inits, r.Resets, len(r.Frames))
	}
}

// failing selects and deselects according to its fields.
type failing struct {
	Recorder
	selectErr   error
	deselectErr error
	deselects   int
}

func (f *failing) Select() error {
	if f.selectErr != nil {
		return f.selectErr
	}
	return f.Recorder.Select()
}

func (f *failing) Deselect() error {
	f.deselects++
	if err := f.Recorder.Deselect(); err != nil {
		return err
	}
	return f.deselectErr
}

func TestWithErrors(t *testing.T) {
	boom := errors.New("boom")

	f := &failing{selectErr: boom}
	called := false
	if err := With(f, func() error { called = true; return nil }); !errors.Is(err, boom) {
		t.Errorf("select failure: err = %v", err)
	}
	if called || f.deselects != 0 {
		t.Errorf("fn ran or deselect issued after failed select")
	}

	f = new(failing)
	sendErr := errors.New("send")
	f.deselectErr = boom
	if err := With(f, func() error { return sendErr }); !errors.Is(err, sendErr) {
		t.Errorf("fn failure: err = %v; want first error", err)
	}
	if f.deselects != 1 {
		t.Errorf("deselects = %d; want 1", f.deselects)
	}

	f = &failing{deselectErr: boom}
	if err := With(f, func() error { return nil }); !errors.Is(err, boom) {
		t.Errorf("deselect failure: err = %v", err)
	}
}

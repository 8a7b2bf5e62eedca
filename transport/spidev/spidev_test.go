//go:build linux

package spidev

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"

	"github.com/aktlab/views/transport"
)

func TestSendChunks(t *testing.T) {
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		t.Fatal(err)
	}
	defer unix.Close(p[0])
	d := &Device{cfg: Config{MaxWrite: 3}, fd: p[1]}
	defer d.Close()

	if err := d.Send([]byte{1}); !errors.Is(err, transport.ErrNotSelected) {
		t.Errorf("Send outside bracket: err = %v", err)
	}
	err := transport.With(d, func() error {
		if err := d.SendByte(0xAA); err != nil {
			return err
		}
		return d.Send([]byte{1, 2, 3, 4, 5, 6, 7})
	})
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 16)
	n, err := unix.Read(p[0], buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0xAA, 1, 2, 3, 4, 5, 6, 7}, buf[:n]); diff != "" {
		t.Errorf("written bytes mismatch (-want +got):\n%s", diff)
	}
	if err := d.Deselect(); !errors.Is(err, transport.ErrNotSelected) {
		t.Errorf("second Deselect: err = %v", err)
	}
}

func TestInitNotSPI(t *testing.T) {
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		t.Fatal(err)
	}
	defer unix.Close(p[0])
	d := &Device{cfg: Config{Mode: 3, BitsPerWord: 8}, fd: p[1]}
	defer d.Close()
	// A pipe rejects the byte-sized mode request before anything else.
	err := d.Init()
	if !errors.Is(err, unix.ENOTTY) {
		t.Errorf("Init on a pipe: err = %v; want ENOTTY", err)
	}
}

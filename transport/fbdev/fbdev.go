//go:build linux

// Package fbdev flushes planes to a Linux frame buffer device.
//
// Unlike a bus transport, the frame buffer is memory mapped, so a Device
// is a canvas.Flusher in its own right: it decodes the changed pixels with
// the plane's color model and stores them in the device's native format.
package fbdev

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/plane"
	"github.com/aktlab/views/draw/rgb565"
)

// Config describes the frame buffer geometry.
// The values are those reported by fbset.
type Config struct {
	Device       string // for example /dev/fb0
	Width        int
	Height       int
	BitsPerPixel int // 16 (RGB565) or 32 (XRGB8888)
	Stride       int // bytes per line; 0 means Width*BitsPerPixel/8

	// Model decodes the pixels of planes flushed to the device.
	Model draw.Model
}

// A Device is a mapped frame buffer.
type Device struct {
	cfg Config
	fd  int
	mem []byte
}

// Open opens and maps the frame buffer described by cfg.
func Open(cfg Config) (*Device, error) {
	if cfg.BitsPerPixel != 16 && cfg.BitsPerPixel != 32 {
		return nil, fmt.Errorf("fbdev: unsupported depth %d", cfg.BitsPerPixel)
	}
	if cfg.Stride == 0 {
		cfg.Stride = cfg.Width * cfg.BitsPerPixel / 8
	}
	if cfg.Model == nil {
		cfg.Model = rgb565.Model
	}
	fd, err := unix.Open(cfg.Device, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w", cfg.Device, err)
	}
	mem, err := unix.Mmap(fd, 0, cfg.Stride*cfg.Height, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("fbdev: mmap %s: %w", cfg.Device, err)
	}
	return &Device{cfg: cfg, fd: fd, mem: mem}, nil
}

// Flush copies the pixels of pl inside r to the frame buffer.
// Pixels beyond the frame buffer's edge are dropped.
func (d *Device) Flush(pl plane.Plane, r draw.Rect) error {
	r = r.Intersect(plane.Bounds(pl)).Intersect(draw.R(0, 0, d.cfg.Width, d.cfg.Height))
	if r.Empty() {
		return nil
	}
	bpp := d.cfg.BitsPerPixel / 8
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := d.mem[int(y)*d.cfg.Stride:]
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, _ := d.cfg.Model(pl.Pixel(draw.Point{X: x, Y: y})).RGBA()
			o := int(x) * bpp
			if bpp == 2 {
				v := rgb565.Pack(uint8(cr>>8), uint8(cg>>8), uint8(cb>>8))
				row[o] = byte(v)
				row[o+1] = byte(v >> 8)
				continue
			}
			row[o] = byte(cb >> 8)
			row[o+1] = byte(cg >> 8)
			row[o+2] = byte(cr >> 8)
			row[o+3] = 0xFF
		}
	}
	return nil
}

// Close unmaps and closes the frame buffer.
func (d *Device) Close() error {
	if err := unix.Munmap(d.mem); err != nil {
		return fmt.Errorf("fbdev: munmap: %w", err)
	}
	return unix.Close(d.fd)
}

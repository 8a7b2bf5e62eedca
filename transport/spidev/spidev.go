//go:build linux

// Package spidev implements a transport over the Linux spidev interface.
//
// Chip select is handled by the kernel for each write, so Select and
// Deselect only bracket the writes made in between; they do not touch
// the bus themselves.
package spidev

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/aktlab/views/transport"
)

// ioctl requests from <linux/spi/spidev.h>.
const (
	spiIocWrMode        = 0x40016b01
	spiIocWrBitsPerWord = 0x40016b03
	spiIocWrMaxSpeedHz  = 0x40046b04
)

// Config describes how to open a spidev device.
type Config struct {
	Device      string // for example /dev/spidev0.0
	Mode        uint8  // SPI mode, 0 through 3
	BitsPerWord uint8  // 0 means 8
	SpeedHz     uint32

	// MaxWrite bounds the size of a single write, since the kernel
	// rejects transfers larger than its buffer (4096 bytes by default).
	// 0 means 4096.
	MaxWrite int
}

// A Device is an open spidev device.
type Device struct {
	cfg      Config
	fd       int
	selected bool
}

// Open opens the device described by cfg. The device is configured by Init.
func Open(cfg Config) (*Device, error) {
	fd, err := unix.Open(cfg.Device, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("spidev: open %s: %w", cfg.Device, err)
	}
	if cfg.BitsPerWord == 0 {
		cfg.BitsPerWord = 8
	}
	if cfg.MaxWrite <= 0 {
		cfg.MaxWrite = 4096
	}
	return &Device{cfg: cfg, fd: fd}, nil
}

// ioctlSetUint8 passes a pointer to a single byte, the argument
// type of the spidev mode and word size requests.
func ioctlSetUint8(fd int, req uint, v uint8) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(unsafe.Pointer(&v)))
	if errno != 0 {
		return errno
	}
	return nil
}

func ioctlSetUint32(fd int, req uint, v uint32) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(unsafe.Pointer(&v)))
	if errno != 0 {
		return errno
	}
	return nil
}

// Init sets the bus mode, word size and clock.
func (d *Device) Init() error {
	if err := ioctlSetUint8(d.fd, spiIocWrMode, d.cfg.Mode); err != nil {
		return fmt.Errorf("spidev: set mode: %w", err)
	}
	if err := ioctlSetUint8(d.fd, spiIocWrBitsPerWord, d.cfg.BitsPerWord); err != nil {
		return fmt.Errorf("spidev: set bits per word: %w", err)
	}
	if d.cfg.SpeedHz != 0 {
		if err := ioctlSetUint32(d.fd, spiIocWrMaxSpeedHz, d.cfg.SpeedHz); err != nil {
			return fmt.Errorf("spidev: set speed: %w", err)
		}
	}
	return nil
}

// Reset abandons any open bracket.
func (d *Device) Reset() error {
	d.selected = false
	return nil
}

func (d *Device) Select() error {
	d.selected = true
	return nil
}

func (d *Device) Deselect() error {
	if !d.selected {
		return transport.ErrNotSelected
	}
	d.selected = false
	return nil
}

func (d *Device) SendByte(b byte) error {
	return d.Send([]byte{b})
}

func (d *Device) Send(p []byte) error {
	if !d.selected {
		return transport.ErrNotSelected
	}
	for len(p) > 0 {
		n := len(p)
		if n > d.cfg.MaxWrite {
			n = d.cfg.MaxWrite
		}
		w, err := unix.Write(d.fd, p[:n])
		if err != nil {
			return fmt.Errorf("spidev: write: %w", err)
		}
		p = p[w:]
	}
	return nil
}

// Close closes the device.
func (d *Device) Close() error {
	return unix.Close(d.fd)
}

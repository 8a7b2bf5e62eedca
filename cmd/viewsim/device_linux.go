package main

import (
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/aktlab/views/display"
	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/canvas"
	"github.com/aktlab/views/draw/plane"
	"github.com/aktlab/views/transport/fbdev"
	"github.com/aktlab/views/transport/spidev"
)

// runDevice drives real hardware: a frame buffer if fb is set,
// otherwise the SPI device spi. It runs until interrupted.
func runDevice(pl plane.Plane, model draw.Model, pal palette, fb, spi string) {
	var out canvas.Flusher
	if fb != "" {
		sz := pl.Size()
		dev, err := fbdev.Open(fbdev.Config{
			Device:       fb,
			Width:        int(sz.W),
			Height:       int(sz.H),
			BitsPerPixel: *fbDepth,
			Model:        model,
		})
		if err != nil {
			log.Fatal(err)
		}
		defer dev.Close()
		out = dev
	} else {
		t, err := spidev.Open(spidev.Config{Device: spi, SpeedHz: uint32(*spiHz)})
		if err != nil {
			log.Fatal(err)
		}
		defer t.Close()
		// No addresser: the panel is expected to accept a full
		// frame of pixel data after chip select.
		out = display.New(t, nil)
	}

	d := newDemo(pl, out, pal)
	if err := d.screen.Init(); err != nil {
		log.Fatal(err)
	}
	d.screen.DrawAll()
	if err := d.screen.Flush(); err != nil {
		log.Fatal(err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	t := time.NewTicker(200 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			if err := d.tick(); err != nil {
				log.Print(err)
			}
		}
	}
}

// Viewsim runs a demonstration view tree on a simulated display.
//
// Usage:
//
//	viewsim [-size WxH] [-mono] [-scale n] [-v] [-term | -png file | -fb dev | -spi dev]
//
// By default the display is shown in a desktop window, magnified by
// -scale. With -term it is drawn on the terminal using half-block
// characters, and with -png the first frame is written to a PNG file
// and viewsim exits. -mono simulates a 1-bit panel instead of an
// RGB565 one.
//
// On Linux, -fb draws on a frame buffer device such as /dev/fb0 and
// -spi streams frames to a spidev device such as /dev/spidev0.0.
// These run until interrupted. -v logs every transfer to standard error.
//
// In the window or terminal, q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/aktlab/views/display"
	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/bw"
	"github.com/aktlab/views/draw/plane"
	"github.com/aktlab/views/draw/rgb565"
)

var (
	sizeFlag = flag.String("size", "128x64", "display `size` in pixels")
	mono     = flag.Bool("mono", false, "simulate a 1-bit panel")
	scale    = flag.Int("scale", 4, "window magnification")
	termFlag = flag.Bool("term", false, "draw on the terminal")
	pngFile  = flag.String("png", "", "write the first frame to `file` and exit")
	fbFlag   = flag.String("fb", "", "draw on frame buffer `device`")
	fbDepth  = flag.Int("fbdepth", 16, "frame buffer bits per pixel (16 or 32)")
	spiFlag  = flag.String("spi", "", "stream frames to spidev `device`")
	spiHz    = flag.Int("spihz", 8000000, "SPI clock in Hz")
	verbose  = flag.Bool("v", false, "log display transfers")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: viewsim [-size WxH] [-mono] [-scale n] [-v] [-term | -png file | -fb dev | -spi dev]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("viewsim: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}

	var w, h int
	if _, err := fmt.Sscanf(*sizeFlag, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 || w > 4096 || h > 4096 {
		log.Fatalf("bad size %q", *sizeFlag)
	}
	sz := draw.Sz(w, h)

	if *verbose {
		display.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var pl plane.Plane
	var model draw.Model
	var pal palette
	if *mono {
		pl = plane.NewBit(sz)
		model = bw.Model
		pal = monoPalette
	} else {
		pl = plane.NewWord[uint16](sz)
		model = rgb565.Model
		pal = colorPalette
	}

	switch {
	case *pngFile != "":
		writePNG(pl, model, pal, *pngFile)
	case *fbFlag != "" || *spiFlag != "":
		runDevice(pl, model, pal, *fbFlag, *spiFlag)
	case *termFlag:
		runTerm(pl, model, pal)
	default:
		runWindow(pl, model, pal, *scale)
	}
}

func writePNG(pl plane.Plane, model draw.Model, pal palette, file string) {
	d := newDemo(pl, nil, pal)
	d.screen.DrawAll()
	f, err := os.Create(file)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, plane.Snapshot(pl, model, plane.Bounds(pl))); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

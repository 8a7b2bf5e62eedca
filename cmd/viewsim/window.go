package main

import (
	"image"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/plane"
)

// A window is a canvas.Flusher that shows a plane in a shiny window,
// each pixel magnified to a scale×scale square.
// Flush must be called on the window's event goroutine.
type window struct {
	w     screen.Window
	b     screen.Buffer
	model draw.Model
	scale int
}

func (win *window) Flush(pl plane.Plane, r draw.Rect) error {
	dst := win.b.RGBA()
	s := win.scale
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := win.model(pl.Pixel(draw.Point{X: x, Y: y}))
			for dy := 0; dy < s; dy++ {
				for dx := 0; dx < s; dx++ {
					dst.Set(int(x)*s+dx, int(y)*s+dy, c)
				}
			}
		}
	}
	sr := image.Rect(int(r.Min.X)*s, int(r.Min.Y)*s, int(r.Max.X)*s, int(r.Max.Y)*s)
	win.w.Upload(sr.Min, win.b, sr)
	win.w.Publish()
	return nil
}

func runWindow(pl plane.Plane, model draw.Model, pal palette, scale int) {
	if scale < 1 {
		scale = 1
	}
	driver.Main(func(s screen.Screen) {
		sz := pl.Size()
		wsz := image.Pt(int(sz.W)*scale, int(sz.H)*scale)
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Title:  "viewsim",
			Width:  wsz.X,
			Height: wsz.Y,
		})
		if err != nil {
			log.Fatal(err)
		}
		defer w.Release()
		b, err := s.NewBuffer(wsz)
		if err != nil {
			log.Fatal(err)
		}
		defer b.Release()

		win := &window{w: w, b: b, model: model, scale: scale}
		d := newDemo(pl, win, pal)
		if err := d.screen.Init(); err != nil {
			log.Fatal(err)
		}

		done := make(chan bool)
		defer close(done)
		go func() {
			t := time.NewTicker(200 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					w.Send(func() {
						if err := d.tick(); err != nil {
							log.Print(err)
						}
					})
				}
			}
		}()

		for {
			switch e := w.NextEvent().(type) {
			case func():
				e()

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case key.Event:
				if e.Direction == key.DirPress && (e.Code == key.CodeEscape || e.Rune == 'q') {
					return
				}

			case paint.Event, size.Event:
				d.screen.DrawAll()
				if err := d.screen.Flush(); err != nil {
					log.Print(err)
				}

			case error:
				log.Print(e)
			}
		}
	})
}

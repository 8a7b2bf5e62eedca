package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/plane"
	"github.com/aktlab/views/transport/term"
)

func runTerm(pl plane.Plane, model draw.Model, pal palette) {
	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	dev := term.New(s, model)
	d := newDemo(pl, dev, pal)
	if err := d.screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	redraw := func() {
		d.screen.DrawAll()
		if err := d.screen.Flush(); err != nil {
			log.Print(err)
		}
	}
	redraw()

	t := time.NewTicker(200 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				s.Sync()
				redraw()
			}
		case <-t.C:
			if err := d.tick(); err != nil {
				log.Print(err)
			}
		}
	}
}

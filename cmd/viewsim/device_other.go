//go:build !linux

package main

import (
	"log"

	"github.com/aktlab/views/draw"
	"github.com/aktlab/views/draw/plane"
)

func runDevice(pl plane.Plane, model draw.Model, pal palette, fb, spi string) {
	log.Fatal("-fb and -spi are only supported on Linux")
}

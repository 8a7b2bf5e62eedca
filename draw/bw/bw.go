// Package bw defines the two-value palette used by 1-bit planes.
// A set bit is an inked (black) pixel, matching monochrome LCD and OLED
// controllers and the convention of bitmap font data.
package bw

import (
	"image/color"

	"github.com/aktlab/views/draw"
)

const (
	White draw.Pixel = 0
	Black draw.Pixel = 1
)

// Model decodes 1-bit pixel values. Only the low bit is significant.
var Model draw.Model = func(v draw.Pixel) color.Color {
	if v&1 == Black {
		return color.Black
	}
	return color.White
}

// Package rgb565 defines the 16-bit 5-6-5 palette used by word-per-pixel
// planes.
//
// Values are stored byte-swapped: the panel controllers this package targets
// expect the high byte of each pixel first on the wire, and the planes are
// streamed to them as little-endian memory. Keeping the swap in the stored
// value lets a flush send plane memory untouched.
package rgb565

import (
	"image/color"

	"github.com/aktlab/views/draw"
)

// Pack returns the unswapped 5-6-5 encoding of r, g, b.
func Pack(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}

// Swap exchanges the two bytes of v.
func Swap(v uint16) uint16 {
	return v<<8 | v>>8
}

// RGB returns the stored pixel value for r, g, b.
func RGB(r, g, b uint8) draw.Pixel {
	return draw.Pixel(Swap(Pack(r, g, b)))
}

// The named colors, as stored pixel values.
const (
	Black       draw.Pixel = 0x0000
	Navy        draw.Pixel = 0x1000
	DarkGreen   draw.Pixel = 0x0004
	DarkCyan    draw.Pixel = 0x1004
	Maroon      draw.Pixel = 0x0080
	Purple      draw.Pixel = 0x1080
	Olive       draw.Pixel = 0x0084
	LightGray   draw.Pixel = 0x18C6
	DarkGray    draw.Pixel = 0x1084
	Blue        draw.Pixel = 0x1F00
	Green       draw.Pixel = 0xE007
	Cyan        draw.Pixel = 0xFF07
	Red         draw.Pixel = 0x00F8
	Magenta     draw.Pixel = 0x1FF8
	Yellow      draw.Pixel = 0xE0FF
	White       draw.Pixel = 0xFFFF
	Orange      draw.Pixel = 0x20FD
	GreenYellow draw.Pixel = 0xE5AF
)

// Decode returns the color of the stored pixel value v.
// The low bits of each channel are filled by replicating the high bits.
func Decode(v draw.Pixel) color.RGBA {
	u := Swap(uint16(v))
	hi, lo := uint8(u>>8), uint8(u)
	red := hi & 0xF8
	grn := hi<<5 | (lo&0xE0)>>3
	blu := lo << 3
	return color.RGBA{red | red>>5, grn | grn>>6, blu | blu>>5, 0xFF}
}

// Model decodes stored pixel values.
var Model draw.Model = func(v draw.Pixel) color.Color { return Decode(v) }

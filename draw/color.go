package draw

import "image/color"

// A Pixel is a raw pixel value in the encoding of the Plane it is stored in.
// Word planes store the full value (truncated to the word type);
// bit planes store only the low bit.
// The named palettes in packages rgb565 and bw provide values for the
// two supported encodings.
type Pixel uint16

// A Model decodes raw pixel values of one encoding into standard colors,
// so that planes can be inspected as image.Image values.
type Model func(Pixel) color.Color

// Convert returns m(v). It exists so that a Model reads like
// the color.Model values of the standard library.
func (m Model) Convert(v Pixel) color.Color {
	return m(v)
}

// Package draw defines the geometry shared by the views packages:
// coordinates, points, sizes and rectangles, the Cohen–Sutherland line
// clipper, and raw pixel values.
//
// Coordinates
//
// A Coord is a signed 16-bit integer. Points and rectangles use screen
// orientation: X grows to the right and Y grows down. Rectangles are
// half-open, so R(0, 0, 4, 4) covers x and y in 0 through 3 and two
// rectangles that abut share no pixel.
//
// Pixels
//
// A Pixel is the raw value stored in a plane. Its meaning depends on the
// plane: word planes hold 8, 16 or 32 bit values, typically RGB565 as
// defined in package rgb565, while bit planes hold only the low bit, named
// in package bw. A Model turns raw values back into standard colors for
// previews and snapshots.
//
// Subpackages
//
// Package plane stores pixels, canvas draws clipped shapes and strings
// into a plane, font provides MikroFont bitmap fonts, and ring is the
// intrusive list used by package views to link view trees.
package draw

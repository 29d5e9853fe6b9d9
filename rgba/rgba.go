/*
Package rgba implements the packed 32-bit color used by the tile rasterizer.

Each color is a uint32 holding four 8-bit channels: red in bits 0-7, green in
bits 8-15, blue in bits 16-23 and alpha in bits 24-31. Channels are not
alpha-premultiplied.
*/
package rgba

import "image/color"

// Color is a packed, non-alpha-premultiplied 32-bit color.
type Color uint32

const (
	redShift   = 0
	greenShift = 8
	blueShift  = 16
	alphaShift = 24
)

// Opaque is the alpha value used when none is given.
const Opaque = 0xff

// Pack combines r, g and b into a fully opaque Color.
func Pack(r, g, b uint8) Color {
	return PackAlpha(r, g, b, Opaque)
}

// PackAlpha combines all four channels into a Color.
func PackAlpha(r, g, b, a uint8) Color {
	return Color(uint32(a)<<alphaShift | uint32(b)<<blueShift | uint32(g)<<greenShift | uint32(r)<<redShift)
}

// Unpack splits c into its four channels. It is the inverse of PackAlpha.
func Unpack(c Color) (r, g, b, a uint8) {
	return uint8(c >> redShift), uint8(c >> greenShift), uint8(c >> blueShift), uint8(c >> alphaShift)
}

// Unpack splits c into its four channels.
func (c Color) Unpack() (r, g, b, a uint8) {
	return Unpack(c)
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	r8, g8, b8, a8 := c.Unpack()
	return color.NRGBA{R: r8, G: g8, B: b8, A: a8}.RGBA()
}

// Model converts any color.Color into a Color.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return PackAlpha(n.R, n.G, n.B, n.A)
}

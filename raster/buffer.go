/*
Package raster implements the tile rasterizer.

A tile grid is drawn into a Buffer by painting one solid size by size square
per tile. Squares are placed by a draw cursor that advances horizontally by
the tile size and wraps onto the next row of squares whenever it runs off the
right-hand edge of the buffer, so the grid must be walked in row-major order
and its column count multiplied by the tile size must equal the buffer width.
*/
package raster

import (
	"image"
	"image/color"

	"github.com/bodgit/tilemap/rgba"
)

// Buffer is a row-major packed-pixel image. Pixel (x, y) is stored at
// Pix[x+y*Width].
type Buffer struct {
	Pix    []rgba.Color
	Width  int
	Height int
}

// NewBuffer returns a zeroed Buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]rgba.Color, width*height),
		Width:  width,
		Height: height,
	}
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c rgba.Color) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// PixOffset returns the index of the pixel at (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return x + y*b.Width
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return rgba.Model
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.ColorAt(x, y)
}

// ColorAt returns the packed color at (x, y), or zero outside the bounds.
func (b *Buffer) ColorAt(x, y int) rgba.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return 0
	}
	return b.Pix[b.PixOffset(x, y)]
}

// Set implements the draw.Image interface.
func (b *Buffer) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return
	}
	b.Pix[b.PixOffset(x, y)] = rgba.Model.Convert(c).(rgba.Color)
}

/*
Package ppm implements a binary PPM ("P6") image decoder and encoder.

The file starts with a three line ASCII header; the magic "P6", the width and
height separated by a space, and the maximum channel value which is always
255. It is followed immediately by width * height * 3 bytes of pixel
information, one red, green and blue byte per pixel in row-major order.
There is no padding, alpha channel or compression.
*/
package ppm

import "image"

const (
	magic       = "P6"
	maxVal      = 255
	bytesPerPix = 3
)

func init() {
	image.RegisterFormat("ppm", magic, Decode, DecodeConfig)
}

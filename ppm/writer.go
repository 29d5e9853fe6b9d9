package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/bodgit/tilemap/raster"
	"github.com/bodgit/tilemap/rgba"
)

type encoder struct {
	w   *bufio.Writer
	tmp [bytesPerPix]byte
}

func (e *encoder) writeHeader(width, height int) error {
	_, err := fmt.Fprintf(e.w, "%s\n%d %d\n%d\n", magic, width, height, maxVal)
	return err
}

func (e *encoder) writePixel(c rgba.Color) error {
	// Alpha is dropped
	e.tmp[0], e.tmp[1], e.tmp[2], _ = c.Unpack()
	_, err := e.w.Write(e.tmp[:])
	return err
}

func (e *encoder) encodeBuffer(b *raster.Buffer) error {
	for _, c := range b.Pix {
		if err := e.writePixel(c); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encodeImage(m image.Image) error {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if err := e.writePixel(rgba.Model.Convert(m.At(x, y)).(rgba.Color)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Encode writes the Image m to w in binary PPM format. Any alpha channel is
// discarded.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()

	e := encoder{w: bufio.NewWriter(w)}

	if err := e.writeHeader(b.Dx(), b.Dy()); err != nil {
		return err
	}

	var err error
	if pb, ok := m.(*raster.Buffer); ok {
		err = e.encodeBuffer(pb)
	} else {
		err = e.encodeImage(m)
	}
	if err != nil {
		return err
	}

	return e.w.Flush()
}

// WriteFile encodes m and writes it to the named file, creating or truncating
// it. The file is always closed; if encoding fails its contents are
// undefined.
func WriteFile(name string, m image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, m)
}

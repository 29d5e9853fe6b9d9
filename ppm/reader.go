package ppm

import (
	"bufio"
	"errors"
	"image"
	"io"
	"math"
	"strconv"

	"github.com/bodgit/tilemap/raster"
	"github.com/bodgit/tilemap/rgba"
)

var (
	errBadHeader   = errors.New("ppm: invalid header")
	errUnsupported = errors.New("ppm: unsupported maximum value")
	errNotEnough   = errors.New("ppm: not enough image data")
	errTooMuch     = errors.New("ppm: too much image data")
	errTooLarge    = errors.New("ppm: image dimensions too large")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

type decoder struct {
	r *bufio.Reader

	width, height int

	image *raster.Buffer
}

// Skip whitespace and comments, which run from '#' to the end of the line
func (d *decoder) skipSpace() error {
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case b == '#':
			if _, err := d.r.ReadString('\n'); err != nil {
				return err
			}
		case !isSpace(b):
			return d.r.UnreadByte()
		}
	}
}

func (d *decoder) readInt() (int, error) {
	if err := d.skipSpace(); err != nil {
		return 0, err
	}

	var digits []byte
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b < '0' || b > '9' {
			if !isSpace(b) {
				return 0, errBadHeader
			}
			// Leave the delimiter in place for the next token
			if err := d.r.UnreadByte(); err != nil {
				return 0, err
			}
			break
		}
		digits = append(digits, b)
	}

	if len(digits) == 0 {
		return 0, errBadHeader
	}

	return strconv.Atoi(string(digits))
}

func (d *decoder) readHeader() error {
	var m [len(magic)]byte
	if err := readFull(d.r, m[:]); err != nil {
		return err
	}
	if string(m[:]) != magic {
		return errBadHeader
	}

	var err error
	if d.width, err = d.readInt(); err != nil {
		return err
	}
	if d.height, err = d.readInt(); err != nil {
		return err
	}

	// A zero dimension is an empty image; otherwise the pixel data must be
	// addressable
	if d.width > 0 && d.height > 0 && d.width > math.MaxInt/d.height/bytesPerPix {
		return errTooLarge
	}

	mv, err := d.readInt()
	if err != nil {
		return err
	}
	if mv != maxVal {
		return errUnsupported
	}

	// Exactly one whitespace byte separates the header from the pixels
	b, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	if !isSpace(b) {
		return errBadHeader
	}

	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = bufio.NewReader(r)

	if err := d.readHeader(); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errBadHeader
		}
		if _, ok := err.(*strconv.NumError); ok {
			return errBadHeader
		}
		return err
	}

	if configOnly {
		return nil
	}

	d.image = raster.NewBuffer(d.width, d.height)

	var tmp [bytesPerPix]byte
	for i := range d.image.Pix {
		if err := readFull(d.r, tmp[:]); err != nil {
			if err != io.ErrUnexpectedEOF {
				return err
			}
			return errNotEnough
		}
		d.image.Pix[i] = rgba.Pack(tmp[0], tmp[1], tmp[2])
	}

	if n, err := d.r.Read(tmp[:1]); n != 0 || err != io.EOF {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	return nil
}

// Decode reads a binary PPM image from r and returns it as a *raster.Buffer.
// Every pixel is fully opaque.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a binary PPM image
// without decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: rgba.Model,
		Width:      d.width,
		Height:     d.height,
	}, nil
}

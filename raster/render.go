package raster

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bodgit/tilemap/rgba"
)

var (
	// ErrDimensionMismatch is matched by any DimensionError.
	ErrDimensionMismatch = errors.New("raster: grid does not tile the buffer")
	// ErrUnknownTile is matched by any SymbolError.
	ErrUnknownTile = errors.New("raster: unknown tile symbol")
)

// DimensionError reports a grid whose shape disagrees with the buffer it is
// being drawn into, or with its own column count.
type DimensionError struct {
	Row  int // -1 when the error is not about a single row
	Want int
	Got  int
	What string

	// Want is an upper bound rather than an exact value
	Limit bool
}

func (e *DimensionError) Error() string {
	switch {
	case e.Row >= 0:
		return fmt.Sprintf("raster: row %d has %d tiles, expected %d", e.Row, e.Got, e.Want)
	case e.Limit:
		return fmt.Sprintf("raster: %s is %d, must be at most %d", e.What, e.Got, e.Want)
	}
	return fmt.Sprintf("raster: %s is %d, expected %d", e.What, e.Got, e.Want)
}

// Is allows errors.Is(err, ErrDimensionMismatch).
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// SymbolError reports a tile symbol that is neither a path nor a wall.
type SymbolError struct {
	Row, Col int
	Symbol   byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("raster: unknown tile symbol %q at row %d, column %d", e.Symbol, e.Row, e.Col)
}

// Is allows errors.Is(err, ErrUnknownTile).
func (e *SymbolError) Is(target error) bool {
	return target == ErrUnknownTile
}

// Grid is a rectangular tile map with one byte per tile.
type Grid struct {
	Rows []string
	Cols int
}

// Size returns the pixel dimensions of the grid drawn with the given tile
// size. It fails if the tile size isn't positive, or if the dimensions or the
// pixel count of the buffer would overflow an int.
func (g Grid) Size(size int) (width, height int, err error) {
	switch {
	case size <= 0:
		return 0, 0, &DimensionError{Row: -1, What: "tile size", Got: size, Want: 1}
	case g.Cols < 0:
		return 0, 0, &DimensionError{Row: -1, What: "column count", Got: g.Cols, Want: 0}
	case g.Cols > 0 && size > math.MaxInt/g.Cols:
		return 0, 0, &DimensionError{Row: -1, What: "tile size", Got: size, Want: math.MaxInt / g.Cols, Limit: true}
	case len(g.Rows) > 0 && size > math.MaxInt/len(g.Rows):
		return 0, 0, &DimensionError{Row: -1, What: "tile size", Got: size, Want: math.MaxInt / len(g.Rows), Limit: true}
	}

	width, height = g.Cols*size, len(g.Rows)*size
	if width > 0 && height > math.MaxInt/width {
		return 0, 0, &DimensionError{Row: -1, What: "grid height", Got: height, Want: math.MaxInt / width, Limit: true}
	}

	return width, height, nil
}

// Validate checks that the grid drawn with the given tile size exactly covers
// a width by height buffer.
func (g Grid) Validate(size, width, height int) error {
	w, h, err := g.Size(size)
	if err != nil {
		return err
	}
	if w != width {
		return &DimensionError{Row: -1, What: "grid width", Got: w, Want: width}
	}
	if h != height {
		return &DimensionError{Row: -1, What: "grid height", Got: h, Want: height}
	}
	for i, row := range g.Rows {
		if len(row) != g.Cols {
			return &DimensionError{Row: i, Got: len(row), Want: g.Cols}
		}
	}
	return nil
}

// Palette maps tile symbols to colors.
type Palette struct {
	Background rgba.Color
	Path       rgba.Color
	Wall       rgba.Color

	// Each byte is one symbol
	PathSymbols string
	WallSymbols string
}

// Lookup returns the color for symbol.
func (p Palette) Lookup(symbol byte) (rgba.Color, bool) {
	switch {
	case strings.IndexByte(p.PathSymbols, symbol) >= 0:
		return p.Path, true
	case strings.IndexByte(p.WallSymbols, symbol) >= 0:
		return p.Wall, true
	default:
		return 0, false
	}
}

// RenderInto draws g into b, one size by size square per tile. Nothing is
// written to b unless the grid exactly covers it and every symbol is known
// to p.
func RenderInto(b *Buffer, g Grid, size int, p Palette) error {
	if err := g.Validate(size, b.Width, b.Height); err != nil {
		return err
	}
	if n := b.Width * b.Height; len(b.Pix) != n {
		return &DimensionError{Row: -1, What: "pixel count", Got: len(b.Pix), Want: n}
	}

	colors := make([]rgba.Color, 0, len(g.Rows)*g.Cols)
	for i, row := range g.Rows {
		for j := 0; j < len(row); j++ {
			c, ok := p.Lookup(row[j])
			if !ok {
				return &SymbolError{Row: i, Col: j, Symbol: row[j]}
			}
			colors = append(colors, c)
		}
	}

	b.Fill(p.Background)

	var cur Cursor
	for _, c := range colors {
		cur = b.DrawSquare(cur, size, c)
	}

	return nil
}

// Render allocates a buffer sized to fit g and draws it.
func Render(g Grid, size int, p Palette) (*Buffer, error) {
	width, height, err := g.Size(size)
	if err != nil {
		return nil, err
	}
	b := NewBuffer(width, height)
	if err := RenderInto(b, g, size, p); err != nil {
		return nil, err
	}
	return b, nil
}

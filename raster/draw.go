package raster

import "github.com/bodgit/tilemap/rgba"

// Cursor is the pixel position of the top-left corner of the next square.
type Cursor struct {
	X, Y int
}

// DrawSquare paints the size by size square whose top-left corner is at cur
// with c and returns the cursor for the following square. The cursor moves
// right by size and, once it reaches the right-hand edge, wraps back to the
// left and moves down by size for every full buffer width consumed.
//
// The square must lie wholly inside the buffer, otherwise DrawSquare panics.
func (b *Buffer) DrawSquare(cur Cursor, size int, c rgba.Color) Cursor {
	rowEnd := cur.X + size
	columnEnd := cur.Y + size

	if size <= 0 || cur.X < 0 || cur.Y < 0 || rowEnd > b.Width || columnEnd > b.Height {
		panic("raster: square out of bounds")
	}

	for y := cur.Y; y < columnEnd; y++ {
		row := b.Pix[b.PixOffset(cur.X, y):b.PixOffset(rowEnd, y)]
		for x := range row {
			row[x] = c
		}
	}

	return Cursor{
		X: rowEnd % b.Width,
		Y: cur.Y + size*(rowEnd/b.Width),
	}
}

package tilemap

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/bodgit/tilemap/raster"
	"github.com/bodgit/tilemap/rgba"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPink  = rgba.Pack(255, 192, 203)
	testBlack = rgba.Pack(0, 0, 0)
	testWhite = rgba.Pack(255, 255, 255)
)

func TestDefaultMap(t *testing.T) {
	m := DefaultMap()

	b, err := m.Render()
	require.NoError(t, err)
	assert.Equal(t, 512, b.Width)
	assert.Equal(t, 512, b.Height)

	tables := []struct {
		x, y int
		want rgba.Color
	}{
		{0, 0, testBlack},     // '#' border
		{32, 32, testPink},    // ' ' floor
		{64, 64, testBlack},   // '=' wall
		{511, 511, testBlack}, // '#' border
		{480, 448, testBlack}, // right-hand border of row 14
		{448, 448, testPink},  // floor of row 14
	}

	for _, table := range tables {
		assert.Equal(t, table.want, b.ColorAt(table.x, table.y), "pixel (%d, %d)", table.x, table.y)
	}
}

func TestDefaultMapIsCopied(t *testing.T) {
	m := DefaultMap()
	m.Rows[0] = "x"
	assert.Equal(t, "################", DefaultMap().Rows[0])
}

func TestLoadMap(t *testing.T) {
	m, err := LoadMap(filepath.Join("testdata", "maps", "small.yaml"))
	require.NoError(t, err)

	assert.Equal(t, &Map{
		Name:     "small",
		TileSize: 2,
		Cols:     2,
		Symbols:  Symbols{Path: ".", Wall: "#"},
		Colors:   Colors{Background: "#ff0000", Path: "#ffffff", Wall: "#000000"},
		Rows:     []string{"#.", ".#"},
	}, m)

	b, err := m.Render()
	require.NoError(t, err)
	assert.Equal(t, []rgba.Color{
		testBlack, testBlack, testWhite, testWhite,
		testBlack, testBlack, testWhite, testWhite,
		testWhite, testWhite, testBlack, testBlack,
		testWhite, testWhite, testBlack, testBlack,
	}, b.Pix)
}

func TestLoadMapDefaults(t *testing.T) {
	m, err := LoadMap(filepath.Join("testdata", "maps", "nested", "corridor.yml"))
	require.NoError(t, err)

	assert.Equal(t, "corridor", m.Name)
	assert.Equal(t, 5, m.Cols)
	assert.Equal(t, DefaultMap().Colors, m.Colors)

	b, err := m.Render()
	require.NoError(t, err)
	assert.Equal(t, 20, b.Width)
	assert.Equal(t, 12, b.Height)
	assert.Equal(t, testPink, b.ColorAt(0, 4))
	assert.Equal(t, testBlack, b.ColorAt(4, 8))
}

func TestLoadMapErrors(t *testing.T) {
	_, err := LoadMap(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseMap([]byte("rows: {"))
	assert.Error(t, err)
}

func TestRenderErrors(t *testing.T) {
	tables := []struct {
		file string
		err  error
	}{
		{"ragged.yaml", raster.ErrDimensionMismatch},
		{"symbol.yaml", raster.ErrUnknownTile},
		{"overflow.yaml", raster.ErrDimensionMismatch},
	}

	for _, table := range tables {
		t.Run(table.file, func(t *testing.T) {
			m, err := LoadMap(filepath.Join("testdata", "bad", table.file))
			require.NoError(t, err)

			_, err = m.Render()
			assert.True(t, errors.Is(err, table.err), "got %v", err)
		})
	}

	m, err := LoadMap(filepath.Join("testdata", "bad", "color.yaml"))
	require.NoError(t, err)
	_, err = m.Render()
	assert.Error(t, err)
}

func TestMapBytesRoundTrip(t *testing.T) {
	m := DefaultMap()

	b, err := m.Bytes()
	require.NoError(t, err)

	got, err := ParseMap(b)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

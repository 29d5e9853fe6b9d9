package tilemap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/tilemap/raster"
	"github.com/bodgit/tilemap/rgba"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Symbols lists which tile symbols are paths and which are walls. Each byte
// of a string is one symbol.
type Symbols struct {
	Path string `yaml:"path"`
	Wall string `yaml:"wall"`
}

// Colors holds "#rrggbb" colors for each kind of tile.
type Colors struct {
	Background string `yaml:"background"`
	Path       string `yaml:"path"`
	Wall       string `yaml:"wall"`
}

// Map is a named tile map along with everything needed to render it.
type Map struct {
	Name     string   `yaml:"name"`
	TileSize int      `yaml:"tile_size"`
	Cols     int      `yaml:"cols,omitempty"`
	Symbols  Symbols  `yaml:"symbols"`
	Colors   Colors   `yaml:"colors"`
	Rows     []string `yaml:"rows"`
}

const (
	defaultName     = "default"
	defaultTileSize = 32
	pink            = "#ffc0cb"
	black           = "#000000"
)

var defaultRows = []string{
	"################",
	"#      #       #",
	"#===#  #       #",
	"#   #  #       #",
	"#   #  #       #",
	"#   #  #=======#",
	"#   #          #",
	"#   #=======#  #",
	"#           #  #",
	"#           #  #",
	"#           #  #",
	"#           #  #",
	"#           #  #",
	"#           #  #",
	"#           #  #",
	"################",
}

// DefaultMap returns the built-in 16 by 16 maze, which renders to a 512 by
// 512 image of black walls on a pink floor.
func DefaultMap() *Map {
	return &Map{
		Name:     defaultName,
		TileSize: defaultTileSize,
		Cols:     len(defaultRows[0]),
		Symbols: Symbols{
			Path: " ",
			Wall: "#=",
		},
		Colors: Colors{
			Background: pink,
			Path:       pink,
			Wall:       black,
		},
		Rows: append([]string(nil), defaultRows...),
	}
}

func (m *Map) setDefaults() {
	d := DefaultMap()
	if m.TileSize == 0 {
		m.TileSize = d.TileSize
	}
	if m.Cols == 0 && len(m.Rows) > 0 {
		m.Cols = len(m.Rows[0])
	}
	if m.Symbols.Path == "" && m.Symbols.Wall == "" {
		m.Symbols = d.Symbols
	}
	if m.Colors.Path == "" {
		m.Colors.Path = d.Colors.Path
	}
	if m.Colors.Wall == "" {
		m.Colors.Wall = d.Colors.Wall
	}
	if m.Colors.Background == "" {
		m.Colors.Background = m.Colors.Path
	}
}

// ParseMap parses a YAML map definition. Missing settings are taken from
// the default map, the column count defaults to the length of the first row
// and the background defaults to the path color.
func ParseMap(b []byte) (*Map, error) {
	m := new(Map)
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	m.setDefaults()
	return m, nil
}

func nameFromFile(file string) string {
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
}

// LoadMap reads and parses the YAML map definition in file. If the map has
// no name, the file name is used.
func LoadMap(file string) (*Map, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	m, err := ParseMap(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if m.Name == "" {
		m.Name = nameFromFile(file)
	}

	return m, nil
}

// Bytes returns the YAML encoding of the map.
func (m *Map) Bytes() ([]byte, error) {
	return yaml.Marshal(m)
}

// Grid returns the tile grid of the map.
func (m *Map) Grid() raster.Grid {
	return raster.Grid{
		Rows: m.Rows,
		Cols: m.Cols,
	}
}

func parseColor(s string) (rgba.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return rgba.Pack(c.RGB255()), nil
}

// Palette returns the rasterizer palette of the map.
func (m *Map) Palette() (raster.Palette, error) {
	p := raster.Palette{
		PathSymbols: m.Symbols.Path,
		WallSymbols: m.Symbols.Wall,
	}

	var err error
	if p.Background, err = parseColor(m.Colors.Background); err != nil {
		return raster.Palette{}, err
	}
	if p.Path, err = parseColor(m.Colors.Path); err != nil {
		return raster.Palette{}, err
	}
	if p.Wall, err = parseColor(m.Colors.Wall); err != nil {
		return raster.Palette{}, err
	}

	return p, nil
}

// Render draws the map into a new buffer.
func (m *Map) Render() (*raster.Buffer, error) {
	p, err := m.Palette()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Name, err)
	}

	b, err := raster.Render(m.Grid(), m.TileSize, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Name, err)
	}

	return b, nil
}

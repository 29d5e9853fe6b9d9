/*
Package tilemap is a library for rendering character tile maps into binary
PPM images.

Maps are either the built-in default maze or YAML files, and can be kept in a
sqlite catalog that caches their rendered images.
*/
package tilemap

import (
	"errors"
	"fmt"
	"os"

	"github.com/bodgit/tilemap/ppm"
	"github.com/charmbracelet/log"
)

var errNoDB = errors.New("tilemap: no map database")

// TileMap ties together a map catalog and a logger.
type TileMap struct {
	db     *MapDB
	logger *log.Logger
}

// New returns a TileMap using db, which may be nil if only file based
// rendering is needed.
func New(db *MapDB, logger *log.Logger) *TileMap {
	return &TileMap{
		db:     db,
		logger: logger,
	}
}

// RenderFile renders the YAML map in file, or the default map if file is
// empty, and writes it to out.
func (t *TileMap) RenderFile(file, out string) error {
	m := DefaultMap()
	if file != "" {
		var err error
		if m, err = LoadMap(file); err != nil {
			return err
		}
	}

	b, err := m.Render()
	if err != nil {
		return err
	}

	if err := ppm.WriteFile(out, b); err != nil {
		return err
	}

	t.logger.Info("rendered", "map", m.Name, "width", b.Width, "height", b.Height, "file", out)

	return nil
}

// Import adds the YAML map in each file to the catalog.
func (t *TileMap) Import(files ...string) error {
	if t.db == nil {
		return errNoDB
	}

	for _, file := range files {
		m, err := LoadMap(file)
		if err != nil {
			return err
		}

		id, err := t.db.AddMap(m)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		t.logger.Info("imported", "map", m.Name, "id", id, "file", file)
	}

	return nil
}

// Export writes the named catalog map to out.
func (t *TileMap) Export(name, out string) error {
	if t.db == nil {
		return errNoDB
	}

	b, err := t.db.RenderMap(name)
	if err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("tilemap: no map named %q", name)
	}

	if err := os.WriteFile(out, b, 0644); err != nil {
		return err
	}

	t.logger.Info("exported", "map", name, "file", out)

	return nil
}

// List returns the names of the maps in the catalog.
func (t *TileMap) List() ([]string, error) {
	if t.db == nil {
		return nil, errNoDB
	}
	return t.db.MapNames()
}

package tilemap

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"fmt"

	"github.com/bodgit/tilemap/ppm"
	_ "github.com/mattn/go-sqlite3"
)

// MapDB is a catalog of named maps along with a cache of their rendered
// images. Renders are keyed by the SHA-1 of the map definition so editing a
// map invalidates its cached image.
type MapDB struct {
	db *sql.DB
}

// NewMapDB opens, creating if necessary, the sqlite database in file.
func NewMapDB(file string) (*MapDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS map (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, definition BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS render (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, image BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &MapDB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *MapDB) Close() error {
	return db.db.Close()
}

func checksum(b []byte) string {
	return fmt.Sprintf("%X", sha1.Sum(b))
}

// AddMap stores m under its name, replacing any existing map with the same
// name, and returns its row ID. The map must render without error.
func (db *MapDB) AddMap(m *Map) (int64, error) {
	if _, err := m.Render(); err != nil {
		return 0, err
	}

	b, err := m.Bytes()
	if err != nil {
		return 0, err
	}
	sha := checksum(b)

	var id int64
	switch err := db.db.QueryRow("SELECT id FROM map WHERE name = ?", m.Name).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO map (name, sha1, definition) VALUES (?, ?, ?)", m.Name, sha, b)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		if _, err := db.db.Exec("UPDATE map SET sha1 = ?, definition = ? WHERE id = ?", sha, b, id); err != nil {
			return 0, err
		}
		return id, nil
	default:
		return 0, err
	}
}

// FindMapByName returns the named map, or nil if there is no such map.
func (db *MapDB) FindMapByName(name string) (*Map, error) {
	var definition []byte
	switch err := db.db.QueryRow("SELECT definition FROM map WHERE name = ?", name).Scan(&definition); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return ParseMap(definition)
	default:
		return nil, err
	}
}

// MapNames returns the names of every map in the catalog in sorted order.
func (db *MapDB) MapNames() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM map ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// RenderMap returns the named map as a binary PPM image, or nil if there is
// no such map. The image is rendered at most once per map definition.
func (db *MapDB) RenderMap(name string) ([]byte, error) {
	var sha string
	var definition []byte
	switch err := db.db.QueryRow("SELECT sha1, definition FROM map WHERE name = ?", name).Scan(&sha, &definition); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
	default:
		return nil, err
	}

	var image []byte
	switch err := db.db.QueryRow("SELECT image FROM render WHERE sha1 = ?", sha).Scan(&image); err {
	case sql.ErrNoRows:
		m, err := ParseMap(definition)
		if err != nil {
			return nil, err
		}
		buf, err := m.Render()
		if err != nil {
			return nil, err
		}
		b := new(bytes.Buffer)
		if err := ppm.Encode(b, buf); err != nil {
			return nil, err
		}
		if _, err := db.db.Exec("INSERT OR REPLACE INTO render (sha1, image) VALUES (?, ?)", sha, b.Bytes()); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	case nil:
		return image, nil
	default:
		return nil, err
	}
}

func (db *MapDB) renderCount() (int, error) {
	var n int
	err := db.db.QueryRow("SELECT COUNT(*) FROM render").Scan(&n)
	return n, err
}

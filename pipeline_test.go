package tilemap

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/tilemap/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyTree copies the regular files under src into dst
func copyTree(t *testing.T, src, dst string) {
	t.Helper()

	require.NoError(t, filepath.Walk(src, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, file)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return os.MkdirAll(filepath.Join(dst, rel), 0755)
		}
		b, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dst, rel), b, 0644)
	}))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	copyTree(t, filepath.Join("testdata", "maps"), dir)

	require.NoError(t, newTestTileMap(t, nil).Scan(dir))

	assert.Equal(t, image.Rect(0, 0, 4, 4), decodeFile(t, filepath.Join(dir, "small.ppm")))
	assert.Equal(t, image.Rect(0, 0, 20, 12), decodeFile(t, filepath.Join(dir, "nested", "corridor.ppm")))

	_, err := os.Stat(filepath.Join(dir, ".hidden", "broken.ppm"))
	assert.True(t, os.IsNotExist(err))
}

func TestScanHiddenBase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".maps")
	copyTree(t, filepath.Join("testdata", "maps"), dir)

	require.NoError(t, newTestTileMap(t, nil).Scan(dir))

	assert.Equal(t, image.Rect(0, 0, 4, 4), decodeFile(t, filepath.Join(dir, "small.ppm")))

	_, err := os.Stat(filepath.Join(dir, ".hidden", "broken.ppm"))
	assert.True(t, os.IsNotExist(err))
}

func TestScanError(t *testing.T) {
	dir := t.TempDir()
	copyTree(t, filepath.Join("testdata", "bad"), dir)

	assert.Error(t, newTestTileMap(t, nil).Scan(dir))
}

func TestScanOversizedMap(t *testing.T) {
	dir := t.TempDir()

	b, err := os.ReadFile(filepath.Join("testdata", "bad", "overflow.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "overflow.yaml"), b, 0644))

	err = newTestTileMap(t, nil).Scan(dir)
	assert.True(t, errors.Is(err, raster.ErrDimensionMismatch), "got %v", err)

	_, err = os.Stat(filepath.Join(dir, "overflow.ppm"))
	assert.True(t, os.IsNotExist(err))
}

func TestScanEmpty(t *testing.T) {
	assert.NoError(t, newTestTileMap(t, nil).Scan(t.TempDir()))
}

func TestOutputFile(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b.ppm"), outputFile(filepath.Join("a", "b.yaml")))
	assert.True(t, isMapFile("x.YML"))
	assert.False(t, isMapFile("x.ppm"))
}

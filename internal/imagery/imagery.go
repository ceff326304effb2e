// Package imagery orchestrates GDAL operations into the toolkit's raster
// workflows.
package imagery

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"satkit/internal/gdal"
)

// workDir creates a scratch directory next to outPath, keyed so repeated
// runs of the same operation land in the same place.
func workDir(outPath, key string) (string, error) {
	dir := filepath.Join(filepath.Dir(outPath), ".satkit_"+workHash(key))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	return dir, nil
}

func workHash(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}

func readGrid(path string) (gdal.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return gdal.Grid{}, fmt.Errorf("open ascii grid: %w", err)
	}
	defer f.Close()

	grid, err := gdal.ParseAAIGrid(f)
	if err != nil {
		return gdal.Grid{}, fmt.Errorf("parse ascii grid: %w", err)
	}

	return grid, nil
}

func writeGrid(path string, grid gdal.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ascii grid: %w", err)
	}

	if err := gdal.WriteAAIGrid(f, grid); err != nil {
		f.Close()
		return fmt.Errorf("write ascii grid: %w", err)
	}

	return f.Close()
}

package imagery

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"satkit/internal/gdal"
	"satkit/internal/geo"
	"satkit/internal/render"
)

// Quicklook renders one band of a raster as a braille microgrid for the
// terminal. Values at or above the threshold light up; a threshold below
// zero means pick the band's median automatically. Bands wider than 255
// are stretched with lower and upper before thresholding.
func Quicklook(ctx context.Context, path string, band, cols, threshold int, lower, upper float64) (string, error) {
	info, err := gdal.Info(ctx, path)
	if err != nil {
		return "", fmt.Errorf("get raster info: %w", err)
	}
	if band < 1 || band > len(info.Bands) {
		return "", fmt.Errorf("band %d out of range 1-%d", band, len(info.Bands))
	}

	dir, err := workDir(path, "show|"+path)
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	gridPath := filepath.Join(dir, "band.asc")
	if err := gdal.ExtractBandGrid(ctx, path, band, gridPath); err != nil {
		return "", fmt.Errorf("extract band %d: %w", band, err)
	}
	grid, err := readGrid(gridPath)
	if err != nil {
		return "", err
	}

	stats := geo.Stats(grid.Data, grid.NoData)
	scaled := geo.RescaleBand(grid.Data, lower, upper)

	level := uint8(128)
	if threshold >= 0 {
		level = uint8(threshold)
	} else {
		values := make([]float64, len(scaled))
		for i, v := range scaled {
			values[i] = float64(v)
		}
		if median, err := geo.Percentile(values, math.NaN(), 50); err == nil {
			level = uint8(median)
		}
	}

	art := render.Microgrid(scaled, grid.Width, grid.Height, cols, level)
	caption := fmt.Sprintf("%s · band %d · %dx%d px · min %.0f · mean %.1f · max %.0f",
		filepath.Base(path), band, grid.Width, grid.Height, stats.Min, stats.Mean, stats.Max)

	return render.Frame(art, caption), nil
}

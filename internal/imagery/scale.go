package imagery

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"satkit/internal/gdal"
	"satkit/internal/geo"
)

// ScaleReport summarizes a dynamic-range scaling run.
type ScaleReport struct {
	Bands    int
	Rescaled []bool
	Output   string
}

// Scale maps every band of src into the 8-bit range and writes the result
// to dst as a byte raster. Bands whose values already fit in 0-255 pass
// through untouched; the rest are stretched linearly between lower and
// upper.
func Scale(ctx context.Context, src, dst string, lower, upper float64) (*ScaleReport, error) {
	info, err := gdal.Info(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("get raster info: %w", err)
	}
	if len(info.Bands) == 0 {
		return nil, fmt.Errorf("raster %s has no bands", src)
	}

	dir, err := workDir(dst, "scale|"+src)
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	report := &ScaleReport{Bands: len(info.Bands)}
	scaledPaths := make([]string, 0, len(info.Bands))
	for _, band := range info.Bands {
		gridPath := filepath.Join(dir, "band_"+strconv.Itoa(band.Index)+".asc")
		if err := gdal.ExtractBandGrid(ctx, src, band.Index, gridPath); err != nil {
			return nil, fmt.Errorf("extract band %d: %w", band.Index, err)
		}

		grid, err := readGrid(gridPath)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", band.Index, err)
		}

		rescaled := geo.NeedsRescale(grid.Data)
		slog.Debug("scaling band", "band", band.Index, "rescaled", rescaled)
		report.Rescaled = append(report.Rescaled, rescaled)

		scaled := geo.RescaleBand(grid.Data, lower, upper)
		out := grid
		out.Data = make([]float64, len(scaled))
		for i, v := range scaled {
			out.Data[i] = float64(v)
		}

		scaledPath := filepath.Join(dir, "scaled_"+strconv.Itoa(band.Index)+".asc")
		if err := writeGrid(scaledPath, out); err != nil {
			return nil, fmt.Errorf("band %d: %w", band.Index, err)
		}
		scaledPaths = append(scaledPaths, scaledPath)
	}

	vrtPath := filepath.Join(dir, "stack.vrt")
	if err := gdal.BuildVRT(ctx, vrtPath, scaledPaths, true); err != nil {
		return nil, fmt.Errorf("stack bands: %w", err)
	}
	if err := gdal.TranslateByte(ctx, vrtPath, dst, info.CRSCode); err != nil {
		return nil, fmt.Errorf("write byte raster: %w", err)
	}

	report.Output = dst
	return report, nil
}

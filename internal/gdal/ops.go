package gdal

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ExtractBandGrid converts one band of a raster to an Arc/Info ASCII grid.
func ExtractBandGrid(ctx context.Context, src string, band int, dst string) error {
	if err := removeIfExists(dst); err != nil {
		return err
	}

	_, _, err := Run(ctx, "gdal_translate", "-b", strconv.Itoa(band), "-of", "AAIGrid", src, dst)
	if err != nil {
		return fmt.Errorf("gdal_translate: %w", err)
	}

	return nil
}

// BuildVRT assembles the sources into a virtual raster. With separate set
// each source becomes its own band.
func BuildVRT(ctx context.Context, dst string, sources []string, separate bool) error {
	if err := removeIfExists(dst); err != nil {
		return err
	}

	args := make([]string, 0, len(sources)+2)
	if separate {
		args = append(args, "-separate")
	}
	args = append(args, dst)
	args = append(args, sources...)

	_, _, err := Run(ctx, "gdalbuildvrt", args...)
	if err != nil {
		return fmt.Errorf("gdalbuildvrt: %w", err)
	}

	return nil
}

// TranslateByte converts a raster to 8-bit samples, stamping the output
// CRS when a code is given.
func TranslateByte(ctx context.Context, src, dst, crsCode string) error {
	if err := removeIfExists(dst); err != nil {
		return err
	}

	args := []string{"-ot", "Byte"}
	if crsCode != "" {
		args = append(args, "-a_srs", "EPSG:"+crsCode)
	}
	args = append(args, src, dst)

	_, _, err := Run(ctx, "gdal_translate", args...)
	if err != nil {
		return fmt.Errorf("gdal_translate: %w", err)
	}

	return nil
}

// Compress rewrites a raster with the given compression method.
func Compress(ctx context.Context, src, dst, method string) error {
	if err := removeIfExists(dst); err != nil {
		return err
	}

	_, _, err := Run(ctx, "gdal_translate", "-co", "COMPRESS="+method, src, dst)
	if err != nil {
		return fmt.Errorf("gdal_translate: %w", err)
	}

	return nil
}

// CropExtent clips a raster to a projected extent given as
// [minx, miny, maxx, maxy].
func CropExtent(ctx context.Context, src, dst string, extent [4]float64) error {
	args := []string{"-te"}
	for _, v := range extent {
		args = append(args, strconv.FormatFloat(v, 'f', -1, 64))
	}
	args = append(args, "-overwrite", src, dst)

	_, _, err := Run(ctx, "gdalwarp", args...)
	if err != nil {
		return fmt.Errorf("gdalwarp: %w", err)
	}

	return nil
}

// Reproject warps a raster into the target EPSG coordinate system.
func Reproject(ctx context.Context, src, dst, crsCode string) error {
	_, _, err := Run(ctx, "gdalwarp", "-t_srs", "EPSG:"+crsCode, "-overwrite", src, dst)
	if err != nil {
		return fmt.Errorf("gdalwarp: %w", err)
	}

	return nil
}

// SplitCRSCode strips an authority prefix such as "EPSG:" from a CRS
// reference, returning the bare code.
func SplitCRSCode(ref string) string {
	parts := strings.Split(ref, ":")
	return parts[len(parts)-1]
}

func removeIfExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove output: %w", err)
		}
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("stat output: %w", err)
}

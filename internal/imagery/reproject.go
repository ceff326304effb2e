package imagery

import (
	"context"
	"fmt"

	"satkit/internal/gdal"
)

// Reproject warps src into the CRS named by the bare EPSG code and writes
// the result to dst.
func Reproject(ctx context.Context, src, dst, crsCode string) error {
	if err := gdal.Reproject(ctx, src, dst, crsCode); err != nil {
		return fmt.Errorf("reproject to EPSG:%s: %w", crsCode, err)
	}
	return nil
}

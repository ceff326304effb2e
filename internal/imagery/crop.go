package imagery

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"

	"satkit/internal/gdal"
	"satkit/internal/postgis"
)

// Crop cuts src down to the extent of a PostGIS box literal and writes the
// result to dst. The box must be expressed in the raster's own CRS. When
// aoiOut is non-empty the box is also written there as GeoJSON.
func Crop(ctx context.Context, src, dst, aoiText, aoiCRS, aoiOut string) (orb.Bound, error) {
	bound, err := postgis.ParseBox(aoiText)
	if err != nil {
		return orb.Bound{}, fmt.Errorf("parse bounding box: %w", err)
	}

	info, err := gdal.Info(ctx, src)
	if err != nil {
		return orb.Bound{}, fmt.Errorf("get raster info: %w", err)
	}
	if info.CRSCode != aoiCRS {
		return orb.Bound{}, fmt.Errorf("imagery and bounding box crs mismatch (%s, %s)", info.CRSCode, aoiCRS)
	}

	extent := [4]float64{bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1]}
	if err := gdal.CropExtent(ctx, src, dst, extent); err != nil {
		return orb.Bound{}, fmt.Errorf("crop: %w", err)
	}

	if aoiOut != "" {
		fc := postgis.BoundToFeatureCollection(bound, aoiCRS)
		if err := postgis.WriteFeatureCollection(aoiOut, fc); err != nil {
			return orb.Bound{}, fmt.Errorf("write aoi: %w", err)
		}
	}

	return bound, nil
}

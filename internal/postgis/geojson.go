package postgis

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// BoundToFeatureCollection wraps a bound's polygon in a single-feature
// collection carrying a named CRS member for the given EPSG code.
func BoundToFeatureCollection(b orb.Bound, crsCode string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(b.ToPolygon()))
	fc.ExtraMembers = geojson.Properties{"crs": namedCRS(crsCode)}
	return fc
}

// PointToFeatureCollection wraps a point in a single-feature collection
// carrying a named CRS member for the given EPSG code.
func PointToFeatureCollection(p orb.Point, crsCode string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(p))
	fc.ExtraMembers = geojson.Properties{"crs": namedCRS(crsCode)}
	return fc
}

// WriteFeatureCollection marshals the collection and writes it to path.
func WriteFeatureCollection(path string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding feature collection: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// namedCRS builds the legacy GeoJSON crs member for an EPSG code.
func namedCRS(code string) map[string]interface{} {
	return map[string]interface{}{
		"type": "name",
		"properties": map[string]interface{}{
			"name": "urn:ogc:def:crs:EPSG::" + code,
		},
	}
}

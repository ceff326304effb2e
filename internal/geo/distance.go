package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DistanceMeters returns the great-circle distance in meters between two
// WGS84 degree points, using the haversine formula on a 6378137 m sphere.
// Inputs are not validated; NaN in means NaN out.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return orbgeo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
}

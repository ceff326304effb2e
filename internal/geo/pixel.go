package geo

import (
	"fmt"
	"math"
)

// PixelSizeMeters estimates the footprint of one pixel in meters. Degree
// deltas are only meaningful for EPSG:4326, so any other CRS returns nil.
// The top and bottom edges span different meter lengths away from the
// equator; both are measured and averaged before dividing by the pixel
// counts. Results are rounded to 2 decimals.
func PixelSizeMeters(g RasterGeometry) (*PixelSize, error) {
	if g.CRSCode != "4326" {
		return nil, nil
	}
	if g.Width == 0 || g.Height == 0 {
		return nil, fmt.Errorf("pixel size of %dx%d raster: %w", g.Width, g.Height, ErrZeroDimension)
	}

	b := g.Bounds
	topDist := DistanceMeters(b.Top, b.Left, b.Top, b.Right)
	bottomDist := DistanceMeters(b.Bottom, b.Left, b.Bottom, b.Right)
	leftDist := DistanceMeters(b.Top, b.Left, b.Bottom, b.Left)
	rightDist := DistanceMeters(b.Top, b.Right, b.Bottom, b.Right)

	aveWidth := (topDist + bottomDist) / 2.0
	aveHeight := (leftDist + rightDist) / 2.0

	return &PixelSize{
		X: roundTo2(aveWidth / float64(g.Width)),
		Y: roundTo2(aveHeight / float64(g.Height)),
	}, nil
}

func roundTo2(v float64) float64 {
	return math.RoundToEven(v*100.0) / 100.0
}

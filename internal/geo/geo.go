// Package geo is the numeric core for raster geometry: great-circle
// distances, pixel footprints, pixel/coordinate mapping and dynamic-range
// rescaling. All operations are pure and allocation-per-call; raster file
// I/O lives elsewhere.
package geo

import (
	"errors"
	"math"
)

var (
	// ErrOutOfBounds reports a coordinate outside the raster extent.
	ErrOutOfBounds = errors.New("geo: coordinate outside raster bounds")
	// ErrZeroDimension reports a degenerate zero-sized raster dimension.
	ErrZeroDimension = errors.New("geo: zero-sized raster dimension")
)

// Bounds is a raster extent in CRS units.
type Bounds struct {
	Left   float64
	Bottom float64
	Right  float64
	Top    float64
}

// ProjectedWidth returns the horizontal extent in CRS units.
func (b Bounds) ProjectedWidth() float64 {
	return math.Abs(b.Right - b.Left)
}

// ProjectedHeight returns the vertical extent in CRS units.
func (b Bounds) ProjectedHeight() float64 {
	return math.Abs(b.Top - b.Bottom)
}

// RasterGeometry describes one raster: its extent, pixel counts and the
// bare EPSG code of its CRS (e.g. "4326"). Constructed per raster by the
// caller, never persisted here.
type RasterGeometry struct {
	Bounds  Bounds
	Width   int
	Height  int
	CRSCode string
}

// PixelSize is an approximate pixel footprint in meters.
type PixelSize struct {
	X float64
	Y float64
}

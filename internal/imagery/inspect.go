package imagery

import (
	"context"
	"fmt"

	"satkit/internal/gdal"
	"satkit/internal/geo"
)

// Report collects everything the info command prints about a raster.
type Report struct {
	Path            string
	Driver          string
	Bounds          geo.Bounds
	ProjectedWidth  float64
	ProjectedHeight float64
	Rows            int
	Columns         int
	Bands           []gdal.BandInfo
	CRSCode         string
	PixelSize       *geo.PixelSize
	SquarePixels    bool
	TopLeft         [2]float64
	BottomRight     [2]float64
	WGS84BBox       *[4]float64
}

// Inspect gathers raster metadata and derived geometry for display.
func Inspect(ctx context.Context, path string) (*Report, error) {
	info, err := gdal.Info(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("get raster info: %w", err)
	}

	g := info.Geometry()
	report := &Report{
		Path:            path,
		Driver:          info.Driver,
		Bounds:          g.Bounds,
		ProjectedWidth:  g.Bounds.ProjectedWidth(),
		ProjectedHeight: g.Bounds.ProjectedHeight(),
		Rows:            info.Height,
		Columns:         info.Width,
		Bands:           info.Bands,
		CRSCode:         info.CRSCode,
		WGS84BBox:       info.WGS84BBox,
	}

	ps, err := geo.PixelSizeMeters(g)
	if err != nil {
		return nil, fmt.Errorf("pixel size: %w", err)
	}
	report.PixelSize = ps
	if ps != nil {
		report.SquarePixels = ps.X == ps.Y
	}

	tr := info.Transform()
	lng, lat := geo.PixelToLngLat(tr, 0, 0)
	report.TopLeft = [2]float64{lng, lat}
	lng, lat = geo.PixelToLngLat(tr, info.Height-1, info.Width-1)
	report.BottomRight = [2]float64{lng, lat}

	return report, nil
}

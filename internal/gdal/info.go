package gdal

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"satkit/internal/geo"
)

// RasterInfo describes raster metadata extracted from gdalinfo.
type RasterInfo struct {
	Path         string
	Driver       string
	Width        int
	Height       int
	GeoTransform [6]float64
	Bands        []BandInfo
	CRSCode      string
	WGS84BBox    *[4]float64
}

// BandInfo describes a single raster band.
type BandInfo struct {
	Index  int
	Type   string
	NoData *float64
}

// Info runs gdalinfo and extracts raster size, geotransform, band layout
// and coordinate system.
func Info(ctx context.Context, path string) (RasterInfo, error) {
	stdout, _, err := Run(ctx, "gdalinfo", "-json", path)
	if err != nil {
		return RasterInfo{}, fmt.Errorf("gdalinfo: %w", err)
	}

	var payload struct {
		DriverShortName string    `json:"driverShortName"`
		Size            []int     `json:"size"`
		GeoTransform    []float64 `json:"geoTransform"`
		Bands           []struct {
			Band        int      `json:"band"`
			Type        string   `json:"type"`
			NoDataValue *float64 `json:"noDataValue"`
		} `json:"bands"`
		CoordinateSystem *struct {
			WKT string `json:"wkt"`
		} `json:"coordinateSystem"`
		WGS84Extent *struct {
			Type        string        `json:"type"`
			Coordinates [][][]float64 `json:"coordinates"`
		} `json:"wgs84Extent"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		return RasterInfo{}, fmt.Errorf("parse gdalinfo json: %w", err)
	}

	if len(payload.Size) != 2 {
		return RasterInfo{}, fmt.Errorf("unexpected gdalinfo size length: %d", len(payload.Size))
	}
	if len(payload.GeoTransform) != 6 {
		return RasterInfo{}, fmt.Errorf("unexpected gdalinfo geotransform length: %d", len(payload.GeoTransform))
	}

	info := RasterInfo{
		Path:   path,
		Driver: payload.DriverShortName,
		Width:  payload.Size[0],
		Height: payload.Size[1],
	}
	for i := 0; i < 6; i++ {
		info.GeoTransform[i] = payload.GeoTransform[i]
	}

	for _, b := range payload.Bands {
		info.Bands = append(info.Bands, BandInfo{Index: b.Band, Type: b.Type, NoData: b.NoDataValue})
	}

	if payload.CoordinateSystem != nil {
		info.CRSCode = epsgFromWKT(payload.CoordinateSystem.WKT)
	}

	if payload.WGS84Extent != nil {
		bbox := wgs84BBoxFromExtent(payload.WGS84Extent.Coordinates)
		if bbox != nil {
			info.WGS84BBox = bbox
		}
	}

	return info, nil
}

// Bounds derives the projected extent from the geotransform.
func (info RasterInfo) Bounds() geo.Bounds {
	gt := info.GeoTransform
	w := float64(info.Width)
	h := float64(info.Height)

	return geo.Bounds{
		Left:   gt[0],
		Top:    gt[3],
		Right:  gt[0] + w*gt[1] + h*gt[2],
		Bottom: gt[3] + w*gt[4] + h*gt[5],
	}
}

// Geometry packages the extent, pixel counts and CRS code for coordinate
// math.
func (info RasterInfo) Geometry() geo.RasterGeometry {
	return geo.RasterGeometry{
		Bounds:  info.Bounds(),
		Width:   info.Width,
		Height:  info.Height,
		CRSCode: info.CRSCode,
	}
}

// Transform returns the affine geotransform.
func (info RasterInfo) Transform() geo.Affine {
	return geo.AffineFromGDAL(info.GeoTransform)
}

// epsgFromWKT pulls the EPSG authority code out of a WKT string. The last
// occurrence wins, since that identifies the CRS as a whole rather than
// one of its components.
func epsgFromWKT(wkt string) string {
	if i := strings.LastIndex(wkt, `ID["EPSG",`); i >= 0 {
		rest := wkt[i+len(`ID["EPSG",`):]
		if j := strings.IndexByte(rest, ']'); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
	}

	if i := strings.LastIndex(wkt, `AUTHORITY["EPSG","`); i >= 0 {
		rest := wkt[i+len(`AUTHORITY["EPSG","`):]
		if j := strings.IndexByte(rest, '"'); j >= 0 {
			return rest[:j]
		}
	}

	return ""
}

func wgs84BBoxFromExtent(coords [][][]float64) *[4]float64 {
	if len(coords) == 0 || len(coords[0]) == 0 {
		return nil
	}

	minLon, maxLon := coords[0][0][0], coords[0][0][0]
	minLat, maxLat := coords[0][0][1], coords[0][0][1]

	for _, ring := range coords {
		minLon, minLat, maxLon, maxLat = updateBBoxFromRing(ring, minLon, minLat, maxLon, maxLat)
	}

	return &[4]float64{minLon, minLat, maxLon, maxLat}
}

func updateBBoxFromRing(ring [][]float64, minLon, minLat, maxLon, maxLat float64) (float64, float64, float64, float64) {
	for _, pt := range ring {
		if len(pt) < 2 {
			continue
		}

		minLon = math.Min(minLon, pt[0])
		maxLon = math.Max(maxLon, pt[0])
		minLat = math.Min(minLat, pt[1])
		maxLat = math.Max(maxLat, pt[1])
	}

	return minLon, minLat, maxLon, maxLat
}

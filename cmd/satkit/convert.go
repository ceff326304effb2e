package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"satkit/internal/gdal"
	"satkit/internal/postgis"
)

var convertGeometry string
var convertCRS string
var convertOut string

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "convert postgis geometry text to geojson",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		geom, err := postgis.ParseGeometry(convertGeometry)
		if err != nil {
			return err
		}

		crs := gdal.SplitCRSCode(convertCRS)
		var fc *geojson.FeatureCollection
		switch g := geom.(type) {
		case orb.Bound:
			fc = postgis.BoundToFeatureCollection(g, crs)
		case orb.Point:
			fc = postgis.PointToFeatureCollection(g, crs)
		default:
			return fmt.Errorf("unsupported geometry type %T", geom)
		}

		if convertOut != "" {
			return postgis.WriteFeatureCollection(convertOut, fc)
		}

		data, err := fc.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encoding feature collection: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertGeometry, "geometry", "", "postgis geometry text, BOX(...) or POINT(...)")
	convertCmd.MarkFlagRequired("geometry")
	convertCmd.Flags().StringVar(&convertCRS, "crs", "4326", "crs of the geometry coordinates, bare code or EPSG:<code>")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "write geojson to this path instead of stdout")
}

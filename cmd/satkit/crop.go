package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"satkit/internal/gdal"
	"satkit/internal/imagery"
)

var cropAOI string
var cropAOICRS string
var cropAOIOut string

var cropCmd = &cobra.Command{
	Use:   "crop <in.tif> <out.tif>",
	Short: "clip a raster to a postgis box",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opTimeout(cmd)
		defer cancel()

		crs := gdal.SplitCRSCode(cropAOICRS)
		bound, err := imagery.Crop(ctx, args[0], args[1], cropAOI, crs, cropAOIOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cropped to [%g %g %g %g] -> %s\n",
			bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cropCmd)
	cropCmd.Flags().StringVar(&cropAOI, "aoi", "", `area of interest as a postgis box, e.g. "BOX(1 2,3 4)"`)
	cropCmd.MarkFlagRequired("aoi")
	cropCmd.Flags().StringVar(&cropAOICRS, "aoi-crs", "4326", "crs of the box coordinates, bare code or EPSG:<code>")
	cropCmd.Flags().StringVar(&cropAOIOut, "aoi-out", "", "write the box as geojson to this path")
}

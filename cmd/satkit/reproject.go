package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"satkit/internal/gdal"
	"satkit/internal/imagery"
)

var reprojectCRS string

var reprojectCmd = &cobra.Command{
	Use:   "reproject <in.tif> <out.tif>",
	Short: "warp a raster into another crs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opTimeout(cmd)
		defer cancel()

		code := gdal.SplitCRSCode(reprojectCRS)
		if err := imagery.Reproject(ctx, args[0], args[1], code); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reprojected to EPSG:%s -> %s\n", code, args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reprojectCmd)
	reprojectCmd.Flags().StringVar(&reprojectCRS, "crs", "4326", "target crs, bare code or EPSG:<code>")
}

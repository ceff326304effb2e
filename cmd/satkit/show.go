package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"satkit/internal/imagery"
)

var showBand int
var showWidth int
var showThreshold int

var showCmd = &cobra.Command{
	Use:   "show <raster.tif>",
	Short: "terminal quicklook of one band",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opTimeout(cmd)
		defer cancel()

		if !cmd.Flags().Changed("width") {
			showWidth = cfg.Show.Width
		}
		if !cmd.Flags().Changed("threshold") {
			showThreshold = cfg.Show.Threshold
		}

		out, err := imagery.Quicklook(ctx, args[0], showBand, showWidth, showThreshold, cfg.Scale.Lower, cfg.Scale.Upper)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showBand, "band", 1, "band to render")
	showCmd.Flags().IntVar(&showWidth, "width", 64, "quicklook width in terminal cells")
	showCmd.Flags().IntVar(&showThreshold, "threshold", -1, "dot threshold 0-255, -1 picks the band median")
}

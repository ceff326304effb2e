package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"satkit/internal/imagery"
)

var scaleLower float64
var scaleUpper float64

var scaleCmd = &cobra.Command{
	Use:   "scale <in.tif> <out.tif>",
	Short: "stretch every band into the 8-bit range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opTimeout(cmd)
		defer cancel()

		if !cmd.Flags().Changed("lower") {
			scaleLower = cfg.Scale.Lower
		}
		if !cmd.Flags().Changed("upper") {
			scaleUpper = cfg.Scale.Upper
		}

		report, err := imagery.Scale(ctx, args[0], args[1], scaleLower, scaleUpper)
		if err != nil {
			return err
		}

		stretched := 0
		for _, rescaled := range report.Rescaled {
			if rescaled {
				stretched++
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "stretched %d of %d bands -> %s\n", stretched, report.Bands, report.Output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scaleCmd)
	scaleCmd.Flags().Float64Var(&scaleLower, "lower", 0, "lower bound of the input range")
	scaleCmd.Flags().Float64Var(&scaleUpper, "upper", 10000, "upper bound of the input range")
}

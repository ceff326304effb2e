package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"satkit/internal/imagery"
)

var compressMethod string

var compressCmd = &cobra.Command{
	Use:   "compress <in.tif> <out.tif>",
	Short: "rewrite a raster with tif compression",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opTimeout(cmd)
		defer cancel()

		if !cmd.Flags().Changed("method") {
			compressMethod = cfg.Compress.Method
		}

		report, err := imagery.Compress(ctx, args[0], args[1], compressMethod)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "(initial size, final size, ratio) : (%s, %s, %.2f%%)\n",
			humanize.Bytes(uint64(report.InitialSize)), humanize.Bytes(uint64(report.FinalSize)), report.Ratio)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compressCmd)
	compressCmd.Flags().StringVar(&compressMethod, "method", "JPEG", "tif compression method (JPEG, LZW, DEFLATE, ...)")
}

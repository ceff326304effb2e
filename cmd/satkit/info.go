package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"satkit/internal/imagery"
	"satkit/internal/render"
)

var infoCmd = &cobra.Command{
	Use:   "info <raster.tif>",
	Short: "print raster metadata and derived geometry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opTimeout(cmd)
		defer cancel()

		report, err := imagery.Inspect(ctx, args[0])
		if err != nil {
			return err
		}
		return writeInfoReport(cmd.OutOrStdout(), report)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func writeInfoReport(w io.Writer, report *imagery.Report) error {
	if _, err := fmt.Fprintln(w, render.Heading(report.Path)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"driver", report.Driver},
		{"size", fmt.Sprintf("%d x %d px", report.Columns, report.Rows)},
		{"bands", strconv.Itoa(len(report.Bands))},
		{"crs", crsLabel(report.CRSCode)},
		{"bounds", fmt.Sprintf("%g %g %g %g", report.Bounds.Left, report.Bounds.Bottom, report.Bounds.Right, report.Bounds.Top)},
		{"projected size", fmt.Sprintf("%g x %g", report.ProjectedWidth, report.ProjectedHeight)},
		{"top left", fmt.Sprintf("%g, %g", report.TopLeft[0], report.TopLeft[1])},
		{"bottom right", fmt.Sprintf("%g, %g", report.BottomRight[0], report.BottomRight[1])},
	}
	if report.PixelSize != nil {
		rows = append(rows, [2]string{"pixel size", pixelSizeLabel(report)})
	}
	if report.WGS84BBox != nil {
		b := *report.WGS84BBox
		rows = append(rows, [2]string{"wgs84 bbox", fmt.Sprintf("%g %g %g %g", b[0], b[1], b[2], b[3])})
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	for _, band := range report.Bands {
		value := band.Type
		if band.NoData != nil {
			value = fmt.Sprintf("%s, nodata %g", band.Type, *band.NoData)
		}
		if _, err := fmt.Fprintf(tw, "band %d\t%s\n", band.Index, value); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func crsLabel(code string) string {
	if code == "" {
		return "unknown"
	}
	return "EPSG:" + code
}

func pixelSizeLabel(report *imagery.Report) string {
	shape := "non-square"
	if report.SquarePixels {
		shape = "square"
	}
	return fmt.Sprintf("%.2f x %.2f m (%s)", report.PixelSize.X, report.PixelSize.Y, shape)
}

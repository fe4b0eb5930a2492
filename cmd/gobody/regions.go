package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/philipparndt/gobody/pkg/analysis"
	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	regionsCoverage bool
	regionsSamples  int
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the body regions",
	Long: `List the 21 regions with their catalog names.

With --coverage the built-in mannequin surface is sampled and the share of
its area that falls into each region is printed alongside.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if regionsCoverage {
			return printCoverage(cmd.OutOrStdout(), analysis.AnalyzeRegions(viewer.Mannequin(), regionsSamples))
		}
		return printRegions(cmd.OutOrStdout(), catalog)
	},
}

func init() {
	regionsCmd.Flags().BoolVar(&regionsCoverage, "coverage", false, "show how the mannequin surface splits into regions")
	regionsCmd.Flags().IntVar(&regionsSamples, "samples", 8, "samples per triangle edge for --coverage")
	rootCmd.AddCommand(regionsCmd)
}

func printRegions(w io.Writer, c *anatomy.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFACTS")
	for _, r := range anatomy.All() {
		info, _ := c.Lookup(r)
		fmt.Fprintf(tw, "%s\t%s\t%d\n", r, c.DisplayName(r), len(info.Facts))
	}
	return tw.Flush()
}

func printCoverage(w io.Writer, result *analysis.CoverageResult) error {
	fmt.Fprintf(w, "Triangles: %d  Samples: %d  Surface area: %.4f\n", result.TriangleCount, result.SampleCount, result.SurfaceArea)
	fmt.Fprintf(w, "Bounds: %s .. %s\n\n", analysis.FormatVector(result.BoundingBox.Min), analysis.FormatVector(result.BoundingBox.Max))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAREA\tSHARE")
	for _, c := range analysis.FindLargestRegions(result, len(result.Regions)) {
		if c.Samples == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%s\n", c.Region, c.Area, analysis.FormatShare(c.Share))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if missing := analysis.Missing(result); len(missing) > 0 {
		fmt.Fprintf(w, "\nNot on the surface: %v\n", missing)
	}
	return nil
}

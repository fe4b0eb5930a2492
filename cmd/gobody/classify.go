package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/geometry"
	"github.com/philipparndt/gobody/pkg/interaction"
	"github.com/philipparndt/gobody/pkg/selection"
	"github.com/spf13/cobra"
)

var classifyWorld bool

var classifyCmd = &cobra.Command{
	Use:   "classify [x y z]",
	Short: "Print the region of a point",
	Long: `Classify a model-local point into one of the 21 body regions.

Without arguments, points are read from stdin, one "x y z" triple per line.
With --world the points are world-space and are mapped into the model frame
with the configured model transform first.

Use -- before negative coordinates: gobody classify -- 0 -0.3 -0.05`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("expected 0 or 3 coordinates, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		locate := classifyLocal
		if classifyWorld {
			locate = worldLocator(interaction.StaticTransform(cfg.Transform()))
		}

		if len(args) == 3 {
			p, err := parsePoint(args)
			if err != nil {
				return err
			}
			region, err := locate(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), region)
			return nil
		}
		return classifyStream(cmd.InOrStdin(), cmd.OutOrStdout(), locate)
	},
}

func init() {
	classifyCmd.Flags().BoolVarP(&classifyWorld, "world", "w", false, "treat points as world-space coordinates")
	rootCmd.AddCommand(classifyCmd)
}

// locator resolves a point to a region
type locator func(geometry.Vector3) (anatomy.Region, error)

func classifyLocal(p geometry.Vector3) (anatomy.Region, error) {
	return anatomy.Classify(p), nil
}

func worldLocator(source interaction.TransformSource) locator {
	adapter := interaction.NewAdapter(source, selection.New(), interaction.WithLogger(logger))
	return func(p geometry.Vector3) (anatomy.Region, error) {
		_, region, ok := adapter.Locate(p)
		if !ok {
			return anatomy.None, errors.New("model transform is not invertible")
		}
		return region, nil
	}
}

// classifyStream classifies every "x y z" line of r. Blank lines and lines
// starting with # are skipped.
func classifyStream(r io.Reader, w io.Writer, locate locator) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := parsePoint(strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		}))
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		region, err := locate(p)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		fmt.Fprintln(w, region)
	}
	return scanner.Err()
}

func parsePoint(fields []string) (geometry.Vector3, error) {
	if len(fields) != 3 {
		return geometry.Vector3{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	var v [3]float64
	for i, f := range fields {
		parsed, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid coordinate %q: %w", f, err)
		}
		v[i] = parsed
	}
	return geometry.NewVector3(v[0], v[1], v[2]), nil
}

package main

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gobody/internal/config"
	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/feedback"
	"github.com/philipparndt/gobody/pkg/selection"
	"github.com/philipparndt/gobody/pkg/viewer"
	"github.com/spf13/cobra"
)

// snapshotOptions are the flags of the snapshot command
type snapshotOptions struct {
	out       string
	width     int
	height    int
	selected  string
	hovered   string
	yaw       float64
	pitch     float64
	wireframe bool
}

var snapshotOpts = snapshotOptions{out: "body.png", width: 480, height: 640}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the body to a PNG",
	Long: `Render the mannequin offscreen with the tint that the given hover and
selection state would produce, for example:

  gobody snapshot --select heart --yaw 30 --out heart.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Create(snapshotOpts.out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", snapshotOpts.out, err)
		}
		if err := renderSnapshot(f, cfg, snapshotOpts); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", snapshotOpts.out)
		return nil
	},
}

func init() {
	flags := snapshotCmd.Flags()
	flags.StringVarP(&snapshotOpts.out, "out", "o", snapshotOpts.out, "output PNG file")
	flags.IntVar(&snapshotOpts.width, "width", snapshotOpts.width, "image width in pixels")
	flags.IntVar(&snapshotOpts.height, "height", snapshotOpts.height, "image height in pixels")
	flags.StringVar(&snapshotOpts.selected, "select", "", "selected region")
	flags.StringVar(&snapshotOpts.hovered, "hover", "", "hovered region")
	flags.Float64Var(&snapshotOpts.yaw, "yaw", 0, "orbit yaw in degrees")
	flags.Float64Var(&snapshotOpts.pitch, "pitch", 0, "orbit pitch in degrees")
	flags.BoolVar(&snapshotOpts.wireframe, "wireframe", false, "draw triangle edges")
	rootCmd.AddCommand(snapshotCmd)
}

func renderSnapshot(w io.Writer, c *config.Config, opts snapshotOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	selected, err := anatomy.ParseRegion(opts.selected)
	if err != nil {
		return fmt.Errorf("--select: %w", err)
	}
	hovered, err := anatomy.ParseRegion(opts.hovered)
	if err != nil {
		return fmt.Errorf("--hover: %w", err)
	}
	palette, err := c.FeedbackPalette()
	if err != nil {
		return err
	}

	mesh := viewer.Mannequin()
	world := c.Transform()
	camera := viewer.NewCamera(mesh.BoundingBox().Transformed(world))
	camera.Rotate(mgl64.DegToRad(opts.pitch), mgl64.DegToRad(opts.yaw))

	snap := &viewer.Snapshot{Wireframe: opts.wireframe}
	feedback.NewController(palette).Update(selection.State{Hovered: hovered, Selected: selected}, snap)

	img := snap.Render(mesh, camera, world, opts.width, opts.height)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

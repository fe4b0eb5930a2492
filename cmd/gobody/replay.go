package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/gobody/internal/config"
	"github.com/philipparndt/gobody/pkg/analysis"
	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/feedback"
	"github.com/philipparndt/gobody/pkg/geometry"
	"github.com/philipparndt/gobody/pkg/interaction"
	"github.com/philipparndt/gobody/pkg/selection"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a scripted pointer session",
	Long: `Feed a YAML list of world-space pointer events through the interaction
pipeline and print the emitted hover/select events, the resulting tint and
the breathing scale after each step. Points are classified against the
model scaled by the current breathing scale, as in the viewer.

  events:
    - {type: move, point: [0.1, 0.0, 0.03]}
    - {type: down, point: [0.0, 0.4, 0.0]}
    - {type: tick, count: 10}
    - {type: leave}
    - {type: deselect}

Use "-" to read the script from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer f.Close()
			in = f
		}
		return runReplay(in, cmd.OutOrStdout(), cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

// replayEvent is one scripted pointer event
type replayEvent struct {
	Type  string     `yaml:"type"`
	Point [3]float64 `yaml:"point"`
	Count int        `yaml:"count"`
}

type replayScript struct {
	Events []replayEvent `yaml:"events"`
}

func runReplay(r io.Reader, w io.Writer, c *config.Config, log *zap.Logger) error {
	var script replayScript
	if err := yaml.NewDecoder(r).Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode script: %w", err)
	}

	palette, err := c.FeedbackPalette()
	if err != nil {
		return err
	}

	var emitted []string
	record := func(kind string) func(anatomy.Region) {
		return func(r anatomy.Region) {
			emitted = append(emitted, kind+":"+r.String())
		}
	}
	machine := selection.New(
		selection.WithInitialSelection(c.Selection()),
		selection.WithListener(selection.Listener{OnHover: record("hover"), OnSelect: record("select")}),
	)
	var adapter *interaction.Adapter
	world := interaction.TransformFunc(func() (geometry.Transform, bool) {
		return c.Transform().Scaled(adapter.Scale()), true
	})
	adapter = interaction.NewAdapter(world, machine,
		interaction.WithBreath(c.Breath()),
		interaction.WithLogger(log))
	tint := feedback.NewController(palette)
	tint.Update(machine.State())

	for i, ev := range script.Events {
		emitted = emitted[:0]
		point := geometry.NewVector3(ev.Point[0], ev.Point[1], ev.Point[2])
		label := ev.Type

		switch ev.Type {
		case "down":
			adapter.PointerDown(point)
			label += " " + analysis.FormatVector(point)
		case "move":
			adapter.PointerMove(point)
			label += " " + analysis.FormatVector(point)
		case "leave":
			adapter.PointerLeave()
		case "deselect":
			adapter.Deselect()
		case "tick":
			count := ev.Count
			if count <= 0 {
				count = 1
			}
			for j := 0; j < count; j++ {
				adapter.Tick()
			}
			label = fmt.Sprintf("tick x%d", count)
		default:
			return fmt.Errorf("event %d: unknown type %q", i, ev.Type)
		}

		tint.Update(machine.State())
		events := "-"
		if len(emitted) > 0 {
			events = strings.Join(emitted, ",")
		}
		fmt.Fprintf(w, "%-32s %-28s tint=%-8s scale=%.4f\n", label, events, tint.Current(), adapter.Scale())
	}

	state := machine.State()
	fmt.Fprintf(w, "final: hovered=%s selected=%s\n", state.Hovered, state.Selected)
	return nil
}

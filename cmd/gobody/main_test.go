package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gobody/internal/config"
	"github.com/philipparndt/gobody/pkg/analysis"
	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/geometry"
	"github.com/philipparndt/gobody/pkg/interaction"
	"github.com/philipparndt/gobody/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEmbeddedCatalogCoversEveryRegion(t *testing.T) {
	c, err := anatomy.LoadCatalog(bytes.NewReader(defaultCatalog))
	require.NoError(t, err)
	assert.Equal(t, len(anatomy.All()), c.Len())
	for _, r := range anatomy.All() {
		info, ok := c.Lookup(r)
		require.True(t, ok, "missing %s", r)
		assert.NotEmpty(t, info.DisplayName)
		assert.NotEmpty(t, info.Facts)
	}
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "", "classify", "0.10", "0.0", "0.03")
	require.NoError(t, err)
	assert.Equal(t, "liver\n", out)

	out, err = execute(t, "", "classify", "--", "0", "0.30", "-0.2")
	require.NoError(t, err)
	assert.Equal(t, "leftShoulder\n", out)

	_, err = execute(t, "", "classify", "1", "2")
	assert.Error(t, err)
}

func TestClassifyStream(t *testing.T) {
	input := `# local points
0 0.37 0
0 0.35 0

0.10,0.0,0.03
-0.05 0 -0.05
`
	var out bytes.Buffer
	require.NoError(t, classifyStream(strings.NewReader(input), &out, classifyLocal))
	assert.Equal(t, "head\nneck\nliver\nleftKidney\n", out.String())

	err := classifyStream(strings.NewReader("1 2 x\n"), &out, classifyLocal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestWorldLocator(t *testing.T) {
	logger = zap.NewNop()
	world := geometry.NewTransform(geometry.NewVector3(0, 1, 0), geometry.NewVector3(2, 2, 2), geometry.Vector3{})
	locate := worldLocator(interaction.StaticTransform(world))

	region, err := locate(geometry.NewVector3(0, 1.8, 0))
	require.NoError(t, err)
	assert.Equal(t, anatomy.Head, region)

	flat := geometry.NewTransform(geometry.Vector3{}, geometry.NewVector3(0, 1, 1), geometry.Vector3{})
	_, err = worldLocator(interaction.StaticTransform(flat))(geometry.Vector3{})
	assert.Error(t, err)
}

func TestPrintRegions(t *testing.T) {
	c, err := anatomy.LoadCatalog(bytes.NewReader(defaultCatalog))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printRegions(&out, c))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 22)
	assert.Contains(t, lines[1], "head")
	assert.Contains(t, lines[1], "Head")
	assert.Contains(t, lines[21], "Right Foot")
}

func TestPrintCoverage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printCoverage(&out, analysis.AnalyzeRegions(viewer.Mannequin(), 4)))

	text := out.String()
	assert.Contains(t, text, "Triangles: 156")
	assert.Contains(t, text, "hip")
	assert.Contains(t, text, "SHARE")
}

func TestRunReplay(t *testing.T) {
	script := `
events:
  - {type: move, point: [0.10, 0.0, 0.03]}
  - {type: move, point: [0.11, 0.0, 0.03]}
  - {type: down, point: [0.0, 0.25, 0.0]}
  - {type: tick, count: 3}
  - {type: leave}
  - {type: leave}
  - {type: deselect}
`
	var out bytes.Buffer
	require.NoError(t, runReplay(strings.NewReader(script), &out, config.Default(), zap.NewNop()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "hover:liver")
	assert.Contains(t, lines[0], "tint=hover")
	assert.Contains(t, lines[1], " - ", "repeated hover emits nothing")
	assert.Contains(t, lines[2], "select:heart")
	assert.Contains(t, lines[2], "tint=selected")
	assert.Contains(t, lines[3], "tick x3")
	assert.Contains(t, lines[4], "hover:none")
	assert.Contains(t, lines[4], "tint=selected", "selection outlives hover")
	assert.Contains(t, lines[5], " - ")
	assert.Contains(t, lines[6], "select:none")
	assert.Contains(t, lines[6], "tint=base")
	assert.Equal(t, "final: hovered=none selected=none", lines[7])
}

func TestRunReplayClassifiesAgainstBreathingScale(t *testing.T) {
	script := `
events:
  - {type: move, point: [0.0, 0.365, 0.0]}
  - {type: tick, count: 60}
  - {type: move, point: [0.0, 0.366, 0.0]}
`
	var out bytes.Buffer
	require.NoError(t, runReplay(strings.NewReader(script), &out, config.Default(), zap.NewNop()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "hover:head")
	assert.Contains(t, lines[1], "scale=1.0200")
	assert.Contains(t, lines[2], "hover:neck", "grown model moves the head floor up")
}

func TestRunReplayInitialSelectionAndErrors(t *testing.T) {
	c := config.Default()
	c.InitialSelection = "spine"

	var out bytes.Buffer
	require.NoError(t, runReplay(strings.NewReader("events: []"), &out, c, zap.NewNop()))
	assert.Equal(t, "final: hovered=none selected=spine\n", out.String())

	err := runReplay(strings.NewReader("events: [{type: jump}]"), &out, config.Default(), zap.NewNop())
	assert.ErrorContains(t, err, "jump")

	err = runReplay(strings.NewReader("events: {"), &out, config.Default(), zap.NewNop())
	assert.Error(t, err)
}

func TestRenderSnapshot(t *testing.T) {
	var buf bytes.Buffer
	opts := snapshotOptions{width: 40, height: 60, selected: "heart", yaw: 20}
	require.NoError(t, renderSnapshot(&buf, config.Default(), opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())

	opts.selected = "tail"
	assert.Error(t, renderSnapshot(&buf, config.Default(), opts))

	opts = snapshotOptions{width: 0, height: 10}
	assert.Error(t, renderSnapshot(&buf, config.Default(), opts))
}

func TestLoadCatalogFromFile(t *testing.T) {
	c := config.Default()
	builtin, err := loadCatalog(c)
	require.NoError(t, err)
	assert.Equal(t, 21, builtin.Len())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("regions:\n  - id: hip\n    displayName: Pelvis\n"), 0o644))
	c.Catalog = path

	custom, err := loadCatalog(c)
	require.NoError(t, err)
	assert.Equal(t, "Pelvis", custom.DisplayName(anatomy.Hip))

	require.NoError(t, os.WriteFile(path, []byte("regions:\n  - id: tail\n"), 0o644))
	_, err = loadCatalog(c)
	assert.ErrorContains(t, err, path)
}

package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/philipparndt/gobody/internal/config"
	"github.com/philipparndt/gobody/internal/logging"
	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	configPath  string
	catalogPath string
	logLevel    string

	cfg     = config.Default()
	logger  = zap.NewNop()
	catalog *anatomy.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "gobody",
	Short: "Interactive 3D body viewer with anatomical region picking",
	Long: `gobody shows a humanoid model that can be orbited and zoomed. Hovering or
clicking the body resolves the point under the cursor to one of 21 anatomical
regions, tints the model and shows the region's description.

The classify, regions, replay and snapshot commands expose the same region
logic without a window.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		if logger, err = logging.New(level, cmd.ErrOrStderr()); err != nil {
			return err
		}
		if catalog, err = loadCatalog(cfg); err != nil {
			return err
		}
		logger.Debug("Configuration loaded",
			zap.String("config", configPath),
			zap.Int("catalogEntries", catalog.Len()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "region catalog YAML (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

// catalogSource returns the catalog path in effect, or "" for the built-in one
func catalogSource(c *config.Config) string {
	if catalogPath != "" {
		return catalogPath
	}
	return c.Catalog
}

func loadCatalog(c *config.Config) (*anatomy.Catalog, error) {
	path := catalogSource(c)
	if path == "" {
		return anatomy.LoadCatalog(bytes.NewReader(defaultCatalog))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := anatomy.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

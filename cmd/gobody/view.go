package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gobody/internal/config"
	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/selection"
	"github.com/philipparndt/gobody/pkg/viewer"
	"github.com/philipparndt/gobody/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var viewWatch bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer",
	Long: `Open a window showing the body.

  • Drag to orbit, scroll to zoom
  • Move the pointer over the body to highlight a region
  • Click to select a region and show its description
  • Escape clears the selection, R resets the view

With --watch the configuration and catalog files are reloaded when they
change on disk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewer()
	},
}

func init() {
	viewCmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "reload configuration and catalog on change")
	rootCmd.AddCommand(viewCmd)
}

func runViewer() error {
	palette, err := cfg.FeedbackPalette()
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("gobody")

	panel := viewer.NewInfoPanel(catalog)
	machine := selection.New(
		selection.WithInitialSelection(cfg.Selection()),
		selection.WithListener(selection.Listener{
			OnHover: panel.ShowHovered,
			OnSelect: func(r anatomy.Region) {
				logger.Info("Region selected", zap.Stringer("region", r))
				panel.ShowSelected(r)
			},
		}),
	)
	panel.ShowSelected(machine.Selected())

	body := viewer.NewBodyView(viewer.Mannequin(), cfg.Transform(), machine,
		viewer.WithLogger(logger),
		viewer.WithBreath(cfg.Breath()),
		viewer.WithPalette(palette))
	body.StartBreathing()

	clearButton := widget.NewButton("Clear Selection", body.Adapter().Deselect)
	resetButton := widget.NewButton("Reset View", body.ResetView)

	side := container.NewVScroll(container.NewVBox(
		panel.Content(),
		widget.NewSeparator(),
		clearButton,
		resetButton,
	))
	side.SetMinSize(fyne.NewSize(300, 0))

	w.SetContent(container.NewBorder(nil, nil, nil, side, body))
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			body.Adapter().Deselect()
		case fyne.KeyR:
			body.ResetView()
		}
	})

	if viewWatch {
		fw, err := watchFiles(func(c *config.Config, cat *anatomy.Catalog) {
			if p, err := c.FeedbackPalette(); err == nil {
				body.SetPalette(p)
			}
			panel.SetCatalog(cat)
			panel.ShowSelected(machine.Selected())
		})
		if err != nil {
			return err
		}
		defer fw.Close()
	}

	w.Resize(fyne.NewSize(1000, 760))
	w.ShowAndRun()
	return nil
}

// watchFiles reloads the config and catalog on change and hands the result to
// apply on the UI goroutine. Files that fail to load keep the previous state.
func watchFiles(apply func(*config.Config, *anatomy.Catalog)) (*watcher.FileWatcher, error) {
	var files []string
	if configPath != "" {
		files = append(files, configPath)
	}
	if path := catalogSource(cfg); path != "" {
		files = append(files, path)
	}

	fw, err := watcher.NewFileWatcher(200*time.Millisecond, logger)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("Nothing to watch, using built-in configuration and catalog")
		return fw, nil
	}

	err = fw.Watch(files, func(path string) {
		next, err := config.Load(configPath)
		if err != nil {
			logger.Error("Reload failed", zap.String("path", path), zap.Error(err))
			return
		}
		cat, err := loadCatalog(next)
		if err != nil {
			logger.Error("Reload failed", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Info("Reloaded", zap.String("path", path))
		fyne.Do(func() {
			cfg, catalog = next, cat
			apply(next, cat)
		})
	})
	if err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()
	return fw, nil
}

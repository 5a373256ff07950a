package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/projcompare/internal/config"
	"github.com/nao1215/projcompare/internal/loader"
	plog "github.com/nao1215/projcompare/internal/log"
	"github.com/nao1215/projcompare/internal/model"
	"github.com/nao1215/projcompare/internal/render"
	"github.com/spf13/cobra"
)

// runRootCmd loads the project file and renders it in the selected mode.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, counter := setupLogger(cmd, cfg.Verbose)

	// Set up context with signal handling so an open viewer is closed on
	// interrupt.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cmd, cfg, logger); err != nil {
		return err
	}

	logger.Debug("done", "warnings", counter.Count(slog.LevelWarn))
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the settings
// file. Flags take precedence over settings.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	var err error

	cfg.InputPath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	visu, err := cmd.Flags().GetString("visu")
	if err != nil {
		return nil, err
	}
	cfg.Mode, err = model.ParseMode(visu)
	if err != nil {
		return nil, err
	}

	cfg.OutputPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Headless, err = cmd.Flags().GetBool("headless")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	cfg.Settings, err = loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	cfg.SettingsPath, _ = cmd.Flags().GetString("settings")

	if cmd.Flags().Changed("format") {
		cfg.Settings.Table.Format, err = cmd.Flags().GetString("format")
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// loadSettings reads the settings file named by --settings, or the first
// one found in the default locations. Without a file the defaults are used.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settingsPath, err := cmd.Flags().GetString("settings")
	if err != nil {
		return nil, err
	}

	path := config.FindSettingsFile(settingsPath)
	if path == "" {
		if settingsPath != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrSettingsNotFound, settingsPath)
		}
		return config.DefaultSettings(), nil
	}

	return config.LoadSettingsFile(path)
}

// setupLogger creates the diagnostic logger writing to the command's stderr.
func setupLogger(cmd *cobra.Command, verbose bool) (*slog.Logger, *plog.CountingHandler) {
	asJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		asJSON = false
	}
	if asJSON {
		return plog.NewJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return plog.NewCountingLogger(cmd.ErrOrStderr(), verbose)
}

// run loads the input and hands it to the renderer for cfg.Mode.
func run(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	ds, err := loader.Load(cfg.InputPath, loader.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("rendering",
		"mode", cfg.Mode.String(),
		"projects", len(ds.Projects),
		"output", cfg.OutputPath,
	)

	r, err := render.New(cfg.Mode,
		render.WithOutput(cmd.OutOrStdout()),
		render.WithOutputPath(cfg.OutputPath),
		render.WithHeadless(cfg.Headless),
		render.WithSettings(cfg.Settings),
		render.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if err := r.Render(ctx, ds.Projects); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted")
		}
		return err
	}
	return nil
}

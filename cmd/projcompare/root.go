package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/nao1215/projcompare/internal/config"
	"github.com/nao1215/projcompare/internal/model"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for projcompare.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projcompare",
		Short: "Compare projects by revenue and public impact",
		Long: `projcompare loads a JSON array of projects and visualises them.

Each project is an object with optional "name", "revenue" and "public" keys.
Missing keys default to "" or 0 and are reported as warnings on stderr.

Visualisation modes:
  revenue-public  scatter chart of revenue (x) against public (y),
                  one labelled point per project
  table           text table with columns Project, Revenue, Public

The scatter chart is opened with the viewer command from the settings file
(chart.viewer) and projcompare waits for it to exit. The Linux default,
xdg-open, usually returns as soon as it has handed the chart to another
application; set chart.viewer (for example "eog") to wait for the window.

Examples:
  # Show the scatter chart in an image viewer
  projcompare -c projects.json --visu revenue-public

  # Save the chart instead of opening it
  projcompare -c projects.json --visu revenue-public -o chart.svg

  # Print a Markdown table
  projcompare -c projects.json --visu table -f markdown`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON")
	cmd.PersistentFlags().StringP("settings", "s", "",
		"Settings file (default: ./"+config.DefaultSettingsFile+" or $XDG_CONFIG_HOME/"+config.AppName+"/config.yaml)")

	cmd.Flags().StringP("config", "c", "", "JSON file describing the projects")
	cmd.Flags().String("visu", "",
		"Visualisation mode ("+strings.Join(model.ModeNames(), ", ")+")")
	cmd.Flags().StringP("output", "o", "",
		"Write the chart (.png, .svg, .pdf, .md) or table to this file")
	cmd.Flags().Bool("headless", false,
		"Render the chart in memory without opening a viewer")
	cmd.Flags().StringP("format", "f", "",
		"Table format ("+config.TableFormatGrid+", "+config.TableFormatMarkdown+")")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("visu")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewSettingsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

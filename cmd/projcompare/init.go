package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/projcompare/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/projcompare.yaml
var settingsTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a projcompare settings file",
		Long: `Init creates a new .projcompare settings file in the current directory.

The generated file documents every setting with its default value:
- Chart axis labels, font size and size
- The command used to open charts
- Table format and number locale

Examples:
  # Create .projcompare in current directory
  projcompare init

  # Create the settings file at a specific path
  projcompare init -o ~/.config/projcompare/config.yaml

  # Force overwrite existing file
  projcompare init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultSettingsFile,
		"Output file path for the settings")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing settings file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("settings file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := settingsTemplate.ReadFile("templates/projcompare.yaml")
	if err != nil {
		return fmt.Errorf("failed to read settings template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created settings file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to change:")
	fmt.Fprintln(out, "  - Chart labels, font size and viewer command")
	fmt.Fprintln(out, "  - Table format and number locale")

	return nil
}

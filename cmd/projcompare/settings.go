package main

import (
	"fmt"

	"github.com/nao1215/projcompare/internal/config"
	"github.com/spf13/cobra"
)

// NewSettingsCmd creates the settings command.
func NewSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the effective settings",
		Long: `Print the settings projcompare would use, as YAML.

The output merges the settings file (see --settings) with built-in defaults,
so it can be saved as a starting point for a new settings file.`,
		Args: cobra.NoArgs,
		RunE: runSettingsCmd,
	}
}

// runSettingsCmd executes the settings command.
func runSettingsCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	data, err := config.MarshalSettings(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and checked with errors.Is().
var (
	// ErrNoInput is returned when no input file was given with --config.
	ErrNoInput = errors.New("no input file specified: use --config <path>")

	// ErrInvalidFontSize is returned when the chart font size is not positive.
	ErrInvalidFontSize = errors.New("invalid font size: must be positive")

	// ErrInvalidChartSize is returned when the chart width or height is not positive.
	ErrInvalidChartSize = errors.New("invalid chart size: width and height must be positive")

	// ErrUnknownTableFormat is returned when the table format is neither
	// "grid" nor "markdown".
	ErrUnknownTableFormat = errors.New("unknown table format: must be grid or markdown")

	// ErrInvalidLocale is returned when the table locale is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale: must be a BCP 47 language tag such as en or fr-FR")

	// ErrUnsupportedOutputFormat is returned when a chart output file has an
	// extension that no chart writer supports.
	ErrUnsupportedOutputFormat = errors.New("unsupported chart output format: use .png, .svg, .pdf or .md")

	// ErrConflictingOutput is returned when both --headless and --output are given.
	ErrConflictingOutput = errors.New("conflicting output: --headless and --output cannot be used together")

	// ErrSettingsNotFound is returned when the settings file does not exist.
	ErrSettingsNotFound = errors.New("settings file not found")
)

package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/nao1215/projcompare/internal/model"
	"golang.org/x/text/language"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "projcompare"

	// DefaultXLabel is the label of the revenue (horizontal) axis.
	DefaultXLabel = "Revenue"

	// DefaultYLabel is the label of the public (vertical) axis.
	DefaultYLabel = "Public"

	// DefaultFontSize is the font size in points used for axis labels,
	// tick labels and point annotations. Large on purpose: the chart is
	// meant to be read on a projector.
	DefaultFontSize = 20.0

	// DefaultChartWidth is the chart width in inches.
	DefaultChartWidth = 12.0

	// DefaultChartHeight is the chart height in inches.
	DefaultChartHeight = 9.0

	// DefaultLocale is the locale used to format numbers in tables.
	DefaultLocale = "en"
)

// Table formats.
const (
	// TableFormatGrid prints a bordered box-drawing grid.
	TableFormatGrid = "grid"

	// TableFormatMarkdown prints a GitHub Flavored Markdown table.
	TableFormatMarkdown = "markdown"
)

// chartExtensions lists the output file extensions a chart can be written to.
var chartExtensions = []string{".png", ".svg", ".pdf", ".md"}

// Config holds all configuration options for one projcompare run.
// It is populated from CLI flags and the settings file, then passed down
// explicitly; nothing reads global state.
type Config struct {
	// InputPath is the path of the JSON project file (--config).
	InputPath string

	// Mode is the selected visualisation mode (--visu).
	Mode model.Mode

	// OutputPath is the file the chart or table is written to (--output).
	// When empty, tables go to stdout and charts are shown in a viewer.
	OutputPath string

	// Headless renders charts to memory only, without a viewer.
	Headless bool

	// Verbose enables debug logging.
	Verbose bool

	// SettingsPath is the settings file path given with --settings.
	// If empty, FindSettingsFile searches the default locations.
	SettingsPath string

	// Settings holds chart and table settings. Flags are applied on top of
	// the settings file.
	Settings *Settings
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Settings: DefaultSettings(),
	}
}

// XDGConfigDir returns the XDG config directory for projcompare.
// On Linux: ~/.config/projcompare
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for projcompare.
// Charts shown in a viewer are rendered here first.
// On Linux: ~/.cache/projcompare
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}

	if !slices.Contains(model.Modes(), c.Mode) {
		return fmt.Errorf("%w %q", model.ErrUnrecognizedMode, c.Mode)
	}

	if c.Headless && c.OutputPath != "" {
		return ErrConflictingOutput
	}

	if c.Mode == model.ModeRevenuePublic && c.OutputPath != "" {
		ext := strings.ToLower(filepath.Ext(c.OutputPath))
		if !slices.Contains(chartExtensions, ext) {
			return fmt.Errorf("%w (got %q)", ErrUnsupportedOutputFormat, ext)
		}
	}

	s := c.Settings
	if s == nil {
		s = DefaultSettings()
	}

	if s.Chart.FontSize <= 0 {
		return ErrInvalidFontSize
	}

	if s.Chart.Width <= 0 || s.Chart.Height <= 0 {
		return ErrInvalidChartSize
	}

	switch s.Table.Format {
	case TableFormatGrid, TableFormatMarkdown:
	default:
		return fmt.Errorf("%w (got %q)", ErrUnknownTableFormat, s.Table.Format)
	}

	if _, err := language.Parse(s.Table.Locale); err != nil {
		return fmt.Errorf("%w (got %q)", ErrInvalidLocale, s.Table.Locale)
	}

	return nil
}

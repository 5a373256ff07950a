package config

// ChartSettings tunes the scatter chart.
type ChartSettings struct {
	// XLabel is the revenue axis label.
	XLabel string `yaml:"x_label,omitempty"`

	// YLabel is the public axis label.
	YLabel string `yaml:"y_label,omitempty"`

	// FontSize is the font size in points for axis labels, tick labels and
	// point annotations.
	FontSize float64 `yaml:"font_size,omitempty"`

	// Width is the chart width in inches.
	Width float64 `yaml:"width,omitempty"`

	// Height is the chart height in inches.
	Height float64 `yaml:"height,omitempty"`

	// Viewer is the command used to open a rendered chart, for example
	// "eog" or "open -W". If empty, the platform default is used.
	Viewer string `yaml:"viewer,omitempty"`
}

// TableSettings tunes the text table.
type TableSettings struct {
	// Format is TableFormatGrid or TableFormatMarkdown.
	Format string `yaml:"format,omitempty"`

	// Locale is the BCP 47 tag used to format numbers, such as "en" or "fr".
	Locale string `yaml:"locale,omitempty"`
}

// Settings represents the structure of the .projcompare settings file.
type Settings struct {
	// Chart holds scatter chart settings.
	Chart ChartSettings `yaml:"chart,omitempty"`

	// Table holds table settings.
	Table TableSettings `yaml:"table,omitempty"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() *Settings {
	return &Settings{
		Chart: ChartSettings{
			XLabel:   DefaultXLabel,
			YLabel:   DefaultYLabel,
			FontSize: DefaultFontSize,
			Width:    DefaultChartWidth,
			Height:   DefaultChartHeight,
		},
		Table: TableSettings{
			Format: TableFormatGrid,
			Locale: DefaultLocale,
		},
	}
}

// WithDefaults returns a copy of s where every unset field is taken from
// DefaultSettings. A nil receiver yields the defaults.
func (s *Settings) WithDefaults() *Settings {
	result := DefaultSettings()
	if s == nil {
		return result
	}

	if s.Chart.XLabel != "" {
		result.Chart.XLabel = s.Chart.XLabel
	}
	if s.Chart.YLabel != "" {
		result.Chart.YLabel = s.Chart.YLabel
	}
	if s.Chart.FontSize != 0 {
		result.Chart.FontSize = s.Chart.FontSize
	}
	if s.Chart.Width != 0 {
		result.Chart.Width = s.Chart.Width
	}
	if s.Chart.Height != 0 {
		result.Chart.Height = s.Chart.Height
	}
	if s.Chart.Viewer != "" {
		result.Chart.Viewer = s.Chart.Viewer
	}
	if s.Table.Format != "" {
		result.Table.Format = s.Table.Format
	}
	if s.Table.Locale != "" {
		result.Table.Locale = s.Table.Locale
	}

	return result
}

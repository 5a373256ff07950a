package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/projcompare/internal/config"
	"github.com/nao1215/projcompare/internal/model"
)

// Renderer renders a full project sequence once.
type Renderer interface {
	// Render produces the output for projects. It is called once, with the
	// complete loaded sequence, and must not modify it.
	Render(ctx context.Context, projects []model.Project) error
}

// options holds settings shared by the renderer constructors.
type options struct {
	output     io.Writer
	outputPath string
	headless   bool
	settings   *config.Settings
	logger     *slog.Logger
	viewer     Viewer
	cacheDir   string
}

// Option configures a Renderer created by New.
type Option func(*options)

// WithOutput sets the writer tables are printed to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithOutputPath writes the table or chart to a file instead.
// Parent directories are created as needed.
func WithOutputPath(path string) Option {
	return func(o *options) {
		o.outputPath = path
	}
}

// WithHeadless makes charts render to memory only.
func WithHeadless(headless bool) Option {
	return func(o *options) {
		o.headless = headless
	}
}

// WithSettings sets chart and table settings. Unset fields fall back to
// config.DefaultSettings.
func WithSettings(s *config.Settings) Option {
	return func(o *options) {
		o.settings = s
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithViewer sets the program used to show interactive charts.
func WithViewer(v Viewer) Option {
	return func(o *options) {
		o.viewer = v
	}
}

// WithCacheDir sets where interactive charts are rendered before being
// opened. Defaults to config.XDGCacheDir().
func WithCacheDir(dir string) Option {
	return func(o *options) {
		o.cacheDir = dir
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.output == nil {
		o.output = os.Stdout
	}
	o.settings = o.settings.WithDefaults()
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.viewer == nil {
		o.viewer = NewCommandViewer(o.settings.Chart.Viewer)
	}
	if o.cacheDir == "" {
		o.cacheDir = config.XDGCacheDir()
	}
	return o
}

// New returns the Renderer for mode.
func New(mode model.Mode, opts ...Option) (Renderer, error) {
	o := newOptions(opts)

	switch mode {
	case model.ModeRevenuePublic:
		return newScatterRenderer(o), nil
	case model.ModeTable:
		return newTableRenderer(o)
	default:
		return nil, fmt.Errorf("%w %q", model.ErrUnrecognizedMode, mode)
	}
}

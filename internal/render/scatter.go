package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/projcompare/internal/config"
	"github.com/nao1215/projcompare/internal/model"
	"github.com/ubuntu/decorate"
)

// Interactive charts are written to the cache directory under this pattern.
// Files older than staleChartAge are removed on the next interactive run.
const (
	chartFilePattern = "chart-*.png"
	staleChartAge    = 10 * time.Minute
)

// ScatterRenderer plots revenue against public impact, one annotated point
// per project.
//
// It runs in one of three modes, checked in this order:
//   - headless: the chart is encoded as PNG into memory (see Last)
//   - file: the chart is written to the output path
//   - interactive: the chart is written as PNG to the cache directory and
//     opened in the viewer; Render blocks until the viewer exits
type ScatterRenderer struct {
	chart      config.ChartSettings
	outputPath string
	headless   bool
	viewer     Viewer
	cacheDir   string
	logger     *slog.Logger

	figure *Figure
	image  []byte
}

func newScatterRenderer(o *options) *ScatterRenderer {
	return &ScatterRenderer{
		chart:      o.settings.Chart,
		outputPath: o.outputPath,
		headless:   o.headless,
		viewer:     o.viewer,
		cacheDir:   o.cacheDir,
		logger:     o.logger,
	}
}

// Render builds the figure for projects and outputs it.
func (r *ScatterRenderer) Render(ctx context.Context, projects []model.Project) (err error) {
	defer decorate.OnError(&err, "scatter chart failed")

	fig := BuildFigure(projects, r.chart)
	r.figure = &fig

	r.logger.Debug("scatter figure built",
		"points", len(fig.Points),
		"headless", r.headless,
		"output", r.outputPath,
	)

	switch {
	case r.headless:
		var buf bytes.Buffer
		if err := WriteChart(&buf, fig, ChartFormatPNG); err != nil {
			return err
		}
		r.image = buf.Bytes()
		r.logger.Debug("chart rendered to memory", "bytes", len(r.image))
		return nil

	case r.outputPath != "":
		if err := writeChartFile(r.outputPath, fig); err != nil {
			return err
		}
		r.logger.Debug("chart written", "path", r.outputPath)
		return nil

	default:
		return r.display(ctx, fig)
	}
}

// display renders fig into the cache directory and opens it in the viewer.
func (r *ScatterRenderer) display(ctx context.Context, fig Figure) error {
	if err := os.MkdirAll(r.cacheDir, 0750); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	r.pruneCache(time.Now().Add(-staleChartAge))

	f, err := os.CreateTemp(r.cacheDir, chartFilePattern)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	path := f.Name()

	if err := WriteChart(f, fig, ChartFormatPNG); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close chart file: %w", err)
	}

	r.logger.Debug("opening chart in viewer", "path", path)
	return r.viewer.Open(ctx, path)
}

// pruneCache removes chart files in the cache directory last modified
// before cutoff. Failures are logged and otherwise ignored.
func (r *ScatterRenderer) pruneCache(cutoff time.Time) {
	matches, err := filepath.Glob(filepath.Join(r.cacheDir, chartFilePattern))
	if err != nil {
		r.logger.Debug("cannot list cached charts", "error", err)
		return
	}
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			r.logger.Debug("cannot remove cached chart", "path", path, "error", err)
			continue
		}
		r.logger.Debug("removed cached chart", "path", path)
	}
}

// Figure returns the figure drawn by the last Render call, or nil.
func (r *ScatterRenderer) Figure() *Figure {
	return r.figure
}

// Last returns the PNG bytes of the last headless Render call, or nil.
func (r *ScatterRenderer) Last() []byte {
	return r.image
}

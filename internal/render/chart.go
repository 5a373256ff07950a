package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/projcompare/internal/config"
	"github.com/ubuntu/decorate"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ChartFormat is an encoding a Figure can be written in.
type ChartFormat string

// Supported chart formats.
const (
	ChartFormatPNG      ChartFormat = "png"
	ChartFormatSVG      ChartFormat = "svg"
	ChartFormatPDF      ChartFormat = "pdf"
	ChartFormatMarkdown ChartFormat = "md"
)

// markerRadius is the radius of a plotted point, in points.
const markerRadius = 4.5

// ChartFormatFromPath picks the chart format from a file extension.
func ChartFormatFromPath(path string) (ChartFormat, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ChartFormat(ext) {
	case ChartFormatPNG, ChartFormatSVG, ChartFormatPDF, ChartFormatMarkdown:
		return ChartFormat(ext), nil
	default:
		return "", fmt.Errorf("%w (got %q)", config.ErrUnsupportedOutputFormat, filepath.Ext(path))
	}
}

// NewPlot draws fig on a gonum plot. Axis labels, tick labels and
// annotations all use fig.FontSize.
func NewPlot(fig Figure) (*plot.Plot, error) {
	p := plot.New()
	size := vg.Points(fig.FontSize)

	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.X.Label.TextStyle.Font.Size = size
	p.Y.Label.TextStyle.Font.Size = size
	p.X.Tick.Label.Font.Size = size
	p.Y.Tick.Label.Font.Size = size

	if len(fig.Points) == 0 {
		return p, nil
	}

	points := make(plotter.XYs, len(fig.Points))
	for i, pt := range fig.Points {
		points[i].X, points[i].Y = pt.X, pt.Y
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("failed to create scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(markerRadius)

	labelled := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(fig.Annotations)),
		Labels: make([]string, len(fig.Annotations)),
	}
	for i, a := range fig.Annotations {
		labelled.XYs[i].X, labelled.XYs[i].Y = a.X, a.Y
		labelled.Labels[i] = a.Text
	}
	labels, err := plotter.NewLabels(labelled)
	if err != nil {
		return nil, fmt.Errorf("failed to create labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = size
	}

	p.Add(scatter, labels)
	return p, nil
}

// WriteChart encodes fig in format to w.
func WriteChart(w io.Writer, fig Figure, format ChartFormat) (err error) {
	defer decorate.OnError(&err, "could not write %s chart", format)

	if format == ChartFormatMarkdown {
		return writeMermaid(w, fig)
	}

	p, err := NewPlot(fig)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(fig.Width)*vg.Inch, vg.Length(fig.Height)*vg.Inch, string(format))
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// writeChartFile writes fig to path, choosing the format from its extension.
func writeChartFile(path string, fig Figure) error {
	format, err := ChartFormatFromPath(path)
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		return WriteChart(w, fig, format)
	})
}

// writeFile creates path (and its parent directories) and passes it to write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return write(f)
}

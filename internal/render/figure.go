package render

import (
	"github.com/nao1215/projcompare/internal/config"
	"github.com/nao1215/projcompare/internal/model"
)

// Annotation offsets in data units. Labels sit up and to the right of their
// marker so they do not cover it.
const (
	LabelOffsetX = 20.0
	LabelOffsetY = 100.0
)

// Point is one plotted marker.
type Point struct {
	X float64
	Y float64
}

// Annotation is a text label drawn at a position in data coordinates.
type Annotation struct {
	X    float64
	Y    float64
	Text string
}

// Figure describes a scatter chart independently of how it is drawn.
// Points[i] and Annotations[i] belong to the same project.
type Figure struct {
	Points      []Point
	Annotations []Annotation

	XLabel   string
	YLabel   string
	FontSize float64

	// Width and Height are in inches.
	Width  float64
	Height float64
}

// BuildFigure places one point per project at (Revenue, Public) and one
// annotation per project at the point shifted by LabelOffsetX/LabelOffsetY.
func BuildFigure(projects []model.Project, chart config.ChartSettings) Figure {
	fig := Figure{
		Points:      make([]Point, 0, len(projects)),
		Annotations: make([]Annotation, 0, len(projects)),
		XLabel:      chart.XLabel,
		YLabel:      chart.YLabel,
		FontSize:    chart.FontSize,
		Width:       chart.Width,
		Height:      chart.Height,
	}

	for _, p := range projects {
		fig.Points = append(fig.Points, Point{X: p.Revenue, Y: p.Public})
		fig.Annotations = append(fig.Annotations, Annotation{
			X:    p.Revenue + LabelOffsetX,
			Y:    p.Public + LabelOffsetY,
			Text: p.Name,
		})
	}

	return fig
}

// bounds returns the minimum and maximum of f over points.
// ok is false when points is empty.
func bounds(points []Point, f func(Point) float64) (lo, hi float64, ok bool) {
	for i, pt := range points {
		v := f(pt)
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}
	return lo, hi, len(points) > 0
}

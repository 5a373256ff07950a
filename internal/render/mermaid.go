package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/quadrant"
)

// mermaidNameReplacer strips characters that end a Mermaid point name early.
var mermaidNameReplacer = strings.NewReplacer(":", " ", "[", "(", "]", ")", "\n", " ")

// writeMermaid writes fig as a Markdown document holding a Mermaid quadrant
// chart. Quadrant charts only accept coordinates in [0,1], so each axis is
// rescaled from its data range; the raw values are listed below the chart.
func writeMermaid(w io.Writer, fig Figure) error {
	title := fmt.Sprintf("%s vs %s", fig.XLabel, fig.YLabel)

	chart := quadrant.NewChart(io.Discard, quadrant.WithTitle(title))
	chart.XAxis("Low "+fig.XLabel, "High "+fig.XLabel)
	chart.YAxis("Low "+fig.YLabel, "High "+fig.YLabel)

	scaleX := normalizer(fig.Points, func(p Point) float64 { return p.X })
	scaleY := normalizer(fig.Points, func(p Point) float64 { return p.Y })

	rows := make([][]string, 0, len(fig.Points))
	for i, pt := range fig.Points {
		name := mermaidPointName(fig.Annotations[i].Text, i)
		chart.Point(name, scaleX(pt.X), scaleY(pt.Y))
		rows = append(rows, []string{
			name,
			strconv.FormatFloat(pt.X, 'f', -1, 64),
			strconv.FormatFloat(pt.Y, 'f', -1, 64),
		})
	}

	md := markdown.NewMarkdown(w)
	md.H1(title)
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header:    []string{"Project", fig.XLabel, fig.YLabel},
		Rows:      rows,
		Alignment: []markdown.TableAlignment{markdown.AlignLeft, markdown.AlignRight, markdown.AlignRight},
	})

	return md.Build()
}

// mermaidPointName returns a name Mermaid can parse. Unnamed projects are
// called by their 1-based position.
func mermaidPointName(name string, index int) string {
	name = strings.TrimSpace(mermaidNameReplacer.Replace(name))
	if name == "" {
		return fmt.Sprintf("Project %d", index+1)
	}
	return name
}

// normalizer maps values of f over points linearly onto [0,1].
// A degenerate range maps everything to the middle.
func normalizer(points []Point, f func(Point) float64) func(float64) float64 {
	lo, hi, ok := bounds(points, f)
	if !ok || hi == lo {
		return func(float64) float64 { return 0.5 }
	}
	return func(v float64) float64 {
		return (v - lo) / (hi - lo)
	}
}

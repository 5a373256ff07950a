package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/markdown"
	"github.com/nao1215/projcompare/internal/config"
	"github.com/nao1215/projcompare/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/ubuntu/decorate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Header returns the table header row.
func Header() []string {
	return []string{"Project", "Revenue", "Public"}
}

// TableRenderer prints projects as a text table with one row per project.
type TableRenderer struct {
	format     string
	printer    *message.Printer
	output     io.Writer
	outputPath string
	logger     *slog.Logger
}

func newTableRenderer(o *options) (*TableRenderer, error) {
	tag, err := language.Parse(o.settings.Table.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", config.ErrInvalidLocale, o.settings.Table.Locale, err)
	}

	switch o.settings.Table.Format {
	case config.TableFormatGrid, config.TableFormatMarkdown:
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownTableFormat, o.settings.Table.Format)
	}

	return &TableRenderer{
		format:     o.settings.Table.Format,
		printer:    message.NewPrinter(tag),
		output:     o.output,
		outputPath: o.outputPath,
		logger:     o.logger,
	}, nil
}

// BuildRows returns one row per project in input order. Columns are name,
// revenue and public; numbers are formatted by p.
func BuildRows(projects []model.Project, p *message.Printer) [][]string {
	rows := make([][]string, 0, len(projects))
	for _, proj := range projects {
		rows = append(rows, []string{
			proj.Name,
			formatNumber(p, proj.Revenue),
			formatNumber(p, proj.Public),
		})
	}
	return rows
}

// formatNumber groups digits for the printer's locale and keeps every
// fraction digit of the shortest representation of v.
func formatNumber(p *message.Printer, v float64) string {
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(-1)))
}

// Render writes the table to the output file if one is set, otherwise to
// the output writer.
func (r *TableRenderer) Render(_ context.Context, projects []model.Project) (err error) {
	defer decorate.OnError(&err, "table output failed")

	rows := BuildRows(projects, r.printer)
	r.logger.Debug("table built", "rows", len(rows), "format", r.format)

	if r.outputPath != "" {
		return writeFile(r.outputPath, func(w io.Writer) error {
			return r.write(w, rows)
		})
	}
	return r.write(r.output, rows)
}

func (r *TableRenderer) write(w io.Writer, rows [][]string) error {
	if r.format == config.TableFormatMarkdown {
		return writeMarkdownTable(w, rows)
	}
	return writeGridTable(w, rows)
}

// writeGridTable draws a box table with a rule between every row.
func writeGridTable(w io.Writer, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleLight),
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenRows: tw.On},
			},
		})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRowAlignmentConfig(tw.CellAlignment{
			Global:    tw.AlignLeft,
			PerColumn: []tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignRight},
		}),
	)

	table.Header(Header())
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeMarkdownTable(w io.Writer, rows [][]string) error {
	md := markdown.NewMarkdown(w)
	md.Table(markdown.TableSet{
		Header:    Header(),
		Rows:      rows,
		Alignment: []markdown.TableAlignment{markdown.AlignLeft, markdown.AlignRight, markdown.AlignRight},
	})
	return md.Build()
}

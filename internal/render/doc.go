// Package render turns loaded projects into output.
//
// This package contains two Renderer implementations:
//   - ScatterRenderer: revenue/public scatter chart annotated with project names
//   - TableRenderer: one row per project, as a bordered grid or a Markdown table
//
// New performs the mode dispatch. Every model.Mode is handled explicitly;
// an unknown mode is an error rather than a silent no-op.
//
// The pure parts of each renderer (BuildFigure, BuildRows) are separate from
// the parts that touch the outside world (image encoding, the chart viewer,
// the output writer), so tests can check what would be drawn without a
// display.
package render

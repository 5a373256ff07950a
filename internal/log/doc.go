// Package log provides the diagnostic logger used by projcompare,
// built on top of the standard slog package.
//
// Diagnostics (missing field warnings, debug traces) are written to the
// error stream so that they never mix with the rendered table or chart on
// standard output.
//
// # Counting
//
// The CountingHandler wraps any slog.Handler and counts the records it
// sees per level. The CLI uses it to summarise how many warnings a run
// produced:
//
//	logger, counter := log.NewCountingLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//	...
//	counter.Count(slog.LevelWarn)
package log

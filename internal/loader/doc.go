// Package loader reads the project input file and turns it into validated
// model.Project records.
//
// The input document must be a JSON array of JSON objects. Each object may
// carry "name", "revenue" and "public"; absent keys (or keys set to null)
// are replaced by their defaults and reported as MissingFieldWarning values,
// both in the returned Dataset and on the configured slog.Logger. Unknown
// keys are ignored.
//
// Anything that prevents a complete load (unreadable file, malformed JSON,
// wrong top-level shape, wrong field type) is reported as an *InputError.
package loader

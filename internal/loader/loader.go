package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/projcompare/internal/model"
)

// Dataset is the result of a successful load.
type Dataset struct {
	// Projects holds one record per input object, in input order.
	Projects []model.Project

	// Warnings lists every substituted field, in the order encountered.
	Warnings []MissingFieldWarning
}

// options holds loader settings configured through Option values.
type options struct {
	logger *slog.Logger
}

// Option configures Load and Decode.
type Option func(*options)

// WithLogger sets the logger used to report missing fields.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Load reads the JSON document at path and returns its projects.
// Every failure is an *InputError.
func Load(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	return decode(path, f, newOptions(opts))
}

// Decode reads a JSON document from r and returns its projects.
// It applies exactly the same validation as Load.
func Decode(r io.Reader, opts ...Option) (*Dataset, error) {
	return decode("", r, newOptions(opts))
}

func decode(path string, r io.Reader, o *options) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	var top json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &InputError{Path: path, Err: fmt.Errorf("malformed JSON: %w", err)}
	}
	if kind := jsonKind(top); kind != "array" {
		return nil, &InputError{Path: path, Err: fmt.Errorf("%w, got %s", ErrNotArray, kind)}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(top, &elements); err != nil {
		return nil, &InputError{Path: path, Err: fmt.Errorf("malformed JSON: %w", err)}
	}

	ds := &Dataset{
		Projects: make([]model.Project, 0, len(elements)),
	}
	for i, raw := range elements {
		p, warnings, err := parseProject(i, raw)
		if err != nil {
			return nil, &InputError{Path: path, Err: err}
		}
		for _, w := range warnings {
			o.logger.Warn("missing field, using default", "project", w)
		}
		ds.Projects = append(ds.Projects, p)
		ds.Warnings = append(ds.Warnings, warnings...)
	}

	o.logger.Debug("projects loaded",
		"path", path,
		"count", len(ds.Projects),
		"warnings", len(ds.Warnings),
	)

	return ds, nil
}

// parseProject validates one array element. Missing fields are filled with
// defaults and returned as warnings, in name, revenue, public order.
func parseProject(index int, raw json.RawMessage) (model.Project, []MissingFieldWarning, error) {
	if kind := jsonKind(raw); kind != "object" {
		return model.Project{}, nil, fmt.Errorf("element %d: %w, got %s", index, ErrNotObject, kind)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.Project{}, nil, fmt.Errorf("element %d: %w", index, err)
	}

	p := model.NewProject()
	var missing []string

	nameRaw, ok := present(fields, model.FieldName)
	if ok {
		if err := json.Unmarshal(nameRaw, &p.Name); err != nil {
			return model.Project{}, nil, fieldTypeError(index, model.FieldName, "string", nameRaw)
		}
	} else {
		missing = append(missing, model.FieldName)
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{model.FieldRevenue, &p.Revenue},
		{model.FieldPublic, &p.Public},
	} {
		v, ok := present(fields, f.name)
		if !ok {
			missing = append(missing, f.name)
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return model.Project{}, nil, fieldTypeError(index, f.name, "number", v)
		}
	}

	var warnings []MissingFieldWarning
	for _, field := range missing {
		warnings = append(warnings, MissingFieldWarning{
			Index: index,
			Name:  p.Name,
			Field: field,
		})
	}

	return p, warnings, nil
}

// present returns the raw value of key and whether it counts as present.
// An explicit null is treated the same as an absent key.
func present(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := fields[key]
	if !ok || jsonKind(v) == "null" {
		return nil, false
	}
	return v, true
}

func fieldTypeError(index int, field, want string, raw json.RawMessage) error {
	return fmt.Errorf("element %d: %w: %q must be a %s, got %s",
		index, ErrFieldType, field, want, jsonKind(raw))
}

// jsonKind names the JSON type of a syntactically valid raw value.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

package loader

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/projcompare/internal/model"
)

// MissingFieldWarning records a field that was absent from one input object
// and replaced by its default. It is a diagnostic, not an error.
type MissingFieldWarning struct {
	// Index is the 0-based position of the object in the input array.
	Index int

	// Name is the project name, or "" when the name itself is missing.
	Name string

	// Field is the missing field name (model.FieldName, FieldRevenue or FieldPublic).
	Field string
}

// Default returns the value substituted for the missing field.
func (w MissingFieldWarning) Default() any {
	switch w.Field {
	case model.FieldName:
		return model.DefaultName
	case model.FieldRevenue:
		return model.DefaultRevenue
	case model.FieldPublic:
		return model.DefaultPublic
	default:
		return nil
	}
}

// String returns a one-line human-readable description.
func (w MissingFieldWarning) String() string {
	return fmt.Sprintf("project #%d (%q): missing field %q, using default %v",
		w.Index+1, w.Name, w.Field, w.Default())
}

// LogValue implements slog.LogValuer.
func (w MissingFieldWarning) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("index", w.Index),
		slog.String("name", w.Name),
		slog.String("field", w.Field),
		slog.Any("default", w.Default()),
	)
}

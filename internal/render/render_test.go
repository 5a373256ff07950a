package render

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/nao1215/projcompare/internal/config"
	"github.com/nao1215/projcompare/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleProjects mirrors the Alpha/Beta example after defaults are applied.
func sampleProjects() []model.Project {
	return []model.Project{
		{Name: "Alpha", Revenue: 100, Public: 50},
		{Name: "Beta", Revenue: 0, Public: 0},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingViewer remembers which files it was asked to open.
type recordingViewer struct {
	paths []string
	err   error
}

func (v *recordingViewer) Open(_ context.Context, path string) error {
	v.paths = append(v.paths, path)
	return v.err
}

// TestNew tests mode dispatch.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("revenue-public returns ScatterRenderer", func(t *testing.T) {
		t.Parallel()

		r, err := New(model.ModeRevenuePublic, WithLogger(discardLogger()))
		require.NoError(t, err)
		assert.IsType(t, &ScatterRenderer{}, r)
	})

	t.Run("table returns TableRenderer", func(t *testing.T) {
		t.Parallel()

		r, err := New(model.ModeTable, WithLogger(discardLogger()))
		require.NoError(t, err)
		assert.IsType(t, &TableRenderer{}, r)
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		t.Parallel()

		r, err := New(model.ModeUnknown)
		require.Error(t, err)
		assert.Nil(t, r)
		assert.True(t, errors.Is(err, model.ErrUnrecognizedMode))
	})

	t.Run("invalid locale is rejected", func(t *testing.T) {
		t.Parallel()

		settings := &config.Settings{Table: config.TableSettings{Locale: "not a locale!"}}
		_, err := New(model.ModeTable, WithSettings(settings))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalidLocale))
	})

	t.Run("unknown table format is rejected", func(t *testing.T) {
		t.Parallel()

		settings := &config.Settings{Table: config.TableSettings{Format: "html"}}
		_, err := New(model.ModeTable, WithSettings(settings))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrUnknownTableFormat))
	})
}

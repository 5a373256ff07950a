package render

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nao1215/projcompare/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScatter(t *testing.T, opts ...Option) (*ScatterRenderer, *recordingViewer) {
	t.Helper()

	viewer := &recordingViewer{}
	opts = append([]Option{
		WithLogger(discardLogger()),
		WithViewer(viewer),
		WithCacheDir(t.TempDir()),
	}, opts...)

	r, err := New(model.ModeRevenuePublic, opts...)
	require.NoError(t, err)
	return r.(*ScatterRenderer), viewer
}

func TestScatterRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("headless renders png to memory", func(t *testing.T) {
		t.Parallel()

		r, viewer := newTestScatter(t, WithHeadless(true))
		require.NoError(t, r.Render(context.Background(), sampleProjects()))

		assert.True(t, bytes.HasPrefix(r.Last(), []byte("\x89PNG")))
		assert.Empty(t, viewer.paths, "headless must not open a viewer")

		fig := r.Figure()
		require.NotNil(t, fig)
		assert.Equal(t, []Point{{X: 100, Y: 50}, {X: 0, Y: 0}}, fig.Points)
		assert.Equal(t, "Alpha", fig.Annotations[0].Text)
		assert.Equal(t, "Beta", fig.Annotations[1].Text)
	})

	t.Run("empty input renders empty chart", func(t *testing.T) {
		t.Parallel()

		r, _ := newTestScatter(t, WithHeadless(true))
		require.NoError(t, r.Render(context.Background(), nil))

		assert.Empty(t, r.Figure().Points)
		assert.NotEmpty(t, r.Last())
	})

	t.Run("output path writes file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "chart.svg")
		r, viewer := newTestScatter(t, WithOutputPath(path))
		require.NoError(t, r.Render(context.Background(), sampleProjects()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg")
		assert.Empty(t, viewer.paths)
		assert.Nil(t, r.Last())
	})

	t.Run("interactive opens cached png in viewer", func(t *testing.T) {
		t.Parallel()

		cache := t.TempDir()
		r, viewer := newTestScatter(t, WithCacheDir(cache))
		require.NoError(t, r.Render(context.Background(), sampleProjects()))

		require.Len(t, viewer.paths, 1)
		assert.Equal(t, cache, filepath.Dir(viewer.paths[0]))
		assert.Equal(t, ".png", filepath.Ext(viewer.paths[0]))

		data, err := os.ReadFile(viewer.paths[0])
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	})

	t.Run("interactive removes stale cached charts", func(t *testing.T) {
		t.Parallel()

		cache := t.TempDir()
		stale := filepath.Join(cache, "chart-old.png")
		recent := filepath.Join(cache, "chart-recent.png")
		other := filepath.Join(cache, "notes.txt")
		for _, path := range []string{stale, recent, other} {
			require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
		}
		old := time.Now().Add(-2 * staleChartAge)
		require.NoError(t, os.Chtimes(stale, old, old))
		require.NoError(t, os.Chtimes(other, old, old))

		r, viewer := newTestScatter(t, WithCacheDir(cache))
		require.NoError(t, r.Render(context.Background(), sampleProjects()))

		assert.NoFileExists(t, stale)
		assert.FileExists(t, recent)
		assert.FileExists(t, other)
		require.Len(t, viewer.paths, 1)
		assert.FileExists(t, viewer.paths[0])
	})

	t.Run("viewer failure is returned", func(t *testing.T) {
		t.Parallel()

		viewer := &recordingViewer{err: errors.New("no display")}
		r, _ := newTestScatter(t, WithViewer(viewer))

		err := r.Render(context.Background(), sampleProjects())
		require.Error(t, err)
		assert.ErrorContains(t, err, "no display")
	})
}

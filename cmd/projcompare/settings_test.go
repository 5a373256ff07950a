package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table:\n  locale: de\n"), 0600))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"settings", "-s", path})
	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "locale: de")
	assert.Contains(t, got, "format: grid")
	assert.Contains(t, got, "x_label: Revenue")
	assert.Contains(t, got, "font_size: 20")
}

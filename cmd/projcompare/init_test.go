package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nao1215/projcompare/internal/config"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("expected use 'init', got %q", cmd.Use)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultSettingsFile {
			t.Errorf("expected default %q, got %q", config.DefaultSettingsFile, flag.DefValue)
		}
	})

	t.Run("has force flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("force")
		if flag == nil {
			t.Fatal("expected force flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})
}

// runInit executes the init command with args and returns its stdout.
func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewInitCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// TestRunInitCmd tests the init command execution.
func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates a settings file that loads as defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", ".projcompare")
		out, err := runInit(t, "-o", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Created settings file") {
			t.Errorf("unexpected output: %q", out)
		}

		s, err := config.LoadSettingsFile(path)
		if err != nil {
			t.Fatalf("generated file does not load: %v", err)
		}
		if !reflect.DeepEqual(s, config.DefaultSettings()) {
			t.Errorf("expected default settings, got %+v", s)
		}
	})

	t.Run("documents viewer behaviour", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".projcompare")
		if _, err := runInit(t, "-o", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		for _, want := range []string{"xdg-open", "exits at once", "viewer: eog", "removed on the next run"} {
			if !strings.Contains(string(content), want) {
				t.Errorf("expected template to mention %q", want)
			}
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".projcompare")
		if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
			t.Fatal(err)
		}

		_, err := runInit(t, "-o", path)
		if err == nil {
			t.Fatal("expected error for existing file")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "existing" {
			t.Errorf("file was overwritten: %q", data)
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".projcompare")
		if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := runInit(t, "-o", path, "-f"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "font_size: 20") {
			t.Errorf("expected template content, got %q", data)
		}
	})
}

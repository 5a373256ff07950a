package main

import (
	"strings"
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "projcompare" {
			t.Errorf("expected use 'projcompare', got %q", cmd.Use)
		}
	})

	t.Run("has descriptions", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("help explains viewer waiting", func(t *testing.T) {
		t.Parallel()
		for _, want := range []string{"xdg-open", "chart.viewer"} {
			if !strings.Contains(cmd.Long, want) {
				t.Errorf("expected long description to mention %q", want)
			}
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has run flags", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name      string
			shorthand string
		}{
			{"config", "c"},
			{"visu", ""},
			{"output", "o"},
			{"headless", ""},
			{"format", "f"},
		}
		for _, tt := range tests {
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Errorf("expected %s flag", tt.name)
				continue
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("flag %s: expected shorthand %q, got %q", tt.name, tt.shorthand, flag.Shorthand)
			}
		}
	})

	t.Run("config and visu are required", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"config", "visu"} {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				t.Fatalf("expected %s flag", name)
			}
			if _, ok := flag.Annotations["cobra_annotation_bash_completion_one_required_flag"]; !ok {
				t.Errorf("expected %s flag to be required", name)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{"init": false, "settings": false, "version": false}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Use]; ok {
				want[sub.Use] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})
}

// Package config provides configuration structures and utilities for projcompare.
// It defines the run configuration built from command line flags and the
// optional YAML settings file that tunes chart and table output.
package config

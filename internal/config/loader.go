package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ubuntu/decorate"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is the settings file name looked up in the current directory.
const DefaultSettingsFile = ".projcompare"

// xdgSettingsFile is the settings file name inside XDGConfigDir.
const xdgSettingsFile = "config.yaml"

// LoadSettingsFile loads settings from a YAML file.
// Unset fields are filled from DefaultSettings. Unknown keys are rejected
// so that typos do not silently fall back to defaults.
// If the file does not exist, it returns ErrSettingsNotFound.
func LoadSettingsFile(path string) (_ *Settings, err error) {
	defer decorate.OnError(&err, "could not load settings from %s", path)

	data, err := os.ReadFile(path) //nolint:gosec // User-provided settings path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return s.WithDefaults(), nil
}

// FindSettingsFile searches for the settings file in the following order:
// 1. If settingsPath is specified, use it directly
// 2. Look for .projcompare in the current directory
// 3. Look for config.yaml in the XDG config directory
//
// Returns the path to the settings file if found, or empty string if not found.
func FindSettingsFile(settingsPath string) string {
	if settingsPath != "" {
		if _, err := os.Stat(settingsPath); err == nil {
			return settingsPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdSettings := filepath.Join(cwd, DefaultSettingsFile)
		if _, err := os.Stat(cwdSettings); err == nil {
			return cwdSettings
		}
	}

	xdgSettings := filepath.Join(XDGConfigDir(), xdgSettingsFile)
	if _, err := os.Stat(xdgSettings); err == nil {
		return xdgSettings
	}

	return ""
}

// MarshalSettings encodes settings as YAML.
func MarshalSettings(s *Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

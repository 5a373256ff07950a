package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedMode is returned when a visualisation mode identifier does
// not match any known Mode.
var ErrUnrecognizedMode = errors.New("unrecognized visualisation mode")

// Mode selects how the loaded projects are rendered.
type Mode int

const (
	// ModeUnknown is the zero value. It is never returned by ParseMode
	// without an error.
	ModeUnknown Mode = iota

	// ModeRevenuePublic plots every project on a revenue/public scatter chart.
	ModeRevenuePublic

	// ModeTable prints every project as one row of a text table.
	ModeTable
)

// modeNames maps each known Mode to its command line identifier.
var modeNames = map[Mode]string{
	ModeRevenuePublic: "revenue-public",
	ModeTable:         "table",
}

// String returns the command line identifier of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Modes returns all known modes in a stable order.
func Modes() []Mode {
	return []Mode{ModeRevenuePublic, ModeTable}
}

// ModeNames returns the command line identifiers of all known modes.
func ModeNames() []string {
	modes := Modes()
	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, m.String())
	}
	return names
}

// ParseMode converts a command line identifier into a Mode.
// Matching is exact; any other value yields an error wrapping
// ErrUnrecognizedMode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeUnknown, fmt.Errorf("%w %q (expected one of: %s)",
		ErrUnrecognizedMode, s, strings.Join(ModeNames(), ", "))
}

package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Viewer shows a rendered chart file to the user.
type Viewer interface {
	// Open displays the file at path and returns once the viewer exits
	// or ctx is cancelled.
	Open(ctx context.Context, path string) error
}

// CommandViewer opens charts by running an external program with the chart
// path appended as the last argument.
type CommandViewer struct {
	// Command is the program and its leading arguments.
	Command []string
}

// NewCommandViewer parses a viewer command line such as "eog" or "open -W".
// An empty command selects the platform default.
func NewCommandViewer(command string) *CommandViewer {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		fields = defaultViewerCommand(runtime.GOOS)
	}
	return &CommandViewer{Command: fields}
}

// defaultViewerCommand returns the usual "open this file" program for goos.
// The macOS and Windows variants wait for the viewer to close.
func defaultViewerCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open", "-W"}
	case "windows":
		return []string{"cmd", "/c", "start", "/wait", ""}
	default:
		return []string{"xdg-open"}
	}
}

// Open runs the viewer and waits for it.
func (v *CommandViewer) Open(ctx context.Context, path string) error {
	if len(v.Command) == 0 {
		return errors.New("no viewer command configured")
	}

	args := append(append([]string{}, v.Command[1:]...), path)
	cmd := exec.CommandContext(ctx, v.Command[0], args...) //nolint:gosec // Viewer command comes from the user's settings
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("viewer %q failed: %w", v.Command[0], err)
	}
	return nil
}

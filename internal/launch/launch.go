// pattern: Imperative Shell

// package launch starts external programs for the selected repository.
// Launches are fire-and-forget: once the process has started we release
// it and never track its lifecycle.
package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"repodash/internal/logging"
)

// ErrCommandFailed indicates the external command could not be started.
var ErrCommandFailed = errors.New("external command failed")

// LookPathFunc is the function signature for looking up executables.
type LookPathFunc func(name string) (string, error)

// StartFunc starts a prepared command. Injectable for tests.
type StartFunc func(cmd *exec.Cmd) error

// Launcher starts editors and terminals on repository paths.
type Launcher struct {
	logger   *logging.ScopedLogger
	lookPath LookPathFunc
	start    StartFunc
}

// NewLauncher creates a launcher using the real exec machinery.
func NewLauncher(logger *logging.ScopedLogger) *Launcher {
	return &Launcher{
		logger:   logger,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// NewLauncherWith creates a launcher with injected lookup and start
// functions. Used by tests.
func NewLauncherWith(logger *logging.ScopedLogger, lookPath LookPathFunc, start StartFunc) *Launcher {
	return &Launcher{logger: logger, lookPath: lookPath, start: start}
}

// OpenEditor starts the configured editor command with path as its
// argument. editorCmd may carry extra arguments ("code -n").
func (l *Launcher) OpenEditor(editorCmd, path string) error {
	bin, args, err := l.resolve(editorCmd)
	if err != nil {
		return err
	}

	cmd := exec.Command(bin, append(args, path)...)
	if err := l.start(cmd); err != nil {
		l.logger.Error("editor launch failed", "command", editorCmd, "path", path, "error", err)
		return fmt.Errorf("%w: %s: %v", ErrCommandFailed, editorCmd, err)
	}

	l.logger.Info("opened in editor", "command", editorCmd, "path", path)
	return nil
}

// OpenTerminal starts the configured terminal emulator with its working
// directory set to path.
func (l *Launcher) OpenTerminal(termCmd, path string) error {
	bin, args, err := l.resolve(termCmd)
	if err != nil {
		return err
	}

	cmd := exec.Command(bin, args...)
	cmd.Dir = path
	if err := l.start(cmd); err != nil {
		l.logger.Error("terminal launch failed", "command", termCmd, "path", path, "error", err)
		return fmt.Errorf("%w: %s: %v", ErrCommandFailed, termCmd, err)
	}

	l.logger.Info("opened in terminal", "command", termCmd, "path", path)
	return nil
}

// resolve splits a command string into binary + leading args and verifies
// the binary exists on PATH.
func (l *Launcher) resolve(command string) (string, []string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: empty command", ErrCommandFailed)
	}

	bin, err := l.lookPath(fields[0])
	if err != nil {
		l.logger.Error("command not found", "command", fields[0], "error", err)
		return "", nil, fmt.Errorf("%w: %s not found", ErrCommandFailed, fields[0])
	}

	return bin, fields[1:], nil
}

// startDetached starts cmd and releases the process so it outlives us.
func startDetached(cmd *exec.Cmd) error {
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}
	return nil
}

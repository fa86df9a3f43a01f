// Package cli provides the Cobra command tree and dependency wiring for
// the routegen CLI. This file defines the Dependencies struct
// (Composition Root) that wires the domain modules together.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/modu-ai/routegen/internal/config"
	"github.com/modu-ai/routegen/internal/ui"
)

// Dependencies holds the services used by CLI commands.
type Dependencies struct {
	Config   *config.Manager
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Logger   *slog.Logger

	level *slog.LevelVar
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root
// @MX:REASON: [AUTO] fan_in=3, called from root.go and the command tests
// InitDependencies creates and wires all dependencies. Logs go to stderr
// at warn level until --verbose lowers it.
func InitDependencies() {
	deps = NewDependencies(os.Stderr, os.Stdout)
}

// NewDependencies builds a Dependencies that logs to logOut and draws
// progress for the terminal behind uiOut.
func NewDependencies(logOut io.Writer, uiOut *os.File) *Dependencies {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	return &Dependencies{
		Config:   config.NewManager(),
		Theme:    ui.NewTheme(),
		Headless: ui.NewHeadlessManager(uiOut),
		Logger:   slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})),
		level:    level,
	}
}

// SetVerbose switches the log level between debug and warn.
func (d *Dependencies) SetVerbose(verbose bool) {
	if d.level == nil {
		return
	}
	if verbose {
		d.level.Set(slog.LevelDebug)
	} else {
		d.level.Set(slog.LevelWarn)
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

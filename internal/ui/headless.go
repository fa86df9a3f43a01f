package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether animated UI may be drawn on a stream.
type HeadlessManager struct {
	forced *bool
	out    *os.File
}

// NewHeadlessManager detects headless mode from the TTY state of out.
// A nil out checks os.Stdout.
func NewHeadlessManager(out *os.File) *HeadlessManager {
	if out == nil {
		out = os.Stdout
	}
	return &HeadlessManager{out: out}
}

// IsHeadless returns true when out is not a terminal, unless a forced
// value was set.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	fd := h.out.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

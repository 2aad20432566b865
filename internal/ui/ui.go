// Package ui handles terminal presentation: output-mode detection,
// lipgloss styles keyed to score bands and severities, and the live
// progress display shown while articles are analyzed.
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are rendered.
type OutputMode int

const (
	// ModeInteractive renders styled reports with live progress.
	ModeInteractive OutputMode = iota
	// ModePlain renders unstyled text for pipes and CI logs.
	ModePlain
	// ModeJSON suppresses all decoration; reporters emit JSON only.
	ModeJSON
)

// UI carries the output mode and styles for one command invocation.
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New builds a UI for the writers. An explicit json format wins;
// otherwise the mode follows whether the writer is a terminal.
func New(w, errW io.Writer, format string) *UI {
	mode := ModePlain
	switch {
	case format == "json":
		mode = ModeJSON
	case isTerminal(w):
		mode = ModeInteractive
	}

	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == ModeInteractive),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether live progress and colors are active.
func (u *UI) IsInteractive() bool {
	return u.Mode == ModeInteractive
}

// IsJSON reports whether reporters should emit JSON only.
func (u *UI) IsJSON() bool {
	return u.Mode == ModeJSON
}

// Package ui implements an interactive filesystem browser using [tea]. It
// navigates any [fsproxy.FileSystem], so the same browser works against the
// real filesystem and the simulated one.
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/fsproxy/internal/fsproxy"
)

// Handler is the principal implementation of the browser user interface.
type Handler struct {
	program *tea.Program
}

// NewHandler returns a pointer to a new user interface [Handler] browsing the
// given filesystem, starting at startPath (which must be absolute).
func NewHandler(ctx context.Context, fsys fsproxy.FileSystem, startPath string) *Handler {
	model := NewTeaModel(fsys, startPath)

	return &Handler{
		program: tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)),
	}
}

// Launch starts the browser user interface (the [tea.Program]) and blocks
// until it exits.
func (uiHandler *Handler) Launch() error {
	if _, err := uiHandler.program.Run(); err != nil {
		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

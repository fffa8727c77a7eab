package controller

import (
	"stockctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg records the new dimensions and re-clamps the table.
// Nothing else changes, so an open dialog keeps its state.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	m.State.Clamp(m.ViewportHeight())
	LogDebug(m, controllerSubsystem, "Resized to %dx%d, viewport %d rows", msg.Width, msg.Height, m.ViewportHeight())
	return m, nil
}

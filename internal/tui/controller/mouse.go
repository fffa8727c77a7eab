package controller

import (
	"stockctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg maps pointer events onto the table. Only the browsing
// screen and the log overlay react to the mouse.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	case model.ModeBrowsing:
	default:
		return m, nil
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	vh := m.ViewportHeight()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.State.Move(-1, vh)
	case tea.MouseButtonWheelDown:
		m.State.Move(1, vh)
	case tea.MouseButtonLeft:
		return handleLeftClick(m, msg.Y-model.TableTopRow)
	}
	return m, nil
}

// handleLeftClick selects the row at offset from the top of the table. A
// second press on the same row within the double-click interval opens the
// details overlay.
func handleLeftClick(m *model.Model, offset int) (*model.Model, tea.Cmd) {
	if !m.State.SelectVisible(offset, m.ViewportHeight()) {
		m.LastClickRow = -1
		return m, nil
	}

	now := m.Now()
	row := m.State.SelectedIndex
	if row == m.LastClickRow && now.Sub(m.LastClickAt) <= m.DoubleClickInterval {
		m.LastClickRow = -1
		return showDetails(m)
	}
	m.LastClickRow = row
	m.LastClickAt = now
	return m, nil
}

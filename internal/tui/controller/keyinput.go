package controller

import (
	"stockctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInputMode processes key presses while a dialog is open. Enter
// submits the current step, Esc and Ctrl+C cancel the whole dialog and every
// other key goes to the text input.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.Dialog == nil {
		m.CurrentAppMode = model.ModeBrowsing
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEnter:
		return submitDialogStep(m)
	case tea.KeyEsc, tea.KeyCtrlC:
		return cancelDialog(m)
	}

	var cmd tea.Cmd
	m.Dialog.Input, cmd = m.Dialog.Input.Update(keyMsg)
	return m, cmd
}

func cancelDialog(m *model.Model) (*model.Model, tea.Cmd) {
	LogDebug(m, controllerSubsystem, "%s dialog cancelled", m.Dialog.Kind)
	title := m.Dialog.Title
	closeDialog(m)
	m.SetStatus(title+" cancelled.", model.StatusBarInfo)
	return m, nil
}

func closeDialog(m *model.Model) {
	if m.Dialog != nil {
		m.Dialog.Input.Blur()
	}
	m.Dialog = nil
	m.CurrentAppMode = model.ModeBrowsing
}

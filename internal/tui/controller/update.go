package controller

import (
	"fmt"

	"stockctl/internal/tui/model"
	"stockctl/internal/tui/view"
	"stockctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// mainControllerDispatch is the central message routing function. It
// receives every Bubble Tea message, hands it to the handler for the current
// mode and returns the commands to run next.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case tea.MouseMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T in mode %s", msg, m.CurrentAppMode)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.CurrentAppMode == model.ModePrompting {
			return handleKeyMsgInputMode(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case tea.MouseMsg:
		return handleMouseMsg(m, msg)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		// Cursor blinks and other component messages.
		if m.CurrentAppMode == model.ModePrompting && m.Dialog != nil {
			var cmd tea.Cmd
			m.Dialog.Input, cmd = m.Dialog.Input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ActivityLogDirty && m.CurrentAppMode == model.ModeLogOverlay {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		if atBottom {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// handleNewLogEntry appends an entry to the activity log. Debug entries are
// kept only in debug mode.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry
	if entry.Level < logging.LevelInfo && !m.DebugMode {
		return m
	}

	logLine := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level.String(),
		entry.Subsystem,
		entry.Message)
	if entry.Err != nil {
		logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
	}
	model.AddRawLineToActivityLog(m, logLine)
	return m
}

package controller

import (
	"strings"

	"stockctl/internal/tui/model"
	"stockctl/internal/tui/view"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses outside of dialogs: overlay keys
// first, then table navigation and commands.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.ToggleLog):
			m.CurrentAppMode = model.ModeBrowsing
		case key.Matches(keyMsg, m.Keys.Copy):
			copyToClipboard(m, strings.Join(m.ActivityLog, "\n"), "Logs copied to clipboard.")
		case key.Matches(keyMsg, m.Keys.Up, m.Keys.Down, m.Keys.PageUp, m.Keys.PageDown, m.Keys.Home, m.Keys.End):
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
			return m, cmd
		}
		return m, nil

	case model.ModeDetailsOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.Details):
			m.CurrentAppMode = model.ModeBrowsing
		case key.Matches(keyMsg, m.Keys.Copy):
			if p, ok := m.Selected(); ok {
				copyToClipboard(m, view.DetailsText(m, p), "Product details copied to clipboard.")
			}
		}
		return m, nil

	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			m.CurrentAppMode = model.ModeBrowsing
		}
		return m, nil
	}

	vh := m.ViewportHeight()
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		m.State.Move(-1, vh)
	case key.Matches(keyMsg, m.Keys.Down):
		m.State.Move(1, vh)
	case key.Matches(keyMsg, m.Keys.PageUp):
		m.State.Move(-vh, vh)
	case key.Matches(keyMsg, m.Keys.PageDown):
		m.State.Move(vh, vh)
	case key.Matches(keyMsg, m.Keys.Home):
		m.State.Home(vh)
	case key.Matches(keyMsg, m.Keys.End):
		m.State.End(vh)

	case key.Matches(keyMsg, m.Keys.Details):
		return showDetails(m)
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	case key.Matches(keyMsg, m.Keys.Copy):
		p, ok := m.Selected()
		if !ok {
			m.SetStatus("Nothing selected.", model.StatusBarWarning)
			return m, nil
		}
		copyToClipboard(m, view.DetailsText(m, p), "Product details copied to clipboard.")

	case key.Matches(keyMsg, m.Keys.Search):
		return startSearchDialog(m)
	case key.Matches(keyMsg, m.Keys.Filter):
		return startFilterDialog(m)
	case key.Matches(keyMsg, m.Keys.ClearFilters):
		return clearFilters(m)
	case key.Matches(keyMsg, m.Keys.SortField):
		return startSortDialog(m)
	case key.Matches(keyMsg, m.Keys.SortDir):
		return toggleSortDirection(m)

	case key.Matches(keyMsg, m.Keys.Add):
		return startAddDialog(m)
	case key.Matches(keyMsg, m.Keys.Edit):
		return startEditDialog(m)
	case key.Matches(keyMsg, m.Keys.Duplicate):
		return startDuplicateDialog(m)
	case key.Matches(keyMsg, m.Keys.Delete):
		return startDeleteDialog(m)
	case key.Matches(keyMsg, m.Keys.Export):
		return startExportDialog(m)

	case key.Matches(keyMsg, m.Keys.Reload):
		if err := m.Reload(); err == nil {
			m.SetStatus("Reloaded.", model.StatusBarInfo)
		}
	case key.Matches(keyMsg, m.Keys.Total):
		return showTotal(m)
	}
	return m, nil
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	LogInfo(controllerSubsystem, "Quitting browser")
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Goodbye!\n"
	return m, tea.Quit
}

// showDetails opens the details overlay for the selected row.
func showDetails(m *model.Model) (*model.Model, tea.Cmd) {
	if _, ok := m.Selected(); !ok {
		m.SetStatus("Nothing selected.", model.StatusBarWarning)
		return m, nil
	}
	m.CurrentAppMode = model.ModeDetailsOverlay
	return m, nil
}

func showTotal(m *model.Model) (*model.Model, tea.Cmd) {
	total, err := m.Store.TotalValue(m.Ctx)
	if err != nil {
		LogError(controllerSubsystem, err, "Total value failed")
		m.SetStatus("Error computing total value: "+err.Error(), model.StatusBarError)
		return m, nil
	}
	m.CatalogValue = total
	m.SetStatus("Total inventory value: "+m.FormatMoney(total), model.StatusBarSuccess)
	return m, nil
}

func copyToClipboard(m *model.Model, text, success string) {
	if err := clipboardWriteAll(text); err != nil {
		LogError(controllerSubsystem, err, "Clipboard write failed")
		m.SetStatus("Copy to clipboard failed: "+err.Error(), model.StatusBarError)
		return
	}
	m.SetStatus(success, model.StatusBarSuccess)
}

package view

import (
	"strconv"
	"strings"

	"stockctl/internal/tui/components"
	"stockctl/internal/tui/design"
	"stockctl/internal/tui/model"
	"stockctl/internal/tui/utils"
)

const appTitle = "Inventory Manager"

// Render is the main view function; it dispatches on the current mode.
func Render(m *model.Model) string {
	if m.Width == 0 || m.Height == 0 {
		return "Initializing..."
	}

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return m.QuittingMessage
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeDetailsOverlay:
		return renderDetailsOverlay(m)
	default:
		return renderMain(m)
	}
}

// renderMain draws the table screen: title, column header, separator, the
// visible rows, the help line and the status line.
func renderMain(m *model.Model) string {
	vh := m.ViewportHeight()
	lines := make([]string, 0, vh+model.ReservedRows)

	lines = append(lines, renderTitle(m))
	lines = append(lines, renderTableHeader(m.Width)...)
	lines = append(lines, renderTableRows(m, vh)...)
	lines = append(lines, renderHelpLine(m))
	lines = append(lines, renderStatusLine(m))

	return strings.Join(lines, "\n")
}

func renderTitle(m *model.Model) string {
	sortText := m.State.Query.SortDescription()
	if sortText == "" {
		sortText = "default order"
	}
	return components.NewHeader(appTitle).
		WithSubtitle("Filter: " + m.State.Query.Description()).
		WithRightContent("Sort: " + sortText).
		WithWidth(m.Width).
		Render()
}

func renderHelpLine(m *model.Model) string {
	var text string
	if m.CurrentAppMode == model.ModePrompting && m.Dialog != nil {
		d := m.Dialog
		text = d.Title + " (enter confirm · esc cancel)"
		if m.StatusBarMessageType == model.StatusBarError && m.StatusBarMessage != "" {
			return design.TextErrorStyle.Render(utils.TruncateString(text+" · "+m.StatusBarMessage, m.Width))
		}
	} else {
		text = "click select · double-click details · " + shortHelp(m)
	}
	return design.HelpLineStyle.Render(utils.TruncateString(text, m.Width))
}

func shortHelp(m *model.Model) string {
	parts := make([]string, 0, len(m.Keys.ShortHelp()))
	for _, b := range m.Keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

func renderStatusLine(m *model.Model) string {
	if m.CurrentAppMode == model.ModePrompting && m.Dialog != nil {
		return design.PromptStyle.MaxWidth(m.Width).Render(m.Dialog.Input.View())
	}

	summary := statusSummary(m)
	return components.NewStatusBar(m.Width).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		WithRightText(summary).
		Render()
}

func statusSummary(m *model.Model) string {
	n := len(m.State.Rows)
	noun := "products"
	if n == 1 {
		noun = "product"
	}
	summary := strconv.Itoa(n) + " " + noun + " · shown " + m.FormatMoney(m.DisplayedValue)
	if m.State.Query.IsFiltered() {
		summary += " of " + m.FormatMoney(m.CatalogValue)
	}
	return summary
}

package view

import (
	"fmt"
	"strconv"
	"strings"

	"stockctl/internal/catalog"
	"stockctl/internal/tui/design"
	"stockctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")

	sections := []string{"Navigation:", "Editing:", "Queries:", "Other:"}
	var helpLines []string
	for i, group := range m.Keys.FullHelp() {
		helpLines = append(helpLines, "")
		if i < len(sections) {
			helpLines = append(helpLines, sections[i])
		}
		for _, b := range group {
			helpLines = append(helpLines, helpLine(b))
		}
	}
	helpLines = append(helpLines, "")
	helpLines = append(helpLines, "Mouse:")
	helpLines = append(helpLines, "  click          Select row")
	helpLines = append(helpLines, "  double-click   Show details")
	helpLines = append(helpLines, "  wheel          Move selection")

	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + strings.Join(helpLines, "\n"))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

func helpLine(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("  %-14s %s", h.Key, h.Desc)
}

func renderLogOverlay(m *model.Model) string {
	titleView := design.LogPanelTitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(titleView)

	overlayTotalWidth := int(float64(m.Width) * 0.8)
	overlayTotalHeight := int(float64(m.Height) * 0.7)

	newViewportWidth := max(overlayTotalWidth-design.LogOverlayStyle.GetHorizontalFrameSize(), 0)
	newViewportHeight := max(overlayTotalHeight-design.LogOverlayStyle.GetVerticalFrameSize()-titleHeight, 0)

	dimensionsChanged := m.LogViewport.Width != newViewportWidth || m.LogViewport.Height != newViewportHeight
	m.LogViewport.Width = newViewportWidth
	m.LogViewport.Height = newViewportHeight
	if m.ActivityLogDirty || dimensionsChanged {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog))
		m.ActivityLogDirty = false
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	overlay := design.LogOverlayStyle.Copy().
		Width(overlayTotalWidth - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(overlayTotalHeight - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)

	overlayCanvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceBackground(design.ColorBackgroundOverlay))
	return lipgloss.JoinVertical(lipgloss.Left, overlayCanvas, renderStatusLine(m))
}

// renderDetailsOverlay shows every field of the selected product.
func renderDetailsOverlay(m *model.Model) string {
	p, ok := m.Selected()
	if !ok {
		return renderMain(m)
	}

	titleView := design.HelpTitleStyle.Render("PRODUCT " + strconv.FormatInt(p.ID, 10))
	body := strings.Join(DetailLines(m, p), "\n")
	footer := design.TextSecondaryStyle.Render("y copy  •  Esc close")

	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n\n" + body + "\n\n" + footer)
	overlayCanvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, container,
		lipgloss.WithWhitespaceBackground(design.ColorBackgroundOverlay))
	return lipgloss.JoinVertical(lipgloss.Left, overlayCanvas, renderStatusLine(m))
}

// DetailLines renders p as "Label: value" lines with styled labels.
func DetailLines(m *model.Model, p catalog.Product) []string {
	var lines []string
	for _, f := range detailFields(m, p) {
		label := design.DetailLabelStyle.Render(fmt.Sprintf("%-12s", f[0]+":"))
		value := f[1]
		if f[0] == "Quantity" && m.IsLowStock(p) {
			value += design.TextWarningStyle.Render("  (low stock)")
		}
		lines = append(lines, label+" "+value)
	}
	return lines
}

// DetailsText is the plain-text form of a product copied to the clipboard.
func DetailsText(m *model.Model, p catalog.Product) string {
	var b strings.Builder
	for _, f := range detailFields(m, p) {
		fmt.Fprintf(&b, "%s: %s\n", f[0], f[1])
	}
	return b.String()
}

func detailFields(m *model.Model, p catalog.Product) [][2]string {
	return [][2]string{
		{"ID", strconv.FormatInt(p.ID, 10)},
		{"Code", p.Code},
		{"Name", p.Name},
		{"Description", p.Description},
		{"Category", p.Category},
		{"Quantity", strconv.Itoa(p.Quantity)},
		{"Price", m.FormatMoney(p.Price)},
		{"Location", p.Location},
		{"Value", m.FormatMoney(p.Value())},
	}
}

package view

import (
	"strconv"
	"strings"

	"stockctl/internal/catalog"
	"stockctl/internal/tui/design"
	"stockctl/internal/tui/model"
	"stockctl/internal/tui/utils"
)

type column struct {
	title string
	width int
	cell  func(m *model.Model, p catalog.Product) string
}

var columns = []column{
	{"ID", 4, func(_ *model.Model, p catalog.Product) string { return strconv.FormatInt(p.ID, 10) }},
	{"Code", 12, func(_ *model.Model, p catalog.Product) string { return p.Code }},
	{"Name", 18, func(_ *model.Model, p catalog.Product) string { return p.Name }},
	{"Description", 24, func(_ *model.Model, p catalog.Product) string { return p.Description }},
	{"Category", 12, func(_ *model.Model, p catalog.Product) string { return p.Category }},
	{"Quantity", 9, func(_ *model.Model, p catalog.Product) string { return strconv.Itoa(p.Quantity) }},
	{"Price", 10, func(_ *model.Model, p catalog.Product) string { return p.Price.StringFixed(2) }},
	{"Location", 12, func(_ *model.Model, p catalog.Product) string { return p.Location }},
	{"Value", 12, func(_ *model.Model, p catalog.Product) string { return p.Value().StringFixed(2) }},
}

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// formatRow lays cells out in fixed-width columns and clips the line to
// the terminal width.
func formatRow(cells []string, width int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = utils.FitCell(newlineReplacer.Replace(c), columns[i].width)
	}
	return utils.FitCell(strings.Join(parts, " "), width)
}

func renderTableHeader(width int) []string {
	titles := make([]string, len(columns))
	seps := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.title
		seps[i] = strings.Repeat("-", c.width)
	}
	return []string{
		design.TableHeaderStyle.Render(formatRow(titles, width)),
		design.TableSeparatorStyle.Render(formatRow(seps, width)),
	}
}

// renderTableRows always returns exactly vh lines so the help and status
// lines stay anchored to the bottom of the screen.
func renderTableRows(m *model.Model, vh int) []string {
	lines := make([]string, 0, vh)

	if len(m.State.Rows) == 0 {
		lines = append(lines, design.TableEmptyStyle.Render(utils.FitCell("No products to show.", m.Width)))
	} else {
		for i, p := range m.State.Visible(vh) {
			cells := make([]string, len(columns))
			for j, c := range columns {
				cells[j] = c.cell(m, p)
			}
			line := formatRow(cells, m.Width)

			selected := m.State.TopRow+i == m.State.SelectedIndex
			low := m.IsLowStock(p)
			switch {
			case selected && low:
				line = design.TableRowLowStockSelectedStyle.Render(line)
			case selected:
				line = design.TableRowSelectedStyle.Render(line)
			case low:
				line = design.TableRowLowStockStyle.Render(line)
			default:
				line = design.TableRowStyle.Render(line)
			}
			lines = append(lines, line)
		}
	}

	for len(lines) < vh {
		lines = append(lines, strings.Repeat(" ", max(m.Width, 0)))
	}
	return lines
}

package menu

import (
	"strconv"
	"strings"

	"stockctl/internal/catalog"

	"github.com/mattn/go-runewidth"
)

// NoProducts is printed instead of an empty table.
const NoProducts = "No products found."

var tableHeaders = []string{"ID", "Code", "Name", "Description", "Category", "Quantity", "Price", "Location", "Total Value"}

// FormatTable renders rows as a pipe-separated text table sized to its
// widest cells. Widths are measured in terminal cells, not bytes.
func FormatTable(rows []catalog.Product) string {
	if len(rows) == 0 {
		return NoProducts
	}

	cells := make([][]string, 0, len(rows))
	for _, p := range rows {
		cells = append(cells, []string{
			strconv.FormatInt(p.ID, 10),
			p.Code,
			p.Name,
			p.Description,
			p.Category,
			strconv.Itoa(p.Quantity),
			p.Price.StringFixed(2),
			p.Location,
			p.Value().StringFixed(2),
		})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if w := runewidth.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	formatRow := func(row []string) string {
		padded := make([]string, len(row))
		for i, c := range row {
			padded[i] = runewidth.FillRight(c, widths[i])
		}
		return strings.TrimRight(strings.Join(padded, " | "), " ")
	}

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}

	var b strings.Builder
	b.WriteString(formatRow(tableHeaders))
	b.WriteByte('\n')
	b.WriteString(strings.Join(seps, "-+-"))
	for _, row := range cells {
		b.WriteByte('\n')
		b.WriteString(formatRow(row))
	}
	return b.String()
}

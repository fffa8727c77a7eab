package model

import (
	"fmt"

	"stockctl/internal/catalog"
	"stockctl/internal/query"
	"stockctl/pkg/logging"

	"github.com/shopspring/decimal"
)

// Reload re-evaluates the current query and replaces the rows. On failure the
// rows are cleared and the error is shown on the status line; the error is
// also returned so callers do not overwrite that status.
func (m *Model) Reload() error {
	vh := m.ViewportHeight()

	rows, err := query.Evaluate(m.Ctx, m.Store, m.State.Query)
	if err != nil {
		logging.Error(modelSubsystem, err, "Reload failed for %s", m.State.Query.Description())
		m.State.SetRows(nil, vh)
		m.DisplayedValue = decimal.Zero
		m.SetStatus(fmt.Sprintf("Error loading data: %v", err), StatusBarError)
		return err
	}
	m.State.SetRows(rows, vh)
	m.DisplayedValue = catalog.TotalValue(rows)

	total, err := m.Store.TotalValue(m.Ctx)
	if err != nil {
		logging.Warn(modelSubsystem, "Could not compute catalog value: %v", err)
	} else {
		m.CatalogValue = total
	}

	logging.Debug(modelSubsystem, "Loaded %d rows for %s", len(rows), m.State.Query.Description())
	return nil
}

// IsLowStock reports whether p should be highlighted.
func (m *Model) IsLowStock(p catalog.Product) bool {
	return p.Quantity <= m.LowStockWarning
}

// FormatMoney renders d with two decimals and the configured currency.
func (m *Model) FormatMoney(d decimal.Decimal) string {
	if m.Currency == "" {
		return d.StringFixed(2)
	}
	return m.Currency + " " + d.StringFixed(2)
}

package model

import (
	"stockctl/internal/catalog"
	"stockctl/internal/query"
)

// ViewportHeight converts a terminal height into visible table rows. It is
// never less than one so that clamping stays well defined on tiny screens.
func ViewportHeight(termHeight int) int {
	h := termHeight - ReservedRows
	if h < 1 {
		return 1
	}
	return h
}

// ViewState is the scrollable table: the current result set, the selected
// row and the first visible row. After every mutating method
//
//	TopRow <= SelectedIndex < TopRow+vh  and  SelectedIndex < len(Rows)
//
// hold, with both indexes zero for an empty result set.
type ViewState struct {
	Rows          []catalog.Product
	SelectedIndex int
	TopRow        int
	Query         query.Descriptor
}

// Clamp restores the selection and scroll invariants for viewport height vh.
func (v *ViewState) Clamp(vh int) {
	if vh < 1 {
		vh = 1
	}
	if len(v.Rows) == 0 {
		v.SelectedIndex = 0
		v.TopRow = 0
		return
	}
	if v.SelectedIndex >= len(v.Rows) {
		v.SelectedIndex = len(v.Rows) - 1
	}
	if v.SelectedIndex < 0 {
		v.SelectedIndex = 0
	}
	if v.TopRow < 0 {
		v.TopRow = 0
	}
	if v.SelectedIndex < v.TopRow {
		v.TopRow = v.SelectedIndex
	}
	if v.SelectedIndex >= v.TopRow+vh {
		v.TopRow = v.SelectedIndex - vh + 1
	}
}

// SetRows replaces the result set wholesale and re-clamps.
func (v *ViewState) SetRows(rows []catalog.Product, vh int) {
	v.Rows = rows
	v.Clamp(vh)
}

// Move shifts the selection by delta rows, stopping at either end.
func (v *ViewState) Move(delta, vh int) {
	if len(v.Rows) == 0 {
		return
	}
	v.SelectedIndex += delta
	v.Clamp(vh)
}

// Home selects the first row.
func (v *ViewState) Home(vh int) {
	v.SelectedIndex = 0
	v.TopRow = 0
	v.Clamp(vh)
}

// End selects the last row.
func (v *ViewState) End(vh int) {
	v.SelectedIndex = len(v.Rows) - 1
	v.Clamp(vh)
}

// SelectVisible selects the row drawn at offset within the viewport. It
// reports false, leaving the selection alone, when no row is drawn there.
func (v *ViewState) SelectVisible(offset, vh int) bool {
	if offset < 0 || offset >= vh {
		return false
	}
	idx := v.TopRow + offset
	if idx >= len(v.Rows) {
		return false
	}
	v.SelectedIndex = idx
	v.Clamp(vh)
	return true
}

// SelectID moves the selection onto the row with id, if present.
func (v *ViewState) SelectID(id int64, vh int) bool {
	for i, p := range v.Rows {
		if p.ID == id {
			v.SelectedIndex = i
			v.Clamp(vh)
			return true
		}
	}
	return false
}

// Selected returns the highlighted product, if any.
func (v ViewState) Selected() (catalog.Product, bool) {
	if len(v.Rows) == 0 || v.SelectedIndex < 0 || v.SelectedIndex >= len(v.Rows) {
		return catalog.Product{}, false
	}
	return v.Rows[v.SelectedIndex], true
}

// Visible returns the rows inside the viewport.
func (v ViewState) Visible(vh int) []catalog.Product {
	if len(v.Rows) == 0 || v.TopRow >= len(v.Rows) {
		return nil
	}
	end := v.TopRow + vh
	if end > len(v.Rows) {
		end = len(v.Rows)
	}
	return v.Rows[v.TopRow:end]
}

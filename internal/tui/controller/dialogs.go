package controller

import (
	"fmt"
	"strconv"
	"strings"

	"stockctl/internal/catalog"
	"stockctl/internal/export"
	"stockctl/internal/prompt"
	"stockctl/internal/query"
	"stockctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const dialogSubsystem = "Dialog"

// Filter dialog choices.
const (
	filterNone = iota
	filterCategory
	filterLocation
	filterLowStock
)

func openDialog(m *model.Model, d *model.Dialog) (*model.Model, tea.Cmd) {
	m.Dialog = d
	m.CurrentAppMode = model.ModePrompting
	m.SetStatus("", model.StatusBarInfo)
	LogDebug(m, dialogSubsystem, "Opened %s dialog", d.Kind)
	return m, textinput.Blink
}

func productFields(p catalog.Product, code string) []model.DialogField {
	return []model.DialogField{
		{Key: model.KeyCode, Label: "Code", Required: true, Prefill: code},
		{Key: model.KeyName, Label: "Name", Required: true, Prefill: p.Name},
		{Key: model.KeyDescription, Label: "Description", Prefill: p.Description},
		{Key: model.KeyCategory, Label: "Category", Prefill: p.Category},
		{Key: model.KeyQuantity, Label: "Quantity", Kind: model.FieldInt, Required: true, Prefill: prefillInt(p)},
		{Key: model.KeyPrice, Label: "Price", Kind: model.FieldDecimal, Required: true, Prefill: prefillPrice(p)},
		{Key: model.KeyLocation, Label: "Location", Prefill: p.Location},
	}
}

func prefillInt(p catalog.Product) string {
	if p.ID == 0 {
		return ""
	}
	return strconv.Itoa(p.Quantity)
}

func prefillPrice(p catalog.Product) string {
	if p.ID == 0 {
		return ""
	}
	return p.Price.StringFixed(2)
}

func startAddDialog(m *model.Model) (*model.Model, tea.Cmd) {
	return openDialog(m, model.NewDialog(model.DialogAdd, "Add product", 0,
		productFields(catalog.Product{}, "")...))
}

func startDuplicateDialog(m *model.Model) (*model.Model, tea.Cmd) {
	p, ok := m.Selected()
	if !ok {
		m.SetStatus("Nothing selected.", model.StatusBarWarning)
		return m, nil
	}
	return openDialog(m, model.NewDialog(model.DialogDuplicate,
		fmt.Sprintf("Duplicate product %s", p.Code), p.ID,
		productFields(p, p.Code+"-copy")...))
}

// startEditDialog asks for every mutable field with the current value as
// placeholder; a blank answer keeps the stored value.
func startEditDialog(m *model.Model) (*model.Model, tea.Cmd) {
	p, ok := m.Selected()
	if !ok {
		m.SetStatus("Nothing selected.", model.StatusBarWarning)
		return m, nil
	}
	return openDialog(m, model.NewDialog(model.DialogEdit,
		fmt.Sprintf("Edit product %s (blank keeps current value)", p.Code), p.ID,
		model.DialogField{Key: model.KeyName, Label: "Name", Placeholder: p.Name},
		model.DialogField{Key: model.KeyDescription, Label: "Description", Placeholder: p.Description},
		model.DialogField{Key: model.KeyCategory, Label: "Category", Placeholder: p.Category},
		model.DialogField{Key: model.KeyQuantity, Label: "Quantity", Kind: model.FieldInt, Placeholder: strconv.Itoa(p.Quantity)},
		model.DialogField{Key: model.KeyPrice, Label: "Price", Kind: model.FieldDecimal, Placeholder: p.Price.StringFixed(2)},
		model.DialogField{Key: model.KeyLocation, Label: "Location", Placeholder: p.Location},
	))
}

func startDeleteDialog(m *model.Model) (*model.Model, tea.Cmd) {
	p, ok := m.Selected()
	if !ok {
		m.SetStatus("Nothing selected.", model.StatusBarWarning)
		return m, nil
	}
	return openDialog(m, model.NewDialog(model.DialogDelete,
		fmt.Sprintf("Delete product %s", p.Code), p.ID,
		model.DialogField{Key: model.KeyConfirm, Label: fmt.Sprintf("Delete %s (%s)? (y/N)", p.Code, p.Name), Kind: model.FieldYesNo},
	))
}

func startSearchDialog(m *model.Model) (*model.Model, tea.Cmd) {
	var current string
	if m.State.Query.Kind == query.Search {
		current = m.State.Query.Term
	}
	return openDialog(m, model.NewDialog(model.DialogSearch, "Search by code or name", 0,
		model.DialogField{Key: model.KeyTerm, Label: "Search", Placeholder: "blank cancels", Prefill: current},
	))
}

func startFilterDialog(m *model.Model) (*model.Model, tea.Cmd) {
	return openDialog(m, model.NewDialog(model.DialogFilter, "Filter products", 0,
		model.DialogField{
			Key:         model.KeyFilterMode,
			Label:       "Filter by 1) category 2) location 3) low stock 0) none",
			Kind:        model.FieldInt,
			Required:    true,
			Placeholder: "0-3",
		},
	))
}

func startSortDialog(m *model.Model) (*model.Model, tea.Cmd) {
	return openDialog(m, model.NewDialog(model.DialogSort, "Sort products", 0,
		model.DialogField{
			Key:         model.KeySortField,
			Label:       "Sort by",
			Placeholder: strings.Join(catalog.SortFields(), ", ") + " (blank for default)",
			Prefill:     string(m.State.Query.Sort.Field),
		},
	))
}

func startExportDialog(m *model.Model) (*model.Model, tea.Cmd) {
	return openDialog(m, model.NewDialog(model.DialogExport, "Export to CSV", 0,
		model.DialogField{Key: model.KeyFilename, Label: "File name", Placeholder: export.DefaultFilename(m.Now())},
	))
}

// submitDialogStep validates the current answer. A bad answer keeps the
// dialog on the same step with an error status; the last good answer
// completes the dialog.
func submitDialogStep(m *model.Model) (*model.Model, tea.Cmd) {
	d := m.Dialog
	f := d.Current()
	raw := strings.TrimSpace(d.Input.Value())

	if raw == "" && f.Required {
		m.SetStatus("A value is required.", model.StatusBarError)
		return m, nil
	}
	if raw != "" {
		if problem := answerProblem(f, raw); problem != "" {
			m.SetStatus(problem, model.StatusBarError)
			return m, nil
		}
	}

	d.Accept(raw)
	m.SetStatus("", model.StatusBarInfo)

	if f.Key == model.KeyFilterMode {
		mode, _ := prompt.ParseInt(raw)
		switch mode {
		case filterCategory:
			d.Append(model.DialogField{Key: model.KeyFilterValue, Label: "Category", Placeholder: knownValues(m, mode)})
		case filterLocation:
			d.Append(model.DialogField{Key: model.KeyFilterValue, Label: "Location", Placeholder: knownValues(m, mode)})
		case filterLowStock:
			d.Append(model.DialogField{
				Key:         model.KeyThreshold,
				Label:       "Quantity at or below",
				Kind:        model.FieldInt,
				Placeholder: strconv.Itoa(m.LowStockWarning),
			})
		}
	}

	if !d.Done() {
		return m, nil
	}
	return completeDialog(m)
}

// knownValues lists the categories or locations in use as the placeholder
// for the filter value step.
func knownValues(m *model.Model, mode int) string {
	list := m.Store.Categories
	if mode == filterLocation {
		list = m.Store.Locations
	}
	values, err := list(m.Ctx)
	if err != nil {
		LogWarn(dialogSubsystem, "Could not list filter values: %v", err)
		return "blank cancels"
	}
	if len(values) == 0 {
		return "blank cancels"
	}
	return strings.Join(values, ", ") + " (blank cancels)"
}

// answerProblem returns the message to show for an invalid answer, or ""
// when the answer is acceptable.
func answerProblem(f model.DialogField, raw string) string {
	switch f.Kind {
	case model.FieldInt:
		n, err := prompt.ParseInt(raw)
		if err != nil {
			return fmt.Sprintf("Invalid input: %v. Please enter a whole number.", err)
		}
		switch f.Key {
		case model.KeyQuantity:
			if err := catalog.ValidateQuantity(n); err != nil {
				return capitalize(err.Error())
			}
		case model.KeyThreshold:
			if n < 0 {
				return capitalize(catalog.ErrInvalidThreshold.Error())
			}
		case model.KeyFilterMode:
			if n < filterNone || n > filterLowStock {
				return "Invalid option. Choose 0, 1, 2 or 3."
			}
		}
	case model.FieldDecimal:
		d, err := prompt.ParseDecimal(raw)
		if err != nil {
			return fmt.Sprintf("Invalid input: %v. Please enter a number.", err)
		}
		if err := catalog.ValidatePrice(d); err != nil {
			return capitalize(err.Error())
		}
	case model.FieldText:
		if f.Key == model.KeySortField {
			if _, err := catalog.ParseSortField(raw); err != nil {
				return capitalize(err.Error())
			}
		}
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// completeDialog runs the operation the dialog collected input for.
func completeDialog(m *model.Model) (*model.Model, tea.Cmd) {
	d := m.Dialog
	closeDialog(m)
	LogDebug(m, dialogSubsystem, "Completing %s dialog", d.Kind)

	switch d.Kind {
	case model.DialogAdd, model.DialogDuplicate:
		return completeAdd(m, d)
	case model.DialogEdit:
		return completeEdit(m, d)
	case model.DialogDelete:
		return completeDelete(m, d)
	case model.DialogSearch:
		term := d.Answer(model.KeyTerm)
		if term == "" {
			m.SetStatus("Search cancelled.", model.StatusBarInfo)
			return m, nil
		}
		q := m.State.Query.WithoutFilter()
		q.Kind = query.Search
		q.Term = term
		return applyQuery(m, q)
	case model.DialogFilter:
		return completeFilter(m, d)
	case model.DialogSort:
		field, _ := catalog.ParseSortField(d.Answer(model.KeySortField))
		q := m.State.Query
		q.Sort.Field = field
		return applyQuery(m, q)
	case model.DialogExport:
		return completeExport(m, d)
	}
	return m, nil
}

func newProductFromAnswers(d *model.Dialog) catalog.NewProduct {
	qty, _ := prompt.ParseInt(d.Answer(model.KeyQuantity))
	price, _ := prompt.ParseDecimal(d.Answer(model.KeyPrice))
	return catalog.NewProduct{
		Code:        d.Answer(model.KeyCode),
		Name:        d.Answer(model.KeyName),
		Description: d.Answer(model.KeyDescription),
		Category:    d.Answer(model.KeyCategory),
		Quantity:    qty,
		Price:       price,
		Location:    d.Answer(model.KeyLocation),
	}
}

func completeAdd(m *model.Model, d *model.Dialog) (*model.Model, tea.Cmd) {
	id, err := m.Store.Add(m.Ctx, newProductFromAnswers(d))
	if err != nil {
		return mutationFailed(m, "Add", err)
	}
	if err := m.Reload(); err != nil {
		return m, nil
	}
	m.State.SelectID(id, m.ViewportHeight())
	m.SetStatus(fmt.Sprintf("Product added (id %d).", id), model.StatusBarSuccess)
	return m, nil
}

// patchFromAnswers turns the non-blank edit answers into a Patch.
func patchFromAnswers(d *model.Dialog) catalog.Patch {
	var p catalog.Patch
	if v := d.Answer(model.KeyName); v != "" {
		p.Name = catalog.Some(v)
	}
	if v := d.Answer(model.KeyDescription); v != "" {
		p.Description = catalog.Some(v)
	}
	if v := d.Answer(model.KeyCategory); v != "" {
		p.Category = catalog.Some(v)
	}
	if v := d.Answer(model.KeyQuantity); v != "" {
		q, _ := prompt.ParseInt(v)
		p.Quantity = catalog.Some(q)
	}
	if v := d.Answer(model.KeyPrice); v != "" {
		price, _ := prompt.ParseDecimal(v)
		p.Price = catalog.Some(price)
	}
	if v := d.Answer(model.KeyLocation); v != "" {
		p.Location = catalog.Some(v)
	}
	return p
}

func completeEdit(m *model.Model, d *model.Dialog) (*model.Model, tea.Cmd) {
	found, err := m.Store.Update(m.Ctx, d.TargetID, patchFromAnswers(d))
	if err != nil {
		return mutationFailed(m, "Update", err)
	}
	if !found {
		m.SetStatus("Product not found.", model.StatusBarError)
		return m, nil
	}
	if err := m.Reload(); err != nil {
		return m, nil
	}
	m.State.SelectID(d.TargetID, m.ViewportHeight())
	m.SetStatus("Product updated.", model.StatusBarSuccess)
	return m, nil
}

func completeDelete(m *model.Model, d *model.Dialog) (*model.Model, tea.Cmd) {
	if !prompt.ParseYesNo(d.Answer(model.KeyConfirm)) {
		m.SetStatus("Deletion cancelled.", model.StatusBarInfo)
		return m, nil
	}
	found, err := m.Store.Delete(m.Ctx, d.TargetID)
	if err != nil {
		return mutationFailed(m, "Delete", err)
	}
	if !found {
		m.SetStatus("Product not found.", model.StatusBarError)
		return m, nil
	}
	if err := m.Reload(); err != nil {
		return m, nil
	}
	m.SetStatus("Product deleted.", model.StatusBarSuccess)
	return m, nil
}

func completeFilter(m *model.Model, d *model.Dialog) (*model.Model, tea.Cmd) {
	mode, _ := prompt.ParseInt(d.Answer(model.KeyFilterMode))
	q := m.State.Query.WithoutFilter()

	switch mode {
	case filterCategory, filterLocation:
		value := d.Answer(model.KeyFilterValue)
		if value == "" {
			m.SetStatus("Filter cancelled.", model.StatusBarInfo)
			return m, nil
		}
		q.Kind = query.ByCategory
		if mode == filterLocation {
			q.Kind = query.ByLocation
		}
		q.Value = value
	case filterLowStock:
		q.Kind = query.LowStock
		q.Threshold = m.LowStockWarning
		if v := d.Answer(model.KeyThreshold); v != "" {
			q.Threshold, _ = prompt.ParseInt(v)
		}
	}
	return applyQuery(m, q)
}

func completeExport(m *model.Model, d *model.Dialog) (*model.Model, tea.Cmd) {
	path, err := m.Exporter.Export(m.Ctx, m.Store, d.Answer(model.KeyFilename))
	if err != nil {
		LogError(dialogSubsystem, err, "Export failed")
		m.SetStatus("Export failed: "+err.Error(), model.StatusBarError)
		return m, nil
	}
	m.SetStatus("Inventory exported to: "+path, model.StatusBarSuccess)
	return m, nil
}

// applyQuery replaces the active query and reloads. A failing reload leaves
// its own error status in place.
func applyQuery(m *model.Model, q query.Descriptor) (*model.Model, tea.Cmd) {
	m.State.Query = q
	if err := m.Reload(); err != nil {
		return m, nil
	}
	m.SetStatus(fmt.Sprintf("Showing %s (%d rows).", describeQuery(q), len(m.State.Rows)), model.StatusBarInfo)
	return m, nil
}

func describeQuery(q query.Descriptor) string {
	if s := q.SortDescription(); s != "" {
		return q.Description() + ", sorted by " + s
	}
	return q.Description()
}

func clearFilters(m *model.Model) (*model.Model, tea.Cmd) {
	return applyQuery(m, query.Descriptor{Kind: query.All})
}

func toggleSortDirection(m *model.Model) (*model.Model, tea.Cmd) {
	q := m.State.Query
	q.Sort.Descending = !q.Sort.Descending
	return applyQuery(m, q)
}

// mutationFailed reports a failed store call. The rows are left as they were.
func mutationFailed(m *model.Model, op string, err error) (*model.Model, tea.Cmd) {
	if catalog.IsValidationError(err) {
		LogWarn(dialogSubsystem, "%s rejected: %v", op, err)
	} else {
		LogError(dialogSubsystem, err, "%s failed", op)
	}
	m.SetStatus(op+" failed: "+err.Error(), model.StatusBarError)
	return m, nil
}

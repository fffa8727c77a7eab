package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// DialogKind identifies which operation a dialog collects input for.
type DialogKind int

const (
	DialogAdd DialogKind = iota
	DialogEdit
	DialogDuplicate
	DialogDelete
	DialogSearch
	DialogFilter
	DialogSort
	DialogExport
)

// String makes DialogKind satisfy the fmt.Stringer interface.
func (k DialogKind) String() string {
	switch k {
	case DialogAdd:
		return "Add"
	case DialogEdit:
		return "Edit"
	case DialogDuplicate:
		return "Duplicate"
	case DialogDelete:
		return "Delete"
	case DialogSearch:
		return "Search"
	case DialogFilter:
		return "Filter"
	case DialogSort:
		return "Sort"
	case DialogExport:
		return "Export"
	default:
		return "Unknown"
	}
}

// FieldKind selects the parser applied to a dialog answer.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldInt
	FieldDecimal
	FieldYesNo
)

// Answer keys shared by the dialog builders and the controller.
const (
	KeyCode        = "code"
	KeyName        = "name"
	KeyDescription = "description"
	KeyCategory    = "category"
	KeyQuantity    = "quantity"
	KeyPrice       = "price"
	KeyLocation    = "location"
	KeyConfirm     = "confirm"
	KeyTerm        = "term"
	KeyFilterMode  = "filterMode"
	KeyFilterValue = "filterValue"
	KeyThreshold   = "threshold"
	KeySortField   = "sortField"
	KeyFilename    = "filename"
)

// DialogField is one prompt in a dialog.
type DialogField struct {
	Key   string
	Label string
	Kind  FieldKind
	// Required rejects a blank answer; otherwise blank is recorded as "".
	Required    bool
	Placeholder string
	Prefill     string
}

// Dialog is a multi-step prompt. Answers are stored raw (trimmed) by key
// once they pass validation.
type Dialog struct {
	Kind     DialogKind
	Title    string
	Fields   []DialogField
	Step     int
	Answers  map[string]string
	TargetID int64
	Input    textinput.Model
}

// NewDialog creates a dialog positioned on its first field.
func NewDialog(kind DialogKind, title string, targetID int64, fields ...DialogField) *Dialog {
	ti := textinput.New()
	ti.CharLimit = 256
	d := &Dialog{
		Kind:     kind,
		Title:    title,
		Fields:   fields,
		Answers:  make(map[string]string, len(fields)),
		TargetID: targetID,
		Input:    ti,
	}
	d.loadStep()
	return d
}

// Current returns the field being asked.
func (d *Dialog) Current() DialogField {
	return d.Fields[d.Step]
}

// Done reports whether every field has been answered.
func (d *Dialog) Done() bool {
	return d.Step >= len(d.Fields)
}

// Append adds fields after the current ones. A dialog that had already run
// out of fields moves on to the first appended one.
func (d *Dialog) Append(fields ...DialogField) {
	wasDone := d.Done()
	d.Fields = append(d.Fields, fields...)
	if wasDone && !d.Done() {
		d.loadStep()
	}
}

// Accept records answer for the current field and moves to the next one.
func (d *Dialog) Accept(answer string) {
	d.Answers[d.Current().Key] = strings.TrimSpace(answer)
	d.Step++
	if !d.Done() {
		d.loadStep()
	}
}

// Answer returns the recorded answer for key.
func (d *Dialog) Answer(key string) string {
	return d.Answers[key]
}

func (d *Dialog) loadStep() {
	f := d.Current()
	d.Input.Reset()
	d.Input.Prompt = f.Label + ": "
	d.Input.Placeholder = f.Placeholder
	d.Input.SetValue(f.Prefill)
	d.Input.CursorEnd()
	d.Input.Focus()
}

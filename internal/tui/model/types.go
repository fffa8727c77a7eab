package model

import (
	"context"
	"time"

	"stockctl/internal/catalog"
	"stockctl/internal/export"
	"stockctl/internal/query"
	"stockctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/shopspring/decimal"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeBrowsing AppMode = iota
	ModePrompting
	ModeDetailsOverlay
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeBrowsing:
		return "Browsing"
	case ModePrompting:
		return "Prompting"
	case ModeDetailsOverlay:
		return "DetailsOverlay"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Layout constants. The first table row is drawn below the title, the
// column header and the separator; the help line and the status line sit
// at the bottom.
const (
	ReservedRows        = 5
	TableTopRow         = 3
	MaxActivityLogLines = 1000
)

// Catalog is the store surface the browser reads and mutates.
type Catalog interface {
	query.Reader
	Get(ctx context.Context, id int64) (catalog.Product, bool, error)
	Add(ctx context.Context, np catalog.NewProduct) (int64, error)
	Update(ctx context.Context, id int64, patch catalog.Patch) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	TotalValue(ctx context.Context) (decimal.Decimal, error)
	Categories(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
}

// TUIConfig carries everything InitialModel needs.
type TUIConfig struct {
	Context             context.Context
	Store               Catalog
	Exporter            export.Exporter
	Currency            string
	LowStockWarning     int
	DoubleClickInterval time.Duration
	DebugMode           bool
	LogChannel          <-chan logging.LogEntry
	// Now is the clock used for double-click detection; time.Now when nil.
	Now func() time.Time
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	Details      key.Binding
	Search       key.Binding
	Filter       key.Binding
	ClearFilters key.Binding
	SortField    key.Binding
	SortDir      key.Binding
	Add          key.Binding
	Edit         key.Binding
	Duplicate    key.Binding
	Delete       key.Binding
	Reload       key.Binding
	Total        key.Binding
	Export       key.Binding
	Copy         key.Binding
	ToggleLog    key.Binding
	Help         key.Binding
	Esc          key.Binding
	Quit         key.Binding
}

// Model represents the state of the terminal browser.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode  AppMode
	DebugMode       bool
	QuittingMessage string

	// Collaborators
	Ctx      context.Context
	Store    Catalog
	Exporter export.Exporter
	Now      func() time.Time

	// Presentation settings
	Currency            string
	LowStockWarning     int
	DoubleClickInterval time.Duration

	// Table state and value summary of the last successful reload
	State          ViewState
	DisplayedValue decimal.Decimal
	CatalogValue   decimal.Decimal

	// Active dialog while in ModePrompting
	Dialog *Dialog

	// Double-click tracking
	LastClickRow int
	LastClickAt  time.Time

	// UI State & Output
	StatusBarMessage     string
	StatusBarMessageType MessageType
	Keys                 KeyMap
	Help                 help.Model
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model

	// Logging
	LogChannel <-chan logging.LogEntry
}

// ViewportHeight is the number of table rows that fit on screen.
func (m *Model) ViewportHeight() int {
	return ViewportHeight(m.Height)
}

// SetStatus replaces the status line message.
func (m *Model) SetStatus(message string, msgType MessageType) {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType
}

// Selected returns the highlighted product, if any.
func (m *Model) Selected() (catalog.Product, bool) {
	return m.State.Selected()
}

package view

import (
	"context"
	"strings"
	"testing"

	"stockctl/internal/catalog"
	"stockctl/internal/query"
	"stockctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, products ...catalog.NewProduct) *model.Model {
	t.Helper()
	s, err := catalog.Open(catalog.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	for _, p := range products {
		_, err := s.Add(context.Background(), p)
		require.NoError(t, err)
	}

	m := model.InitialModel(model.TUIConfig{Store: s, Currency: "€", LowStockWarning: 5})
	m.Width = 160
	m.Height = 12
	return m
}

func sampleProducts() []catalog.NewProduct {
	return []catalog.NewProduct{
		{Code: "A1", Name: "Widget", Category: "tools", Quantity: 10, Price: decimal.RequireFromString("2.50"), Location: "shelf 1"},
		{Code: "A2", Name: "Gadget", Category: "toys", Quantity: 3, Price: decimal.RequireFromString("9.99")},
	}
}

func TestRender_BeforeFirstResize(t *testing.T) {
	m := newTestModel(t)
	m.Width, m.Height = 0, 0
	assert.Equal(t, "Initializing...", Render(m))
}

func TestRender_MainScreenLayout(t *testing.T) {
	m := newTestModel(t, sampleProducts()...)
	out := Render(m)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, m.Height)
	assert.Contains(t, lines[0], appTitle)
	assert.Contains(t, lines[0], "all products")
	assert.Contains(t, lines[1], "Code")
	assert.Contains(t, lines[1], "Value")
	assert.Contains(t, lines[2], "----")
	assert.Contains(t, lines[model.TableTopRow], "A1")
	assert.Contains(t, lines[model.TableTopRow], "25.00")
	assert.Contains(t, lines[model.TableTopRow+1], "A2")
	assert.Contains(t, lines[m.Height-2], "double-click details")
	assert.Contains(t, lines[m.Height-1], "2 products · shown € 54.97")

	for i, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), m.Width, "line %d too wide", i)
	}
}

func TestRender_EmptyCatalog(t *testing.T) {
	m := newTestModel(t)
	out := Render(m)
	assert.Contains(t, out, "No products to show.")
	assert.Contains(t, out, "0 products · shown € 0.00")
}

func TestRender_FilteredShowsCatalogTotal(t *testing.T) {
	m := newTestModel(t, sampleProducts()...)
	m.State.Query = query.Descriptor{Kind: query.ByCategory, Value: "toys", Sort: catalog.Sort{Field: catalog.SortPrice, Descending: true}}
	require.NoError(t, m.Reload())

	out := Render(m)
	assert.Contains(t, out, `category = "toys"`)
	assert.Contains(t, out, "price ↓")
	assert.Contains(t, out, "1 product · shown € 29.97 of € 54.97")
	assert.NotContains(t, out, "Widget")
}

func TestRender_NarrowTerminalClipsRows(t *testing.T) {
	m := newTestModel(t, sampleProducts()...)
	m.Width = 30
	for i, l := range strings.Split(Render(m), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(l), 30, "line %d too wide", i)
	}
}

func TestRender_PromptingShowsDialog(t *testing.T) {
	m := newTestModel(t, sampleProducts()...)
	m.CurrentAppMode = model.ModePrompting
	m.Dialog = model.NewDialog(model.DialogSearch, "Search products", 0,
		model.DialogField{Key: model.KeyTerm, Label: "Search term"})
	m.SetStatus("A value is required.", model.StatusBarError)

	lines := strings.Split(Render(m), "\n")
	assert.Contains(t, lines[m.Height-2], "Search products")
	assert.Contains(t, lines[m.Height-2], "A value is required.")
	assert.Contains(t, lines[m.Height-1], "Search term: ")
}

func TestRender_Overlays(t *testing.T) {
	m := newTestModel(t, sampleProducts()...)
	m.Height = 40

	m.CurrentAppMode = model.ModeHelpOverlay
	assert.Contains(t, Render(m), "KEYBOARD SHORTCUTS")

	m.CurrentAppMode = model.ModeDetailsOverlay
	m.State.SelectedIndex = 1
	out := Render(m)
	assert.Contains(t, out, "PRODUCT 2")
	assert.Contains(t, out, "Gadget")
	assert.Contains(t, out, "(low stock)")

	model.AddRawLineToActivityLog(m, "12:00:00 [INFO] Catalog: opened")
	m.CurrentAppMode = model.ModeLogOverlay
	out = Render(m)
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "opened")
	assert.False(t, m.ActivityLogDirty)

	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye"
	assert.Equal(t, "Bye", Render(m))
}

func TestDetailsText(t *testing.T) {
	m := newTestModel(t, sampleProducts()...)
	p, ok := m.Selected()
	require.True(t, ok)

	text := DetailsText(m, p)
	assert.Contains(t, text, "Code: A1\n")
	assert.Contains(t, text, "Price: € 2.50\n")
	assert.Contains(t, text, "Value: € 25.00\n")
	assert.Contains(t, text, "Location: shelf 1\n")
}

func TestPrepareLogContent(t *testing.T) {
	out := PrepareLogContent([]string{"a [ERROR] x", "b [WARN] y", "c [DEBUG] z", "d"})
	assert.Len(t, strings.Split(out, "\n"), 4)
	assert.Contains(t, out, "[ERROR] x")
	assert.Empty(t, PrepareLogContent(nil))
}

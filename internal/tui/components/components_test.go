package components

import (
	"strings"
	"testing"

	"stockctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar_Render(t *testing.T) {
	out := NewStatusBar(60).
		WithMessage("Product added.", model.StatusBarSuccess).
		WithRightText("2 rows").
		Render()

	assert.Contains(t, out, "Product added.")
	assert.Contains(t, out, "2 rows")
	assert.Equal(t, 60, lipgloss.Width(out))
}

func TestStatusBar_ErrorPrefixAndNarrowWidth(t *testing.T) {
	out := NewStatusBar(20).
		WithMessage("boom", model.StatusBarError).
		WithRightText("a very long summary that cannot fit").
		Render()

	assert.Contains(t, out, "[ERROR] boom")
	assert.NotContains(t, out, "summary")
	assert.LessOrEqual(t, lipgloss.Width(out), 20)
}

func TestHeader_Render(t *testing.T) {
	out := NewHeader("Inventory").
		WithSubtitle("all products").
		WithRightContent("price ↓").
		WithWidth(50).
		Render()

	assert.True(t, strings.Contains(out, "Inventory | all products"))
	assert.Contains(t, out, "price ↓")
	assert.Equal(t, 50, lipgloss.Width(out))

	narrow := NewHeader("Inventory").WithRightContent("sorted").WithWidth(12).Render()
	assert.NotContains(t, narrow, "sorted")
}

package components

import (
	"strings"

	"stockctl/internal/tui/design"
	"stockctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Header represents the title line
type Header struct {
	Title        string
	Subtitle     string
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	leftContent := h.Title
	if h.Subtitle != "" {
		leftContent += " | " + h.Subtitle
	}

	availableWidth := h.Width - design.HeaderStyle.GetHorizontalFrameSize()
	if availableWidth < 0 {
		availableWidth = 0
	}

	var content string
	if h.RightContent != "" {
		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(h.RightContent)
		if leftWidth+rightWidth+2 <= availableWidth {
			padding := availableWidth - leftWidth - rightWidth
			content = leftContent + strings.Repeat(" ", padding) + h.RightContent
		} else {
			// Not enough space, prioritize left content
			content = utils.TruncateString(leftContent, availableWidth)
		}
	} else {
		content = utils.TruncateString(leftContent, availableWidth)
	}

	return design.HeaderStyle.Copy().
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}

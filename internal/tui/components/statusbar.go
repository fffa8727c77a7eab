package components

import (
	"strings"

	"stockctl/internal/tui/design"
	"stockctl/internal/tui/model"
	"stockctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status line: a message on the left and
// an optional summary on the right.
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	RightText   string
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	inner := s.Width - style.GetHorizontalFrameSize()
	if inner < 0 {
		inner = 0
	}

	message := s.Message
	if s.MessageType == model.StatusBarError && message != "" {
		message = "[ERROR] " + message
	}

	var content string
	leftWidth := lipgloss.Width(message)
	rightWidth := lipgloss.Width(s.RightText)
	switch {
	case s.RightText == "":
		content = utils.TruncateString(message, inner)
	case leftWidth+rightWidth+1 <= inner:
		content = message + strings.Repeat(" ", inner-leftWidth-rightWidth) + s.RightText
	default:
		// Not enough space, the message wins.
		content = utils.TruncateString(message, inner)
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

// getStyle returns the appropriate style based on message type
func (s *StatusBar) getStyle() lipgloss.Style {
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarStyle
	}
}

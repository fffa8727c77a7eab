package utils

import "github.com/mattn/go-runewidth"

// TruncateString cuts s to at most width terminal cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// FitCell truncates or pads s to exactly width terminal cells.
func FitCell(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}

package app

import (
	"io"

	"stockctl/internal/config"
)

// Mode selects the front-end Run starts.
type Mode int

const (
	// ModeBrowse runs the interactive terminal browser.
	ModeBrowse Mode = iota
	// ModeMenu runs the numbered line-oriented menu.
	ModeMenu
)

// String makes Mode satisfy the fmt.Stringer interface.
func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Config holds the application configuration
type Config struct {
	Mode Mode

	// Debug settings
	Debug bool

	// ConfigPath replaces the layered config files when set.
	ConfigPath string
	// DatabasePath overrides database.path from the config files.
	DatabasePath string

	// Menu mode I/O; os.Stdin and os.Stdout when nil.
	In  io.Reader
	Out io.Writer

	// Settings is filled in by NewApplication.
	Settings *config.StockctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(mode Mode, debug bool, configPath, databasePath string) *Config {
	return &Config{
		Mode:         mode,
		Debug:        debug,
		ConfigPath:   configPath,
		DatabasePath: databasePath,
	}
}

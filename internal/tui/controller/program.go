package controller

import (
	"errors"

	"stockctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the catalog browser. The
// first reload happens here, before the alt screen takes over.
func NewProgram(cfg model.TUIConfig, opts ...tea.ProgramOption) (*tea.Program, error) {
	if cfg.Store == nil {
		return nil, errors.New("tui: no catalog store configured")
	}

	m := model.InitialModel(cfg)
	app := NewAppModel(m)

	options := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if cfg.Context != nil {
		options = append(options, tea.WithContext(cfg.Context))
	}
	options = append(options, opts...)

	return tea.NewProgram(app, options...), nil
}

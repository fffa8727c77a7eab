package model

import (
	"context"
	"time"

	"stockctl/internal/query"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const modelSubsystem = "TUIModel"

// InitialModel builds the browser state and performs the first load.
func InitialModel(cfg TUIConfig) *Model {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	m := &Model{
		CurrentAppMode:      ModeBrowsing,
		DebugMode:           cfg.DebugMode,
		Ctx:                 ctx,
		Store:               cfg.Store,
		Exporter:            cfg.Exporter,
		Now:                 now,
		Currency:            cfg.Currency,
		LowStockWarning:     cfg.LowStockWarning,
		DoubleClickInterval: cfg.DoubleClickInterval,
		State:               ViewState{Query: query.Descriptor{Kind: query.All}},
		LastClickRow:        -1,
		Keys:                DefaultKeyMap(),
		Help:                help.New(),
		LogViewport:         viewport.New(0, 0),
		LogChannel:          cfg.LogChannel,
		ActivityLogDirty:    true,
	}

	if m.Store != nil {
		if err := m.Reload(); err == nil {
			m.SetStatus("Press h for help.", StatusBarInfo)
		}
	}
	return m
}

// Init starts listening on the log channel.
func (m *Model) Init() tea.Cmd {
	return ListenForLogEntriesCmd(m.LogChannel)
}

package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/holdem-equity/internal/equitycache"
	"github.com/lox/holdem-equity/internal/tui"
)

// InteractiveCmd launches the Bubble Tea equity explorer.
type InteractiveCmd struct {
	CacheSize int `help:"Number of recent queries to memoize." default:"256"`
}

func (c *InteractiveCmd) Run() error {
	logger := newLogger()

	cache, err := equitycache.New(c.CacheSize)
	if err != nil {
		return err
	}

	model := tui.New(logger, cache)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

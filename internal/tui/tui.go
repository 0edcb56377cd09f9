// Package tui implements an interactive equity explorer: a prompt accepts
// a hero hand, an optional board, and one or more villain ranges, and
// renders the resulting win/tie percentages as they're computed.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-equity/internal/card"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/equitycache"
	"github.com/lox/holdem-equity/internal/ranges"
)

// Model is the Bubble Tea model for the interactive explorer.
type Model struct {
	input    textinput.Model
	output   viewport.Model
	logger   *log.Logger
	cache    *equitycache.Cache
	history  []string
	quitting bool
	width    int
	height   int
}

type queryResultMsg struct {
	query    string
	labels   []string
	equities []equity.Equity
}

type queryErrMsg struct {
	query string
	err   error
}

// New builds an explorer model. cache may be nil, in which case results are
// always recomputed.
func New(logger *log.Logger, cache *equitycache.Cache) *Model {
	ti := textinput.New()
	ti.Placeholder = "AsKs | 2c7d9h | QQ,AKs+"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60
	ti.Prompt = "> "

	vp := viewport.New(80, 20)
	vp.SetContent(infoStyle.Render("enter hero | board | villain ranges, separated by '|' (board is optional)"))

	return &Model{
		input:  ti,
		output: vp,
		logger: logger.WithPrefix("tui"),
		cache:  cache,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.output.Width = msg.Width
		m.output.Height = msg.Height - 4

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			m.input.SetValue("")
			return m, m.runQuery(query)
		}

	case queryResultMsg:
		m.history = append(m.history, renderResult(msg.query, msg.labels, msg.equities))
		m.output.SetContent(strings.Join(m.history, "\n\n"))
		m.output.GotoBottom()
		return m, nil

	case queryErrMsg:
		m.history = append(m.history, fmt.Sprintf("%s\n%s", handStyle.Render(msg.query), errorStyle.Render(msg.err.Error())))
		m.output.SetContent(strings.Join(m.history, "\n\n"))
		m.output.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n\n%s",
		headerStyle.Render(" holdem-equity explorer "),
		m.output.View(),
		m.input.View())
}

// runQuery parses "hero | board | villains" and dispatches the enumeration
// as a Bubble Tea command so the UI stays responsive while it runs.
func (m *Model) runQuery(query string) tea.Cmd {
	return func() tea.Msg {
		hero, board, villainSpecs, err := parseQuery(query)
		if err != nil {
			return queryErrMsg{query: query, err: err}
		}

		if m.cache != nil {
			if cached, ok := m.cache.Get(board, hero, villainSpecs); ok {
				m.logger.Debug("cache hit", "query", query)
				return queryResultMsg{query: query, labels: labels(query, villainSpecs), equities: cached}
			}
		}

		villains := make([]ranges.Table, len(villainSpecs))
		for i, spec := range villainSpecs {
			tbl, perr := ranges.Parse(spec)
			if perr != nil {
				return queryErrMsg{query: query, err: fmt.Errorf("villain %d: %w", i+1, perr)}
			}
			villains[i] = tbl
		}

		out, err := equity.EnumerateParallel(board, hero, villains)
		if err != nil {
			return queryErrMsg{query: query, err: err}
		}
		if m.cache != nil {
			m.cache.Put(board, hero, villainSpecs, out)
		}
		return queryResultMsg{query: query, labels: labels(query, villainSpecs), equities: out}
	}
}

func parseQuery(query string) (hero, board card.CardSet, villainSpecs []string, err error) {
	parts := strings.Split(query, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return 0, 0, nil, fmt.Errorf("expected 'hero | board | villains', got %q", query)
	}

	heroCards, err := card.ParseCards(parts[0])
	if err != nil {
		return 0, 0, nil, fmt.Errorf("hero: %w", err)
	}
	for _, c := range heroCards {
		hero = hero.Add(c)
	}

	villainField := parts[len(parts)-1]
	if len(parts) == 3 && parts[1] != "" {
		boardCards, berr := card.ParseCards(parts[1])
		if berr != nil {
			return 0, 0, nil, fmt.Errorf("board: %w", berr)
		}
		for _, c := range boardCards {
			board = board.Add(c)
		}
	}

	for _, v := range strings.Split(villainField, ";") {
		if v = strings.TrimSpace(v); v != "" {
			villainSpecs = append(villainSpecs, v)
		}
	}
	if len(villainSpecs) == 0 {
		return 0, 0, nil, fmt.Errorf("at least one villain range is required")
	}
	return hero, board, villainSpecs, nil
}

func labels(query string, villainSpecs []string) []string {
	heroLabel := strings.TrimSpace(strings.SplitN(query, "|", 2)[0])
	out := make([]string, 0, len(villainSpecs)+1)
	out = append(out, heroLabel)
	for i, v := range villainSpecs {
		out = append(out, fmt.Sprintf("v%d:%s", i+1, v))
	}
	return out
}

func renderResult(query string, labels []string, equities []equity.Equity) string {
	var b strings.Builder
	b.WriteString(handStyle.Render(query))
	b.WriteByte('\n')
	for i, e := range equities {
		fmt.Fprintf(&b, "  %-16s %s equity  %s win  %s tie\n",
			labels[i],
			equityStyle.Render(fmt.Sprintf("%5.2f%%", e.EquityFraction()*100)),
			winStyle.Render(fmt.Sprintf("%5.2f%%", e.WinFraction()*100)),
			tieStyle.Render(fmt.Sprintf("%5.2f%%", e.TieFraction()*100)))
	}
	return b.String()
}

// Package tui is a symbol-tree browser over a wsindex.Workspace,
// grounded on the teacher's own hand-rolled bubbletea v2 rendering
// approach (internal/tui/view.go in sacenox-symb builds screen content
// as a plain string rather than a bubbles widget tree).
package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/shinyvision/phpindex/internal/symbol"
	"github.com/shinyvision/phpindex/internal/wsindex"
)

// row is one flattened line of the fuzzy-search result list.
type row struct {
	sym *symbol.Symbol
	uri string
}

// Model is the bubbletea model for the symbol browser.
type Model struct {
	ws     *wsindex.Workspace
	width  int
	height int

	query    string
	filtered []row
	cursor   int
	offset   int

	searching bool
}

// New builds a Model over ws. The result list starts empty and is
// filled from a fuzzy search once a query is typed.
func New(ws *wsindex.Workspace) Model {
	m := Model{ws: ws}
	m.rebuild()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) rebuild() {
	if m.query == "" {
		m.filtered = nil
		return
	}
	matches := m.ws.FuzzySearch(m.query, 0.4)
	rows := make([]row, 0, len(matches))
	for _, match := range matches {
		rows = append(rows, row{sym: match.Entry.Symbol, uri: match.Entry.URI})
	}
	m.filtered = rows
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

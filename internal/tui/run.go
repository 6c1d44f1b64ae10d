package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/shinyvision/phpindex/internal/wsindex"
)

// Run starts the symbol browser over ws on the current terminal,
// blocking until the user quits.
func Run(ws *wsindex.Workspace) error {
	p := tea.NewProgram(New(ws))
	_, err := p.Run()
	return err
}

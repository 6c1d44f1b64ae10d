package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// View satisfies tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	return v
}

func (m Model) renderContent() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("phpindex symbol browser"))
	b.WriteString("\n")
	if m.searching {
		b.WriteString(fmt.Sprintf("/%s\n", m.query))
	} else {
		b.WriteString(styleStatus.Render("press / to search, q to quit") + "\n")
	}
	b.WriteString(styleBorder.Render(strings.Repeat("-", max(20, m.width))) + "\n")

	visible := m.height - 4
	if visible < 1 {
		visible = len(m.filtered)
	}
	m.adjustOffset(visible)

	for i := m.offset; i < len(m.filtered) && i < m.offset+visible; i++ {
		line := m.renderRow(m.filtered[i])
		if i == m.cursor {
			line = styleSelected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *Model) adjustOffset(visible int) {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m Model) renderRow(r row) string {
	kind := styleKind.Render(r.sym.Kind.String())
	return fmt.Sprintf("%s  %-10s %s", r.uri, kind, r.sym.Name)
}

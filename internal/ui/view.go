package ui

import (
	"fmt"
	"strings"
)

// listHeight is how many result rows fit between the input line and the
// status line
func (m *Model) listHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 10
	}
	if m.cfg.UI.MaxResults > 0 && h > m.cfg.UI.MaxResults {
		h = m.cfg.UI.MaxResults
	}
	return h
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("quicklaunch"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	visible := m.listHeight()
	end := m.offset + visible
	if end > len(m.results) {
		end = len(m.results)
	}

	if len(m.results) == 0 {
		if m.input.Value() != "" {
			b.WriteString(m.styles.Dim.Render("no matches"))
		} else if !m.scanning {
			b.WriteString(m.styles.Dim.Render("no applications found"))
		}
		b.WriteString("\n")
	}

	for i := m.offset; i < end; i++ {
		entry := m.results[i]

		name := m.styles.Name.Render(entry.Name)
		if i == m.cursor {
			name = m.styles.SelectionBg.Render("▶ " + entry.Name)
		} else {
			name = "  " + name
		}

		line := fmt.Sprintf("%s  %s", name, m.styles.Exec.Render(entry.Exec))
		if entry.Scored {
			line += "  " + m.styles.Score.Render(fmt.Sprintf("(%d)", entry.Score))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if end < len(m.results) {
		b.WriteString(m.styles.Scroll.Render(fmt.Sprintf("… %d more", len(m.results)-end)))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())

	return m.styles.Main.Render(b.String())
}

func (m *Model) statusLine() string {
	parts := []string{}

	if m.scanning {
		parts = append(parts, "⋯ scanning")
	} else {
		parts = append(parts, fmt.Sprintf("%d/%d", len(m.results), m.entries.Len()))
	}

	if len(m.recent) > 0 {
		parts = append(parts, m.styles.Dim.Render("recent: "+strings.Join(m.recent, ", ")))
	}

	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}

	parts = append(parts, m.styles.Dim.Render("enter launch · ctrl+o inspect · esc quit"))

	return m.styles.Status.Render(strings.Join(parts, "  |  "))
}

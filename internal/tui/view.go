package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showroom/internal/showcase"
)

// View renders the current model state.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var body string
	switch {
	case m.showHelp:
		m.help.ShowAll = true
		body = lipgloss.NewStyle().Height(m.bodyHeight()).Render(m.help.View(m.keys))
	case m.Mode() == ViewList:
		body = m.list.View()
	default:
		body = m.renderDetail()
	}

	m.help.ShowAll = false
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.help.View(m.keys),
	)
}

func (m Model) renderHeader() string {
	s := m.current()
	if s == nil {
		title := titleStyle.Render(m.root.Title)
		status := statusStyle.Render(fmt.Sprintf("%d topics", len(m.entries)))
		return lipgloss.JoinVertical(lipgloss.Left, title, status)
	}

	crumbs := make([]string, 0, len(m.stack))
	for _, open := range m.stack[:len(m.stack)-1] {
		crumbs = append(crumbs, crumbStyle.Render(open.view.Topic().Title))
	}
	crumbs = append(crumbs, titleStyle.Render(s.view.Topic().Title))

	_, ctx := s.focusedContext()
	status := fmt.Sprintf("preview: %s · index: %s · line %d/%d",
		showcase.StyleName(ctx.PreviewStyle()),
		showcase.StyleName(ctx.IndexStyle()),
		s.view.Scroll().Offset()+1,
		s.view.Len(),
	)
	if r, ok := s.focused(); ok {
		status = fmt.Sprintf("%s · focus: %s", status, r.Child.Node().Topic().Title)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(crumbs, crumbStyle.Render(" › ")),
		statusStyle.Render(status),
	)
}

func (m Model) renderDetail() string {
	s := m.current()
	lines := s.view.Window(s.view.Scroll().Offset(), s.view.Height())
	for len(lines) < s.view.Height() {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderList() string {
	rows := make([]string, 0, len(m.entries))
	for i, entry := range m.entries {
		label := strings.Repeat("  ", entry.depth) + entry.topic.Title
		if entry.topic.HasChildren() {
			label += depthStyle.Render(fmt.Sprintf(" (%d)", len(entry.topic.Children)))
		}
		if i == m.cursor {
			rows = append(rows, selectedItemStyle.Render(label))
			continue
		}
		rows = append(rows, itemStyle.Render(label))
	}
	return strings.Join(rows, "\n")
}

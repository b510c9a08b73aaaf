package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showroom/internal/showcase"
	"github.com/alexisbeaulieu97/showroom/internal/topic"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.Width = msg.Width
		m.list.Height = m.bodyHeight()
		m.list.SetContent(m.renderList())
		m.revealCursor()
		for _, s := range m.stack {
			if !m.fixedWidth {
				ctx := s.view.Context()
				s.view.SetContext(ctx.WithRender(ctx.Render().WithWidth(m.width)))
			}
			s.view.SetHeight(m.bodyHeight())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case NavigateMsg:
		t, ok := topic.Find(m.root, msg.ID)
		if !ok {
			m.log.ForTopic(msg.ID).Warn("navigate to unknown topic")
			return m, nil
		}
		m.log.ForTopic(msg.ID).Debug("open topic")
		m.stack = append(m.stack, m.open(t))
		m.showHelp = false
		return m, nil

	case BackMsg:
		if len(m.stack) > 0 {
			m.stack = m.stack[:len(m.stack)-1]
		}
		return m, nil

	case frameMsg:
		s := m.current()
		if s == nil || !s.view.Scroll().Advance(frameInterval) {
			m.ticking = false
			return m, nil
		}
		return m, frame()
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.current() == nil {
		return m.handleListKey(msg)
	}
	return m.handleDetailKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.list.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.list.Height)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.entries))
	case key.Matches(msg, m.keys.Open):
		if len(m.entries) == 0 {
			return m, nil
		}
		return m, navigate(m.entries[m.cursor].topic.ID)
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.entries)-1)
	m.list.SetContent(m.renderList())
	m.revealCursor()
}

func (m *Model) revealCursor() {
	switch {
	case m.cursor < m.list.YOffset:
		m.list.SetYOffset(m.cursor)
	case m.cursor >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.current()
	scroll := s.view.Scroll()

	switch {
	case key.Matches(msg, m.keys.Back):
		return m, back
	case key.Matches(msg, m.keys.Up):
		scroll.ScrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		scroll.ScrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		scroll.ScrollBy(-s.view.Height())
	case key.Matches(msg, m.keys.PageDown):
		scroll.ScrollBy(s.view.Height())
	case key.Matches(msg, m.keys.Top):
		m.focus(s, "")
		scroll.ScrollTo(s.view.Topic().ID)
	case key.Matches(msg, m.keys.Next):
		m.cycleFocus(s, 1)
	case key.Matches(msg, m.keys.Prev):
		m.cycleFocus(s, -1)
	case key.Matches(msg, m.keys.Parent):
		m.toParent(s)
	case key.Matches(msg, m.keys.Open):
		if r, ok := s.focused(); ok {
			return m, navigate(r.ID)
		}
	case key.Matches(msg, m.keys.PrevPage):
		m.turnPage(s, -1)
	case key.Matches(msg, m.keys.NextPage):
		m.turnPage(s, 1)
	case key.Matches(msg, m.keys.Preview):
		id, ctx := s.focusedContext()
		next := showcase.NextPreviewStyle(ctx.PreviewStyle())
		s.view.SetContext(s.view.Context().OverrideAt(id, func(c showcase.Context) showcase.Context {
			return c.WithPreviewStyle(next)
		}))
	case key.Matches(msg, m.keys.Index):
		id, ctx := s.focusedContext()
		next := showcase.NextIndexStyle(ctx.IndexStyle())
		s.view.SetContext(s.view.Context().OverrideAt(id, func(c showcase.Context) showcase.Context {
			return c.WithIndexStyle(next)
		}))
	}

	return m.animate()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := m.current()
	if s == nil {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.SetYOffset(m.list.YOffset - mouseStep)
		case tea.MouseButtonWheelDown:
			m.list.SetYOffset(m.list.YOffset + mouseStep)
		}
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		s.view.Scroll().ScrollBy(-mouseStep)
	case msg.Button == tea.MouseButtonWheelDown:
		s.view.Scroll().ScrollBy(mouseStep)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		row := msg.Y - headerHeight
		if row < 0 || row >= s.view.Height() {
			return m, nil
		}
		line := s.view.Scroll().Offset() + row
		if entry, ok := s.view.IndexEntryAt(line); ok {
			return m, navigate(entry.ID)
		}
		r, ok := s.view.RegionAt(line)
		if !ok {
			return m, nil
		}
		if line == r.Start {
			m.focus(s, r.ID)
			m.toParent(s)
		} else {
			m.focus(s, r.ID)
		}
	}

	return m.animate()
}

// focus highlights id, or nothing when id is empty.
func (m Model) focus(s *screen, id topic.ID) {
	s.focus = id
	s.view.Select(id)
}

func (m Model) cycleFocus(s *screen, step int) {
	regions := s.view.Regions()
	if len(regions) == 0 {
		return
	}

	next := 0
	if step < 0 {
		next = len(regions) - 1
	}
	for i, r := range regions {
		if r.ID == s.focus {
			next = (i + step + len(regions)) % len(regions)
			break
		}
	}

	id := regions[next].ID
	m.focus(s, id)
	s.view.Scroll().ScrollTo(id)
}

func (m Model) toParent(s *screen) {
	r, ok := s.focused()
	if !ok {
		s.view.Scroll().ScrollTo(s.view.Topic().ID)
		return
	}

	parent := r.ParentID
	if parent == s.view.Topic().ID {
		parent = ""
	}
	m.focus(s, parent)
	s.view.ScrollToParentOf(r.ID)
}

func (m Model) turnPage(s *screen, step int) {
	id, _ := s.focusedContext()
	s.pages[id] += step
	s.view.SetContext(s.view.Context())
}

// animate schedules frames while the current screen's scroll is in flight.
func (m Model) animate() (tea.Model, tea.Cmd) {
	s := m.current()
	if s == nil || m.ticking || !s.view.Scroll().Animating() {
		return m, nil
	}
	m.ticking = true
	return m, frame()
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

func navigate(id topic.ID) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{ID: id}
	}
}

func back() tea.Msg {
	return BackMsg{}
}

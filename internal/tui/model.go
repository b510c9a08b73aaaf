package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showroom/internal/logger"
	"github.com/alexisbeaulieu97/showroom/internal/showcase"
	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

const (
	headerHeight  = 2
	footerHeight  = 1
	frameInterval = time.Second / 60
	mouseStep     = 3
)

// Options configures the browser.
type Options struct {
	// Context is the root render context. A zero width follows the terminal.
	Context showcase.Context
	Scroll  []showcase.ScrollOption
	Logger  *logger.Logger
}

type listEntry struct {
	topic topic.Topic
	depth int
}

// screen is one open topic: a laid out region plus the browser state attached to it.
type screen struct {
	view  *showcase.TopicView
	focus topic.ID
	pages map[topic.ID]int
}

// Model is the Bubbletea state of the topic browser: a flat list of every topic and a
// stack of detail screens opened from it.
type Model struct {
	root    topic.Topic
	entries []listEntry
	cursor  int
	list    viewport.Model

	stack []*screen

	ctx        showcase.Context
	fixedWidth bool
	scrollOpts []showcase.ScrollOption
	log        *logger.Logger

	keys     keyMap
	help     help.Model
	showHelp bool
	ticking  bool

	width  int
	height int
}

// NewModel creates a browser over the tree rooted at root.
func NewModel(root topic.Topic, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("browser")

	ctx := opts.Context
	if ctx.Render().Theme.Name == "" {
		ctx = ctx.WithRender(components.DefaultContext().WithWidth(ctx.Render().Width))
	}

	m := Model{
		root:       root,
		list:       viewport.New(80, 24-headerHeight-footerHeight),
		ctx:        ctx,
		fixedWidth: opts.Context.Render().Width > 0,
		scrollOpts: opts.Scroll,
		log:        log,
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
	}

	topic.Walk(root, func(t topic.Topic, depth int) bool {
		m.entries = append(m.entries, listEntry{topic: t, depth: depth})
		return true
	})
	m.list.SetContent(m.renderList())

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.root.Title)
}

// Mode reports which screen is showing.
func (m Model) Mode() ViewMode {
	if len(m.stack) == 0 {
		return ViewList
	}
	return ViewDetail
}

func (m Model) current() *screen {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m Model) bodyHeight() int {
	return max(m.height-headerHeight-footerHeight, 1)
}

func (m Model) renderContext() showcase.Context {
	if m.fixedWidth {
		return m.ctx
	}
	return m.ctx.WithRender(m.ctx.Render().WithWidth(m.width))
}

func (m Model) open(t topic.Topic) *screen {
	s := &screen{pages: make(map[topic.ID]int)}
	ctx := m.renderContext().WithPreviewPages(func(id topic.ID) int {
		return s.pages[id]
	})
	s.view = showcase.NewTopicView(ctx, t, m.scrollOpts...)
	s.view.SetHeight(m.bodyHeight())
	return s
}

// focused returns the focused region of s, if any.
func (s *screen) focused() (showcase.Region, bool) {
	if s.focus == "" {
		return showcase.Region{}, false
	}
	return s.view.RegionOf(s.focus)
}

// focusedContext is the context the focused topic, or the screen root, rendered with.
func (s *screen) focusedContext() (topic.ID, showcase.Context) {
	if r, ok := s.focused(); ok {
		return r.ID, r.Child.Node().Context()
	}
	return s.view.Topic().ID, s.view.Root().Context()
}

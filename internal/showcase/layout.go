package showcase

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

const (
	gutter      = "│ "
	gutterWidth = 2
	indexTitle  = "Contents"
)

// Region is the span of lines one child subtree occupies in a TopicView.
// The affordance back to the parent is the first line.
type Region struct {
	ID       topic.ID
	ParentID topic.ID
	Depth    int
	// Start is inclusive, End exclusive.
	Start int
	End   int
	Child ChildView
}

// Contains reports whether line falls inside the region.
func (r Region) Contains(line int) bool {
	return line >= r.Start && line < r.End
}

// TopicView lays a topic and all of its descendants out as one scrollable region and
// owns the region's ScrollCoordinator.
type TopicView struct {
	topic   topic.Topic
	ctx     Context
	scroll  *ScrollCoordinator
	root    *Node
	lines   []line
	regions []Region
	height  int
}

type line struct {
	prefix string
	text   string
	index  *Index
	row    int
}

func (l line) realize() string {
	if l.index != nil {
		return l.prefix + l.index.Row(l.row)
	}
	return l.prefix + l.text
}

// NewTopicView builds the region for t at ctx's depth with a fresh coordinator.
func NewTopicView(ctx Context, t topic.Topic, opts ...ScrollOption) *TopicView {
	v := &TopicView{
		topic:  t,
		scroll: NewScrollCoordinator(opts...),
	}
	v.build(ctx)
	return v
}

// SetContext rebuilds the region under ctx. The coordinator, its offset and any scroll in
// flight survive; the anchors are registered again.
func (v *TopicView) SetContext(ctx Context) {
	v.build(ctx)
}

// Select rebuilds the region with id highlighted.
func (v *TopicView) Select(id topic.ID) {
	v.build(v.ctx.WithSelection(id))
}

func (v *TopicView) build(ctx Context) {
	pending, animating := v.scroll.Pending()
	v.scroll.Reset()
	v.ctx = ctx.withScroll(v.scroll)
	v.root = buildNode(v.ctx, v.topic)

	b := &builder{
		render:   v.ctx.Render(),
		selected: v.ctx.Selected(),
		scroll:   v.scroll,
	}
	v.scroll.Register(v.topic.ID, 0)
	b.node(v.root, "")

	v.lines = b.lines
	v.regions = b.regions
	v.applyBounds()

	// A rebuild is not a teardown: a scroll in flight continues toward the new anchor.
	if animating {
		v.scroll.ScrollTo(pending)
	}
}

// Context is the context the region was built with.
func (v *TopicView) Context() Context { return v.ctx }

// Root is the node for the region's topic.
func (v *TopicView) Root() *Node { return v.root }

// Topic is the region's topic.
func (v *TopicView) Topic() topic.Topic { return v.topic }

// Scroll is the region's coordinator.
func (v *TopicView) Scroll() *ScrollCoordinator { return v.scroll }

// Len is the number of laid out lines.
func (v *TopicView) Len() int { return len(v.lines) }

// SetHeight sets the visible height. Zero or less shows everything.
func (v *TopicView) SetHeight(h int) {
	v.height = h
	v.applyBounds()
}

// Height is the visible height.
func (v *TopicView) Height() int { return v.height }

func (v *TopicView) applyBounds() {
	if v.height > 0 {
		v.scroll.SetBounds(len(v.lines) - v.height)
		return
	}
	v.scroll.SetBounds(len(v.lines) - 1)
}

// Window draws n lines starting at from. Only those lines are realized.
func (v *TopicView) Window(from, n int) []string {
	from = max(from, 0)
	to := min(from+n, len(v.lines))
	if from >= to {
		return nil
	}
	out := make([]string, 0, to-from)
	for _, l := range v.lines[from:to] {
		out = append(out, l.realize())
	}
	return out
}

// Lines draws every line.
func (v *TopicView) Lines() []string {
	return v.Window(0, len(v.lines))
}

// View draws the whole region.
func (v *TopicView) View() string {
	return strings.Join(v.Lines(), "\n")
}

// Visible draws the lines inside the current scroll window.
func (v *TopicView) Visible() string {
	if v.height <= 0 {
		return v.View()
	}
	return strings.Join(v.Window(v.scroll.Offset(), v.height), "\n")
}

// Regions returns the child regions in document order, parents before their children.
func (v *TopicView) Regions() []Region {
	out := make([]Region, len(v.regions))
	copy(out, v.regions)
	return out
}

// RegionOf returns the region of the subtree rooted at id.
func (v *TopicView) RegionOf(id topic.ID) (Region, bool) {
	for _, r := range v.regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// RegionAt returns the innermost region containing line.
func (v *TopicView) RegionAt(line int) (Region, bool) {
	var (
		found Region
		ok    bool
	)
	for _, r := range v.regions {
		if r.Contains(line) {
			found, ok = r, true
		}
	}
	return found, ok
}

// IndexEntryAt returns the index entry drawn on line, if line is an index row.
func (v *TopicView) IndexEntryAt(line int) (IndexEntry, bool) {
	if line < 0 || line >= len(v.lines) || v.lines[line].index == nil {
		return IndexEntry{}, false
	}
	l := v.lines[line]
	return l.index.Entry(l.row), true
}

// ScrollToParentOf fires the scroll-to-parent affordance of the region rooted at id.
func (v *TopicView) ScrollToParentOf(id topic.ID) bool {
	r, ok := v.RegionOf(id)
	if !ok {
		return false
	}
	r.Child.ScrollToParent()
	return true
}

// Lookup resolves a navigation intent for id to the topic it names.
func (v *TopicView) Lookup(id topic.ID) (topic.Topic, bool) {
	return topic.Find(v.topic, id)
}

type builder struct {
	render   components.RenderContext
	selected topic.ID
	scroll   *ScrollCoordinator
	lines    []line
	regions  []Region
}

func (b *builder) text(prefix, s string) {
	b.lines = append(b.lines, line{prefix: prefix, text: s})
}

func (b *builder) node(n *Node, prefix string) {
	wrote := false
	separate := func() {
		if wrote {
			b.text(prefix, "")
		}
		wrote = true
	}

	if content := n.Content(); !content.IsEmpty() {
		separate()
		for _, s := range strings.Split(content.View(), "\n") {
			b.text(prefix, s)
		}
	}

	if ix := n.Index(); ix != nil {
		separate()
		b.text(prefix, components.Render(b.render, components.CaptionText(indexTitle)))
		for i := range ix.Len() {
			b.lines = append(b.lines, line{prefix: prefix, index: ix, row: i})
		}
	}

	for _, child := range n.Children().Children() {
		separate()
		b.child(n, child, prefix)
	}
}

func (b *builder) child(parent *Node, child ChildView, prefix string) {
	id := child.Node().Topic().ID
	inner := prefix + b.gutter(id)

	start := len(b.lines)
	b.scroll.Register(id, start)
	at := len(b.regions)
	b.regions = append(b.regions, Region{
		ID:       id,
		ParentID: child.ParentID(),
		Depth:    child.Node().Depth(),
		Start:    start,
		Child:    child,
	})

	b.text(inner, b.affordance(parent.Topic().Title))
	b.node(child.Node(), inner)
	b.regions[at].End = len(b.lines)
}

func (b *builder) gutter(id topic.ID) string {
	slot := components.PaletteMuted
	if id == b.selected && id != "" {
		slot = components.PalettePrimary
	}
	return components.Foreground(slot)(lipgloss.NewStyle(), b.render.Theme).Render(gutter)
}

func (b *builder) affordance(parentTitle string) string {
	label := components.NewText("↑ " + parentTitle).WithAppliers(
		components.Typography(components.TypographyVariantCaption),
		components.Foreground(components.PaletteAccent),
	)
	return components.Render(b.render, label)
}

package showcase

import (
	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

// PageLookup reports the selected preview page for a topic.
type PageLookup func(topic.ID) int

// Modifier derives a scoped context, typically by overriding a style.
type Modifier func(Context) Context

// Context is the ambient state of a render pass. It is passed by value: every With*
// method returns a copy and leaves the receiver untouched, so an override only reaches
// the subtree the derived value is handed to.
type Context struct {
	render    components.RenderContext
	depth     int
	preview   PreviewStyle
	index     IndexStyle
	scroll    *ScrollCoordinator
	selected  topic.ID
	pages     PageLookup
	overrides map[topic.ID]Modifier
}

// NewContext starts a root context (depth 0, default styles) drawing with render.
func NewContext(render components.RenderContext) Context {
	return Context{render: render}
}

// DefaultContext is NewContext with the default theme and no width limit.
func DefaultContext() Context {
	return NewContext(components.DefaultContext())
}

// Render returns the theme and width for this point of the tree.
func (c Context) Render() components.RenderContext {
	return c.render
}

// WithRender replaces the theme and width.
func (c Context) WithRender(render components.RenderContext) Context {
	c.render = render
	return c
}

// Depth is the nesting level; the root of a tree is 0.
func (c Context) Depth() int {
	return c.depth
}

// Nested returns the context one level deeper.
func (c Context) Nested() Context {
	c.depth++
	return c
}

// PreviewStyle resolves the nearest preview style override, or the default.
func (c Context) PreviewStyle() PreviewStyle {
	if c.preview == nil {
		return DefaultPreviewStyle()
	}
	return c.preview
}

// WithPreviewStyle overrides the preview style below this point. nil restores the default.
func (c Context) WithPreviewStyle(style PreviewStyle) Context {
	c.preview = style
	return c
}

// IndexStyle resolves the nearest index style override, or the default.
func (c Context) IndexStyle() IndexStyle {
	if c.index == nil {
		return DefaultIndexStyle()
	}
	return c.index
}

// WithIndexStyle overrides the index style below this point. nil restores the default.
func (c Context) WithIndexStyle(style IndexStyle) Context {
	c.index = style
	return c
}

// Scroll returns the coordinator of the enclosing region, or nil outside a TopicView.
func (c Context) Scroll() *ScrollCoordinator {
	return c.scroll
}

func (c Context) withScroll(scroll *ScrollCoordinator) Context {
	c.scroll = scroll
	return c
}

// Selected is the topic the host currently highlights.
func (c Context) Selected() topic.ID {
	return c.selected
}

// WithSelection highlights id.
func (c Context) WithSelection(id topic.ID) Context {
	c.selected = id
	return c
}

// PreviewPage returns the selected preview page for id, 0 when the host tracks none.
func (c Context) PreviewPage(id topic.ID) int {
	if c.pages == nil {
		return 0
	}
	return c.pages(id)
}

// WithPreviewPages installs the host's page lookup.
func (c Context) WithPreviewPages(pages PageLookup) Context {
	c.pages = pages
	return c
}

// OverrideAt applies modify to the context of topic id and so to its whole subtree.
// Repeated overrides for one id run in the order they were added. Overrides
// registered for topics that are not rendered are ignored.
func (c Context) OverrideAt(id topic.ID, modify Modifier) Context {
	if modify == nil {
		return c
	}
	next := make(map[topic.ID]Modifier, len(c.overrides)+1)
	for k, v := range c.overrides {
		next[k] = v
	}
	if prev := next[id]; prev != nil {
		next[id] = func(x Context) Context { return modify(prev(x)) }
	} else {
		next[id] = modify
	}
	c.overrides = next
	return c
}

// enter returns the context a node with identity id renders in.
func (c Context) enter(id topic.ID) Context {
	if modify, ok := c.overrides[id]; ok && modify != nil {
		return modify(c)
	}
	return c
}

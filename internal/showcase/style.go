package showcase

import (
	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

// PreviewConfiguration is what a preview style draws from.
type PreviewConfiguration struct {
	Topic topic.ID
	Items []topic.PreviewItem
	// Page is the host's selected page. Styles that page wrap it into range.
	Page   int
	Render components.RenderContext
}

// PreviewStyle draws a topic's preview carousel.
type PreviewStyle interface {
	MakeBody(cfg PreviewConfiguration) ui.Renderable
}

// PreviewStyleFunc adapts a function to PreviewStyle.
type PreviewStyleFunc func(cfg PreviewConfiguration) ui.Renderable

// MakeBody calls f.
func (f PreviewStyleFunc) MakeBody(cfg PreviewConfiguration) ui.Renderable {
	return f(cfg)
}

// IndexConfiguration describes one index entry to draw.
type IndexConfiguration struct {
	Label string
	// IndentSize is the number of columns the entry is shifted by.
	IndentSize int
	// Icon marks whether the entry has sub-topics of its own.
	Icon     string
	Depth    int
	Position int
	Selected bool
	Render   components.RenderContext
}

// IndexStyle draws a single index entry. Entries occupy one row each.
type IndexStyle interface {
	MakeBody(cfg IndexConfiguration) ui.Renderable
}

// IndexStyleFunc adapts a function to IndexStyle.
type IndexStyleFunc func(cfg IndexConfiguration) ui.Renderable

// MakeBody calls f.
func (f IndexStyleFunc) MakeBody(cfg IndexConfiguration) ui.Renderable {
	return f(cfg)
}

// Named is implemented by styles that appear in the named registry.
type Named interface {
	Name() string
}

// StyleName returns the registry name of style, or "custom".
func StyleName(style any) string {
	if named, ok := style.(Named); ok {
		return named.Name()
	}
	return "custom"
}

// Package ui holds the minimal rendering contract shared by components and the showcase engine.
package ui

// Renderable is anything that can draw itself as terminal text.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to Renderable.
type RenderableFunc func() string

// View calls f.
func (f RenderableFunc) View() string {
	return f()
}

// Static returns a Renderable that always draws s.
func Static(s string) Renderable {
	return RenderableFunc(func() string { return s })
}

package showcase

import (
	"strings"

	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

const (
	iconBranch = "▸"
	iconLeaf   = "•"
)

// IndexEntry is one jump target in a node's index.
type IndexEntry struct {
	ID    topic.ID
	Depth int
	Label string
	// HasChildren is true when the target has sub-topics of its own.
	HasChildren bool
}

// Index is the jump list over a node's immediate children. Rows are drawn through the
// index style only when asked for and then cached.
type Index struct {
	entries  []IndexEntry
	style    IndexStyle
	render   components.RenderContext
	selected topic.ID
	rows     []string
	realized []bool
}

// BuildIndex derives the index over children for a node rendered with ctx. It returns nil,
// meaning "no index region at all", when children is nil or empty.
func BuildIndex(ctx Context, children []topic.Topic) *Index {
	if len(children) == 0 {
		return nil
	}

	entries := make([]IndexEntry, 0, len(children))
	for _, child := range children {
		entries = append(entries, IndexEntry{
			ID:          child.ID,
			Depth:       ctx.Depth() + 1,
			Label:       child.Title,
			HasChildren: child.HasChildren(),
		})
	}

	return &Index{
		entries:  entries,
		style:    ctx.IndexStyle(),
		render:   ctx.Render(),
		selected: ctx.Selected(),
		rows:     make([]string, len(entries)),
		realized: make([]bool, len(entries)),
	}
}

// Len is the number of entries.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Entries returns a copy of the entries in reading order.
func (ix *Index) Entries() []IndexEntry {
	if ix == nil {
		return nil
	}
	out := make([]IndexEntry, len(ix.entries))
	copy(out, ix.entries)
	return out
}

// Entry returns entry i, or the zero entry when i is out of range.
func (ix *Index) Entry(i int) IndexEntry {
	if i < 0 || i >= ix.Len() {
		return IndexEntry{}
	}
	return ix.entries[i]
}

// Row draws entry i, realizing it on first use. Each entry occupies a single row.
func (ix *Index) Row(i int) string {
	if i < 0 || i >= ix.Len() {
		return ""
	}
	if !ix.realized[i] {
		ix.rows[i] = ix.draw(i)
		ix.realized[i] = true
	}
	return ix.rows[i]
}

// Realize draws entries in [from, to), clamped to the index bounds.
func (ix *Index) Realize(from, to int) []string {
	from = max(from, 0)
	to = min(to, ix.Len())
	if from >= to {
		return nil
	}
	out := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, ix.Row(i))
	}
	return out
}

// RealizedCount is the number of rows drawn so far.
func (ix *Index) RealizedCount() int {
	if ix == nil {
		return 0
	}
	n := 0
	for _, done := range ix.realized {
		if done {
			n++
		}
	}
	return n
}

// View draws every entry.
func (ix *Index) View() string {
	return strings.Join(ix.Realize(0, ix.Len()), "\n")
}

func (ix *Index) draw(i int) string {
	entry := ix.entries[i]
	icon := iconLeaf
	if entry.HasChildren {
		icon = iconBranch
	}

	body := ix.style.MakeBody(IndexConfiguration{
		Label:      entry.Label,
		IndentSize: ix.render.Theme.Indent,
		Icon:       icon,
		Depth:      entry.Depth,
		Position:   i,
		Selected:   entry.ID == ix.selected && ix.selected != "",
		Render:     ix.render,
	})
	row := components.Render(ix.render, body)
	if first, _, found := strings.Cut(row, "\n"); found {
		return first
	}
	return row
}

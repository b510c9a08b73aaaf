package showcase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui"
)

func TestAccordionScenario(t *testing.T) {
	view := NewTopicView(DefaultContext(), accordion())
	root := view.Root()

	require.Empty(t, root.Content().Sections())
	require.Equal(t, []IndexEntry{{ID: "c1", Depth: 1, Label: "Basic"}}, root.Index().Entries())

	regions := view.Regions()
	require.Len(t, regions, 1)
	require.Equal(t, topic.ID("c1"), regions[0].ID)
	require.Equal(t, 1, regions[0].Depth)

	child := root.Children().Children()[0].Node()
	require.True(t, child.Content().Has(SectionTitle))
	require.Nil(t, child.Index())
	require.Nil(t, child.Children())

	body := strings.Join(view.Window(regions[0].Start, regions[0].End-regions[0].Start), "\n")
	require.Contains(t, body, "Basic")
	require.Contains(t, body, "↑ Accordion")
}

func TestDisplayOrderIsContentIndexChildren(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree())
	out := view.View()

	description := strings.Index(out, "The root topic.")
	contents := strings.Index(out, indexTitle)
	firstChild := strings.Index(out, "First branch.")

	require.GreaterOrEqual(t, description, 0)
	require.Greater(t, contents, description)
	require.Greater(t, firstChild, contents)
}

func TestRegionsInDocumentOrder(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree())

	var ids []topic.ID
	for _, r := range view.Regions() {
		ids = append(ids, r.ID)
		require.Less(t, r.Start, r.End)
	}
	require.Equal(t, []topic.ID{"a", "a1", "a2", "a2x", "b"}, ids)

	a, ok := view.RegionOf("a")
	require.True(t, ok)
	a2x, ok := view.RegionOf("a2x")
	require.True(t, ok)
	require.True(t, a.Contains(a2x.Start))
	require.Equal(t, topic.ID("a2"), a2x.ParentID)
	require.Equal(t, 3, a2x.Depth)
}

func TestAnchorsMatchRegionStarts(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree())

	line, ok := view.Scroll().Anchor("root")
	require.True(t, ok)
	require.Zero(t, line)

	for _, r := range view.Regions() {
		line, ok := view.Scroll().Anchor(r.ID)
		require.True(t, ok, r.ID)
		require.Equal(t, r.Start, line, r.ID)
	}
}

func TestRegionAtFindsInnermost(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree())
	a2x, _ := view.RegionOf("a2x")

	r, ok := view.RegionAt(a2x.Start)
	require.True(t, ok)
	require.Equal(t, topic.ID("a2x"), r.ID)

	_, ok = view.RegionAt(0)
	require.False(t, ok)
}

func TestScrollToParentOfMovesToParentAnchor(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree(), WithDuration(0))
	view.SetHeight(1)

	a2x, _ := view.RegionOf("a2x")
	view.Scroll().SetOffset(a2x.Start)

	require.True(t, view.ScrollToParentOf("a2x"))
	a2, _ := view.RegionOf("a2")
	require.Equal(t, a2.Start, view.Scroll().Offset())

	require.True(t, view.ScrollToParentOf("a"))
	require.Zero(t, view.Scroll().Offset())

	require.False(t, view.ScrollToParentOf("root"))
}

func TestScrollToParentAnimates(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree(), WithDuration(100*time.Millisecond))
	view.SetHeight(1)
	b, _ := view.RegionOf("b")
	view.Scroll().SetOffset(b.Start)

	view.ScrollToParentOf("b")
	require.True(t, view.Scroll().Animating())
	require.Equal(t, b.Start, view.Scroll().Offset())

	for view.Scroll().Advance(16 * time.Millisecond) {
	}
	require.Zero(t, view.Scroll().Offset())
}

func TestSiblingViewsScrollIndependently(t *testing.T) {
	siblings := []topic.Topic{tree().Children[0], tree().Children[0]}
	siblings[1].ID = "a-copy"
	first := NewTopicView(DefaultContext(), siblings[0], WithDuration(0))
	second := NewTopicView(DefaultContext(), siblings[1], WithDuration(0))
	first.SetHeight(1)
	second.SetHeight(1)
	require.NotSame(t, first.Scroll(), second.Scroll())

	second.Scroll().SetOffset(1)
	a2, _ := first.RegionOf("a2")
	first.Scroll().SetOffset(a2.Start)

	first.ScrollToParentOf("a2")

	require.Zero(t, first.Scroll().Offset())
	require.Equal(t, 1, second.Scroll().Offset())
}

func TestWindowRealizesOnlyVisibleIndexRows(t *testing.T) {
	children := make([]topic.Topic, 0, 50)
	for i := range 50 {
		children = append(children, topic.Topic{ID: topic.ID(fmt.Sprint("t", i)), Title: fmt.Sprint("Topic ", i)})
	}
	view := NewTopicView(DefaultContext(), topic.Topic{ID: "root", Title: "Many", Children: children})
	view.SetHeight(5)

	lines := view.Window(0, 5)
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], indexTitle)
	require.Equal(t, 4, view.Root().Index().RealizedCount())

	view.View()
	require.Equal(t, 50, view.Root().Index().RealizedCount())
}

func TestVisibleFollowsOffset(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree(), WithDuration(0))
	view.SetHeight(3)

	view.Scroll().SetOffset(2)
	require.Equal(t, strings.Join(view.Window(2, 3), "\n"), view.Visible())

	view.SetHeight(0)
	require.Equal(t, view.View(), view.Visible())
}

func TestSelectHighlightsIndexEntry(t *testing.T) {
	var selected []string
	style := IndexStyleFunc(func(cfg IndexConfiguration) ui.Renderable {
		if cfg.Selected {
			selected = append(selected, cfg.Label)
		}
		return ui.Static(cfg.Label)
	})
	view := NewTopicView(DefaultContext().WithIndexStyle(style), tree())

	view.Select("b")
	view.View()

	require.Equal(t, []string{"Beta"}, selected)
	require.Equal(t, topic.ID("b"), view.Context().Selected())
}

func TestSetContextKeepsCoordinator(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree(), WithDuration(0))
	view.SetHeight(2)
	scroll := view.Scroll()
	view.Scroll().SetOffset(3)

	view.SetContext(view.Context().WithIndexStyle(NumberedIndexStyle{}))

	require.Same(t, scroll, view.Scroll())
	require.Equal(t, 3, view.Scroll().Offset())
	require.Contains(t, view.View(), "1. Alpha")
	_, ok := view.Scroll().Anchor("a2x")
	require.True(t, ok)
}

func TestRebuildKeepsScrollInFlight(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree(), WithDuration(time.Second))
	view.SetHeight(1)
	b, _ := view.RegionOf("b")
	require.Positive(t, b.Start)

	view.Scroll().ScrollTo("b")
	view.Scroll().Advance(300 * time.Millisecond)
	mid := view.Scroll().Offset()
	require.Less(t, mid, b.Start)

	view.SetContext(view.Context().WithIndexStyle(NumberedIndexStyle{}))
	view.Select("a")

	require.True(t, view.Scroll().Animating())
	pending, ok := view.Scroll().Pending()
	require.True(t, ok)
	require.Equal(t, topic.ID("b"), pending)
	require.GreaterOrEqual(t, view.Scroll().Offset(), mid)

	for view.Scroll().Advance(16 * time.Millisecond) {
	}
	anchor, _ := view.Scroll().Anchor("b")
	require.Equal(t, anchor, view.Scroll().Offset())
}

func TestIndexEntryAtResolvesIndexRows(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree())

	var found []topic.ID
	for line := range view.Len() {
		if entry, ok := view.IndexEntryAt(line); ok {
			require.Contains(t, view.Window(line, 1)[0], entry.Label)
			found = append(found, entry.ID)
		}
	}

	require.Equal(t, []topic.ID{"a", "b", "a1", "a2", "a2x"}, found)
	_, ok := view.IndexEntryAt(0)
	require.False(t, ok)
	_, ok = view.IndexEntryAt(-1)
	require.False(t, ok)
	_, ok = view.IndexEntryAt(view.Len())
	require.False(t, ok)
}

func TestOverrideAtScopesIndexStyleInView(t *testing.T) {
	marked := IndexStyleFunc(func(cfg IndexConfiguration) ui.Renderable {
		return ui.Static("<" + cfg.Label + ">")
	})
	ctx := DefaultContext().OverrideAt("a", func(c Context) Context { return c.WithIndexStyle(marked) })
	out := NewTopicView(ctx, tree()).View()

	require.Contains(t, out, "<Alpha one>")
	require.NotContains(t, out, "<Alpha>")
}

func TestLookupResolvesDescendants(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree())

	found, ok := view.Lookup("a2x")
	require.True(t, ok)
	require.Equal(t, "Alpha two x", found.Title)

	_, ok = view.Lookup("missing")
	require.False(t, ok)
}

func TestNestedLinesCarryGutter(t *testing.T) {
	view := NewTopicView(DefaultContext(), tree())
	a2x, _ := view.RegionOf("a2x")

	first := view.Window(a2x.Start, 1)[0]
	require.Equal(t, 3, strings.Count(first, strings.TrimSpace(gutter)))
	require.Contains(t, first, "↑ Alpha two")
}

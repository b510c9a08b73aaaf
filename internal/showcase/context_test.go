package showcase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

func TestContextDefaults(t *testing.T) {
	ctx := DefaultContext()

	require.Zero(t, ctx.Depth())
	require.Equal(t, "paged", StyleName(ctx.PreviewStyle()))
	require.Equal(t, "bullet", StyleName(ctx.IndexStyle()))
	require.Nil(t, ctx.Scroll())
	require.Empty(t, ctx.Selected())
	require.Zero(t, ctx.PreviewPage("anything"))
}

func TestNestedDoesNotMutateReceiver(t *testing.T) {
	ctx := DefaultContext()
	nested := ctx.Nested().Nested()

	require.Zero(t, ctx.Depth())
	require.Equal(t, 2, nested.Depth())
}

func TestStyleOverridesAreScopedCopies(t *testing.T) {
	base := DefaultContext()
	scoped := base.WithPreviewStyle(ScrollingPreviewStyle{}).WithIndexStyle(NumberedIndexStyle{})

	require.Equal(t, "paged", StyleName(base.PreviewStyle()))
	require.Equal(t, "scrolling", StyleName(scoped.PreviewStyle()))
	require.Equal(t, "numbered", StyleName(scoped.IndexStyle()))
	require.Equal(t, "scrolling", StyleName(scoped.Nested().PreviewStyle()))

	restored := scoped.WithPreviewStyle(nil)
	require.Equal(t, "paged", StyleName(restored.PreviewStyle()))
}

func TestOverrideAtLeavesParentMapUntouched(t *testing.T) {
	base := DefaultContext().OverrideAt("a", func(c Context) Context { return c.WithIndexStyle(NumberedIndexStyle{}) })
	derived := base.OverrideAt("b", func(c Context) Context { return c.WithPreviewStyle(ScrollingPreviewStyle{}) })

	require.Equal(t, "paged", StyleName(base.enter("b").PreviewStyle()))
	require.Equal(t, "scrolling", StyleName(derived.enter("b").PreviewStyle()))
	require.Equal(t, "numbered", StyleName(derived.enter("a").IndexStyle()))
}

func TestOverridesForOneTopicCompose(t *testing.T) {
	base := DefaultContext()
	ctx := base.
		OverrideAt("root", func(c Context) Context { return c.WithPreviewStyle(ScrollingPreviewStyle{}) }).
		OverrideAt("root", func(c Context) Context { return c.WithIndexStyle(NumberedIndexStyle{}) })

	entered := ctx.enter("root")
	require.Equal(t, "scrolling", StyleName(entered.PreviewStyle()))
	require.Equal(t, "numbered", StyleName(entered.IndexStyle()))

	last := ctx.OverrideAt("root", func(c Context) Context { return c.WithPreviewStyle(PagedPreviewStyle{}) })
	require.Equal(t, "paged", StyleName(last.enter("root").PreviewStyle()))
	require.Equal(t, "numbered", StyleName(last.enter("root").IndexStyle()))
	require.Equal(t, "scrolling", StyleName(ctx.enter("root").PreviewStyle()))
	require.Equal(t, "bullet", StyleName(base.enter("root").IndexStyle()))
}

func TestOverrideScopingAcrossTree(t *testing.T) {
	custom := PreviewStyleFunc(func(PreviewConfiguration) ui.Renderable { return ui.Static("custom") })
	root := topic.Topic{
		ID:    "root",
		Title: "Root",
		Children: []topic.Topic{
			{ID: "A", Title: "A", Children: []topic.Topic{
				{ID: "mid", Title: "Mid", Children: []topic.Topic{
					{ID: "B", Title: "B", Children: []topic.Topic{{ID: "leaf", Title: "Leaf"}}},
				}},
			}},
			{ID: "outside", Title: "Outside"},
		},
	}

	ctx := DefaultContext().
		OverrideAt("A", func(c Context) Context { return c.WithPreviewStyle(ScrollingPreviewStyle{}) }).
		OverrideAt("B", func(c Context) Context { return c.WithPreviewStyle(custom) })
	view := NewTopicView(ctx, root)

	expected := map[topic.ID]string{
		"root":    "paged",
		"A":       "scrolling",
		"mid":     "scrolling",
		"B":       "custom",
		"leaf":    "custom",
		"outside": "paged",
	}
	for id, name := range expected {
		node := findNode(view.Root(), id)
		require.NotNil(t, node, id)
		require.Equal(t, name, StyleName(node.Context().PreviewStyle()), id)
	}
}

func TestWithRenderCarriesWidth(t *testing.T) {
	ctx := DefaultContext().WithRender(components.DefaultContext().WithWidth(40))
	require.Equal(t, 40, ctx.Render().Width)
	require.Equal(t, 40, ctx.Nested().Render().Width)
}

func TestPreviewPagesLookup(t *testing.T) {
	ctx := DefaultContext().WithPreviewPages(func(id topic.ID) int {
		if id == "x" {
			return 3
		}
		return 0
	})
	require.Equal(t, 3, ctx.PreviewPage("x"))
	require.Zero(t, ctx.PreviewPage("y"))
}

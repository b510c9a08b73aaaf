// Package catalog is the built-in showcase content: a topic tree documenting the
// component library with live previews drawn by the components themselves.
package catalog

import (
	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

// RootID is the identity of the catalog root.
const RootID topic.ID = "components"

const docsURL = "https://pkg.go.dev/github.com/alexisbeaulieu97/showroom/internal/ui/components"

// Root returns the catalog tree. Every call builds a fresh value with the same identities.
func Root() topic.Topic {
	return topic.New("Components",
		topic.WithID(RootID),
		topic.WithDescription("Building blocks for terminal interfaces. Every sample below is drawn by the component it documents, using the active theme and width."),
		topic.WithLinks(topic.Link{Title: "API reference", URL: docsURL}),
		topic.WithChildren(
			textTopic(),
			layoutTopic(),
			badgeTopic(),
			dividerTopic(),
			themeTopic(),
		),
	)
}

func textTopic() topic.Topic {
	return topic.New("Text",
		topic.WithID("text"),
		topic.WithDescription("`Text` renders a string with a **typography** preset. Presets come from the theme, so the same text adapts to light, dark and mono terminals."),
		topic.WithCode(topic.CodeBlock{
			Language: "go",
			Source:   `components.TitleText("Release notes")`,
		}),
		topic.WithChildren(
			topic.New("Typography",
				topic.WithID("text-typography"),
				topic.WithDescription("One preset per role: *title*, *heading*, *body*, *caption* and *code*."),
				topic.WithPreview(
					topic.Sample("title", components.TitleText("Release notes")),
					topic.Sample("heading", components.HeadingText("Breaking changes")),
					topic.Sample("body", components.BodyText("Plain paragraph text.")),
					topic.Sample("caption", components.CaptionText("Updated two minutes ago")),
					topic.Sample("code", components.CodeText("go test ./...")),
				),
			),
			topic.New("Wrapping",
				topic.WithID("text-wrapping"),
				topic.WithDescription("`WithWrap(true)` folds text to the width handed down by the enclosing component."),
				topic.WithPreview(topic.Sample("wrapped body", components.BodyText(
					"Long sentences fold onto as many lines as the available width requires, never past the edge of their container.",
				))),
				topic.WithCode(topic.CodeBlock{
					Language: "go",
					Source:   `components.NewText(long).WithWrap(true)`,
				}),
			),
		),
	)
}

func layoutTopic() topic.Topic {
	return topic.New("Layout",
		topic.WithID("layout"),
		topic.WithDescription("Stacks arrange children along one axis; boxes frame a single region."),
		topic.WithChildren(
			topic.New("Stack",
				topic.WithID("stack"),
				topic.WithDescription("`VStack` and `HStack` skip empty children and share the width among horizontal children."),
				topic.WithChildren(
					topic.New("Vertical",
						topic.WithID("stack-vertical"),
						topic.WithPreview(
							topic.Sample("gap 0", components.VStack(
								components.BodyText("first"),
								components.BodyText("second"),
							)),
							topic.Sample("gap 1", components.VStack(
								components.BodyText("first"),
								components.BodyText("second"),
							).WithGap(1)),
						),
					),
					topic.New("Horizontal",
						topic.WithID("stack-horizontal"),
						topic.WithPreview(topic.Sample("badges", components.HStack(
							components.PrimaryBadge("go"),
							components.SuccessBadge("passing"),
							components.WarningBadge("beta"),
						).WithGap(1))),
						topic.WithCode(topic.CodeBlock{
							Language: "go",
							Source:   "components.HStack(a, b, c).WithGap(1)",
						}),
					),
				),
			),
			topic.New("Box",
				topic.WithID("box"),
				topic.WithDescription("`Box` draws a border around its children and shrinks their width by the frame."),
				topic.WithChildren(
					topic.New("Borders",
						topic.WithID("box-borders"),
						topic.WithPreview(
							topic.Sample("normal", boxed(components.BorderVariantNormal)),
							topic.Sample("rounded", boxed(components.BorderVariantRounded)),
							topic.Sample("thick", boxed(components.BorderVariantThick)),
							topic.Sample("double", boxed(components.BorderVariantDouble)),
						),
					),
					topic.New("Caption",
						topic.WithID("box-caption"),
						topic.WithPreview(topic.Sample("captioned", components.NewBox(
							components.BodyText("Framed content"),
						).WithCaption("caption").WithPadding(1))),
					),
				),
			),
		),
	)
}

func boxed(variant components.BorderVariant) ui.Renderable {
	return components.NewBox(components.BodyText("content")).
		WithBorder(variant, components.PalettePrimary).
		WithPadding(1)
}

func badgeTopic() topic.Topic {
	return topic.New("Badge",
		topic.WithID("badge"),
		topic.WithDescription("Short status labels filled with a palette colour."),
		topic.WithPreview(
			topic.Sample("primary", components.PrimaryBadge("primary")),
			topic.Sample("success", components.SuccessBadge("success")),
			topic.Sample("warning", components.WarningBadge("warning")),
			topic.Sample("danger", components.DangerBadge("danger")),
			topic.Sample("muted", components.NewBadge("muted")),
		),
		topic.WithCode(topic.CodeBlock{
			Caption:  "variants",
			Language: "go",
			Source:   `components.NewBadge("beta").WithVariant(components.BadgeVariantWarning)`,
		}),
	)
}

func dividerTopic() topic.Topic {
	return topic.New("Divider",
		topic.WithID("divider"),
		topic.WithDescription("A rule across the available width.\n\n- `NewDivider` draws a light line\n- `DashedDivider` and `ThickDivider` change the glyph"),
		topic.WithPreview(
			topic.Sample("solid", components.NewDivider().WithWidth(24)),
			topic.Sample("dashed", components.DashedDivider().WithWidth(24)),
			topic.Sample("thick", components.ThickDivider().WithWidth(24)),
		),
	)
}

func themeTopic() topic.Topic {
	children := make([]topic.Topic, 0, len(components.ThemeNames()))
	for _, name := range components.ThemeNames() {
		theme, _ := components.ThemeNamed(name)
		children = append(children, topic.New(name,
			topic.WithID(topic.ID("theme-"+name)),
			topic.WithPreview(topic.Sample("palette", themed{theme: theme, body: swatches()})),
		))
	}

	return topic.New("Theme",
		topic.WithID("theme"),
		topic.WithDescription("A theme bundles a palette, typography presets and the nesting indent. Components read it from the render context."),
		topic.WithLinks(topic.Link{Title: "lipgloss colours", URL: "https://github.com/charmbracelet/lipgloss#colors"}),
		topic.WithChildren(children...),
	)
}

func swatches() ui.Renderable {
	return components.HStack(
		components.PrimaryBadge("primary"),
		components.NewBadge("accent").WithVariant(components.BadgeVariantAccent),
		components.SuccessBadge("success"),
		components.WarningBadge("warning"),
		components.DangerBadge("danger"),
	).WithGap(1)
}

// themed draws body with a fixed theme regardless of the surrounding one.
type themed struct {
	theme components.Theme
	body  ui.Renderable
}

func (t themed) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

func (t themed) ViewWithContext(ctx components.RenderContext) string {
	return components.Render(ctx.WithTheme(t.theme), t.body)
}

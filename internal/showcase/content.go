package showcase

import (
	"strings"

	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

// Section identifies one block of a topic's leaf content.
type Section int

const (
	SectionTitle Section = iota
	SectionDescription
	SectionPreview
	SectionLinks
	SectionCode
)

func (s Section) String() string {
	switch s {
	case SectionTitle:
		return "title"
	case SectionDescription:
		return "description"
	case SectionPreview:
		return "preview"
	case SectionLinks:
		return "links"
	case SectionCode:
		return "code"
	default:
		return "unknown"
	}
}

// Content is a topic's own content, without its children. Absent sections are nil.
type Content struct {
	Title       ui.Renderable
	Description ui.Renderable
	Preview     ui.Renderable
	Links       ui.Renderable
	Code        ui.Renderable

	render components.RenderContext
}

// RenderContent builds the leaf content of t for the given context.
//
// The title is left out at depth 0: whoever hosts the root region (a navigation bar, the
// list screen) already shows it. Empty fields produce no section at all.
func RenderContent(ctx Context, t topic.Topic) Content {
	render := ctx.Render()
	c := Content{render: render}

	if ctx.Depth() > 0 {
		c.Title = titleFor(ctx.Depth(), t.Title)
	}
	if strings.TrimSpace(t.Description) != "" {
		c.Description = ui.Static(renderDescription(render, t.Description))
	}
	if t.Preview != nil && len(t.Preview.Items) > 0 {
		c.Preview = ctx.PreviewStyle().MakeBody(PreviewConfiguration{
			Topic:  t.ID,
			Items:  t.Preview.Items,
			Page:   ctx.PreviewPage(t.ID),
			Render: render,
		})
	}
	if len(t.Links) > 0 {
		c.Links = linksFor(t.Links)
	}
	if len(t.CodeBlocks) > 0 {
		c.Code = codeFor(t.CodeBlocks)
	}
	return c
}

// Sections lists the present sections in display order.
func (c Content) Sections() []Section {
	var out []Section
	for _, s := range []Section{SectionTitle, SectionDescription, SectionPreview, SectionLinks, SectionCode} {
		if c.section(s) != nil {
			out = append(out, s)
		}
	}
	return out
}

// Has reports whether section s is present.
func (c Content) Has(s Section) bool {
	return c.section(s) != nil
}

// IsEmpty reports whether no section is present.
func (c Content) IsEmpty() bool {
	return len(c.Sections()) == 0
}

// View draws the present sections separated by blank lines.
func (c Content) View() string {
	stack := components.VStack().WithGap(1)
	for _, s := range c.Sections() {
		stack.Add(c.section(s))
	}
	return stack.ViewWithContext(c.render)
}

func (c Content) section(s Section) ui.Renderable {
	switch s {
	case SectionTitle:
		return c.Title
	case SectionDescription:
		return c.Description
	case SectionPreview:
		return c.Preview
	case SectionLinks:
		return c.Links
	case SectionCode:
		return c.Code
	default:
		return nil
	}
}

func titleFor(depth int, title string) ui.Renderable {
	if depth == 1 {
		return components.TitleText(title)
	}
	return components.HeadingText(title)
}

func linksFor(links []topic.Link) ui.Renderable {
	rows := components.VStack()
	for _, link := range links {
		rows.Add(components.HStack(
			components.NewText("↗").WithAppliers(components.Foreground(components.PaletteAccent)),
			components.NewText(link.Title).WithAppliers(components.Typography(components.TypographyVariantLink)),
			components.CaptionText(link.URL),
		).WithGap(1))
	}
	return rows
}

func codeFor(blocks []topic.CodeBlock) ui.Renderable {
	stack := components.VStack().WithGap(1)
	for _, block := range blocks {
		caption := block.Caption
		if caption == "" {
			caption = block.Language
		}
		stack.Add(components.NewBox(components.CodeText(strings.TrimRight(block.Source, "\n"))).
			WithBorder(components.BorderVariantNormal, components.PaletteAccent).
			WithCaption(caption))
	}
	return stack
}

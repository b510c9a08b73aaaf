package showcase

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

var markdown = goldmark.New()

// renderDescription draws inline markdown with the theme typography, one block per
// paragraph, wrapped to the context width.
func renderDescription(render components.RenderContext, source string) string {
	src := []byte(source)
	doc := markdown.Parser().Parse(text.NewReader(src))
	r := descriptionRenderer{src: src, render: render}

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if block := r.block(n); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

type descriptionRenderer struct {
	src    []byte
	render components.RenderContext
}

func (r descriptionRenderer) style(variant components.TypographyVariant) func(...string) string {
	return components.TypographyStyle(r.render.Theme, variant).Render
}

func (r descriptionRenderer) wrap(s string, indent int) string {
	if r.render.Width <= indent {
		return s
	}
	return wordwrap.String(s, r.render.Width-indent)
}

func (r descriptionRenderer) block(n ast.Node) string {
	switch node := n.(type) {
	case *ast.Heading:
		return r.style(components.TypographyVariantHeading)(r.inline(node))
	case *ast.List:
		var items []string
		i := node.Start
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "•"
			if node.IsOrdered() {
				marker = strconv.Itoa(i) + string(node.Marker)
				i++
			}
			body := r.wrap(r.inline(item), len(marker)+1)
			items = append(items, marker+" "+strings.ReplaceAll(body, "\n", "\n"+strings.Repeat(" ", len(marker)+1)))
		}
		return strings.Join(items, "\n")
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return r.style(components.TypographyVariantCode)(strings.TrimRight(r.lines(node), "\n"))
	case *ast.ThematicBreak:
		return components.NewDivider().ViewWithContext(r.render)
	default:
		return r.wrap(r.inline(node), 0)
	}
}

// inline renders the inline children of n, descending into block children such as the
// paragraphs inside list items.
func (r descriptionRenderer) inline(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(r.src))
			switch {
			case node.HardLineBreak():
				b.WriteByte('\n')
			case node.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.CodeSpan:
			b.WriteString(r.style(components.TypographyVariantCode)(r.plain(node)))
		case *ast.Emphasis:
			variant := components.TypographyVariantEmphasis
			if node.Level >= 2 {
				variant = components.TypographyVariantStrong
			}
			b.WriteString(r.style(variant)(r.inline(node)))
		case *ast.Link:
			b.WriteString(r.style(components.TypographyVariantLink)(r.inline(node)))
		case *ast.AutoLink:
			b.WriteString(r.style(components.TypographyVariantLink)(string(node.URL(r.src))))
		default:
			b.WriteString(r.inline(node))
		}
	}
	return b.String()
}

func (r descriptionRenderer) plain(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(r.src))
			continue
		}
		b.WriteString(r.plain(c))
	}
	return b.String()
}

func (r descriptionRenderer) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(r.src))
	}
	return b.String()
}

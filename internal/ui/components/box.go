package components

import (
	"github.com/alexisbeaulieu97/showroom/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Box frames a vertical stack of children with a border, padding and an optional caption
// drawn above the frame.
type Box struct {
	BaseComponent
	layout  *Stack
	border  BorderVariant
	slot    PaletteSlot
	padding int
	caption string
}

// NewBox creates a rounded box around children.
func NewBox(children ...ui.Renderable) *Box {
	return &Box{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
		border:        BorderVariantRounded,
		slot:          PaletteMuted,
		padding:       1,
	}
}

// View renders the box with the default context.
func (b *Box) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box. The frame and padding are subtracted from the width
// handed to the children.
func (b *Box) ViewWithContext(ctx RenderContext) string {
	frame := 0
	if b.border != BorderVariantNone {
		frame = 2
	}
	inner := ctx.Inset(frame + 2*b.padding)

	style := Border(b.border, b.slot)(b.ComputeStyle(ctx.Theme), ctx.Theme).
		PaddingLeft(b.padding).
		PaddingRight(b.padding)
	if inner.Width > 0 {
		style = style.Width(inner.Width + 2*b.padding)
	}

	body := style.Render(b.layout.ViewWithContext(inner))
	if b.caption == "" {
		return body
	}
	caption := CaptionText(b.caption).ViewWithContext(ctx)
	return lipgloss.JoinVertical(lipgloss.Left, caption, body)
}

// WithBorder sets the border variant and colour slot.
func (b *Box) WithBorder(variant BorderVariant, slot PaletteSlot) *Box {
	b.border = variant
	b.slot = slot
	return b
}

// WithPadding sets horizontal padding inside the frame.
func (b *Box) WithPadding(n int) *Box {
	b.padding = n
	return b
}

// WithCaption draws a muted caption above the frame.
func (b *Box) WithCaption(caption string) *Box {
	b.caption = caption
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Box) WithAppliers(appliers ...StyleFunc) *Box {
	b.AddAppliers(appliers...)
	return b
}

// Add appends children to the box.
func (b *Box) Add(children ...ui.Renderable) *Box {
	b.layout.Add(children...)
	return b
}

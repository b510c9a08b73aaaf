package components

import "github.com/charmbracelet/lipgloss"

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantAccent
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantDanger
)

func (v BadgeVariant) slot() PaletteSlot {
	switch v {
	case BadgeVariantPrimary:
		return PalettePrimary
	case BadgeVariantAccent:
		return PaletteAccent
	case BadgeVariantSuccess:
		return PaletteSuccess
	case BadgeVariantWarning:
		return PaletteWarning
	case BadgeVariantDanger:
		return PaletteDanger
	default:
		return PaletteMuted
	}
}

// Badge is a small inline label.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge with the default context.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := Background(b.variant.slot())(lipgloss.NewStyle(), ctx.Theme).Padding(0, 1)
	return b.ComputeStyle(ctx.Theme).Inherit(style).Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// PrimaryBadge creates a primary badge.
func PrimaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantPrimary)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// DangerBadge creates a danger badge.
func DangerBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantDanger)
}

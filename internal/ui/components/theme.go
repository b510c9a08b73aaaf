package components

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour with a matching foreground for text drawn on it.
type ColourSet struct {
	Base   lipgloss.TerminalColor
	OnBase lipgloss.TerminalColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Accent  ColourSet
	Surface ColourSet
	Muted   ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
}

// PaletteSlot selects a semantic colour from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteMuted   PaletteSlot = func(p Palette) ColourSet { return p.Muted }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// TypographyVariant names a typography preset.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantHeading
	TypographyVariantCaption
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantStrong
	TypographyVariantLink
)

// TypographyScale contains the text presets of a theme.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Strong   lipgloss.Style
	Link     lipgloss.Style
}

// BorderVariant names a border preset.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// Theme is an immutable set of styling tokens. Modifiers return new values.
type Theme struct {
	Name       string
	Palette    Palette
	Typography TypographyScale
	// Indent is the number of columns a nesting level shifts content by.
	Indent int
}

// DefaultTheme returns the adaptive light/dark theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{Base: ac("#2563eb", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120")},
		Accent:  ColourSet{Base: ac("#9333ea", "#c084fc"), OnBase: ac("#faf5ff", "#1e1b4b")},
		Surface: ColourSet{Base: ac("#f1f5f9", "#1e293b"), OnBase: ac("#0f172a", "#e2e8f0")},
		Muted:   ColourSet{Base: ac("#e2e8f0", "#334155"), OnBase: ac("#64748b", "#94a3b8")},
		Success: ColourSet{Base: ac("#16a34a", "#4ade80"), OnBase: ac("#f0fdf4", "#052e16")},
		Warning: ColourSet{Base: ac("#d97706", "#fbbf24"), OnBase: ac("#fffbeb", "#451a03")},
		Danger:  ColourSet{Base: ac("#dc2626", "#f87171"), OnBase: ac("#fef2f2", "#450a0a")},
	}

	return Theme{
		Name:       "default",
		Palette:    palette,
		Typography: typographyFor(palette),
		Indent:     2,
	}
}

// DarkTheme pins the default palette to its dark variants.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"
	theme.Palette.Surface = ColourSet{Base: lipgloss.Color("#0b1120"), OnBase: lipgloss.Color("#e5e7eb")}
	theme.Palette.Muted = ColourSet{Base: lipgloss.Color("#1f2937"), OnBase: lipgloss.Color("#9ca3af")}
	theme.Typography = typographyFor(theme.Palette)
	return theme
}

// MonoTheme draws without colour, relying on weight and decoration only.
func MonoTheme() Theme {
	none := ColourSet{Base: lipgloss.NoColor{}, OnBase: lipgloss.NoColor{}}
	palette := Palette{
		Primary: none, Accent: none, Surface: none, Muted: none,
		Success: none, Warning: none, Danger: none,
	}
	return Theme{
		Name:       "mono",
		Palette:    palette,
		Typography: typographyFor(palette),
		Indent:     2,
	}
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"dark":    DarkTheme,
	"mono":    MonoTheme,
}

// ThemeNamed looks a built-in theme up by name.
func ThemeNamed(name string) (Theme, bool) {
	build, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	return build(), true
}

// ThemeNames lists the built-in theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func typographyFor(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Heading:  body.Bold(true).Underline(true),
		Caption:  body.Foreground(p.Muted.OnBase).Italic(true),
		Code:     body.Foreground(p.Accent.Base),
		Emphasis: body.Italic(true),
		Strong:   body.Bold(true),
		Link:     body.Foreground(p.Primary.Base).Underline(true),
	}
}

// TypographyStyle returns the style for variant in theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantHeading:
		return typo.Heading
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantStrong:
		return typo.Strong
	case TypographyVariantLink:
		return typo.Link
	default:
		return typo.Body
	}
}

// BorderFor returns the lipgloss border for variant.
func BorderFor(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return lipgloss.NormalBorder()
	case BorderVariantRounded:
		return lipgloss.RoundedBorder()
	case BorderVariantThick:
		return lipgloss.ThickBorder()
	case BorderVariantDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}

// Foreground colours text with the slot's base colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Foreground(slot(theme.Palette).Base)
	}
}

// Background fills with the slot's base colour and uses its on-base colour for text.
func Background(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		set := slot(theme.Palette)
		return style.Background(set.Base).Foreground(set.OnBase)
	}
}

// Border draws a border coloured with the slot's base colour.
func Border(variant BorderVariant, slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return style
		}
		return style.Border(BorderFor(variant)).BorderForeground(slot(theme.Palette).Base)
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Inherit(TypographyStyle(theme, variant))
	}
}

// PaddingX pads left and right by n columns.
func PaddingX(n int) StyleFunc {
	return func(style lipgloss.Style, _ Theme) lipgloss.Style {
		return style.PaddingLeft(n).PaddingRight(n)
	}
}

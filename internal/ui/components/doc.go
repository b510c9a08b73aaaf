// Package components provides the theme-aware terminal components that the showroom
// catalog documents and that the showcase engine uses to draw topic content.
//
// Components render to strings through lipgloss. Themes are immutable and travel in a
// RenderContext rather than in global state:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme()).WithWidth(60)
//	out := components.NewBox(components.BodyText("hello")).ViewWithContext(ctx)
//
// View() renders with DefaultContext for quick use.
//
// Styling is composed from StyleFunc modifiers (Foreground, Background, Border,
// Typography, PaddingX) that read the theme at render time:
//
//	components.NewText("warn").WithAppliers(components.Foreground(components.PaletteWarning))
package components

package showcase

import (
	"fmt"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showroom/internal/ui"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

// PagedPreviewStyle shows one preview item at a time with page dots underneath.
type PagedPreviewStyle struct{}

// Name implements Named.
func (PagedPreviewStyle) Name() string { return "paged" }

// MakeBody implements PreviewStyle.
func (PagedPreviewStyle) MakeBody(cfg PreviewConfiguration) ui.Renderable {
	if len(cfg.Items) == 0 {
		return nil
	}

	page := wrapPage(cfg.Page, len(cfg.Items))
	item := cfg.Items[page]
	frame := components.NewBox(item.Content).
		WithBorder(components.BorderVariantRounded, components.PaletteMuted).
		WithCaption(item.Caption)

	if len(cfg.Items) == 1 {
		return frame
	}

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.PerPage = 1
	dots.SetTotalPages(len(cfg.Items))
	dots.Page = page
	dots.ActiveDot = lipgloss.NewStyle().Foreground(cfg.Render.Theme.Palette.Primary.Base).Render("●")
	dots.InactiveDot = lipgloss.NewStyle().Foreground(cfg.Render.Theme.Palette.Muted.OnBase).Render("○")

	counter := components.CaptionText(fmt.Sprintf("%d/%d", page+1, len(cfg.Items)))
	return components.VStack(
		frame,
		components.HStack(ui.Static(dots.View()), counter).WithGap(1),
	)
}

// ScrollingPreviewStyle lays every preview item side by side in one strip.
type ScrollingPreviewStyle struct{}

// Name implements Named.
func (ScrollingPreviewStyle) Name() string { return "scrolling" }

// MakeBody implements PreviewStyle.
func (ScrollingPreviewStyle) MakeBody(cfg PreviewConfiguration) ui.Renderable {
	if len(cfg.Items) == 0 {
		return nil
	}

	strip := components.HStack().WithGap(1)
	for _, item := range cfg.Items {
		strip.Add(components.NewBox(item.Content).
			WithBorder(components.BorderVariantNormal, components.PaletteMuted).
			WithCaption(item.Caption))
	}
	return strip
}

func wrapPage(page, n int) int {
	page %= n
	if page < 0 {
		page += n
	}
	return page
}

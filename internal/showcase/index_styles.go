package showcase

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/showroom/internal/ui"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

// BulletIndexStyle draws entries as an indented bullet list using the entry icon.
type BulletIndexStyle struct{}

// Name implements Named.
func (BulletIndexStyle) Name() string { return "bullet" }

// MakeBody implements IndexStyle.
func (BulletIndexStyle) MakeBody(cfg IndexConfiguration) ui.Renderable {
	return indexRow(cfg, cfg.Icon)
}

// NumberedIndexStyle draws entries as an indented numbered list.
type NumberedIndexStyle struct{}

// Name implements Named.
func (NumberedIndexStyle) Name() string { return "numbered" }

// MakeBody implements IndexStyle.
func (NumberedIndexStyle) MakeBody(cfg IndexConfiguration) ui.Renderable {
	return indexRow(cfg, fmt.Sprintf("%d.", cfg.Position+1))
}

func indexRow(cfg IndexConfiguration, marker string) ui.Renderable {
	label := components.NewText(cfg.Label).WithAppliers(components.Typography(components.TypographyVariantBody))
	if cfg.Selected {
		label = components.NewText(cfg.Label).WithAppliers(
			components.Typography(components.TypographyVariantStrong),
			components.Foreground(components.PalettePrimary),
		)
	}
	return components.HStack(
		ui.Static(strings.Repeat(" ", cfg.IndentSize)),
		components.NewText(marker).WithAppliers(components.Foreground(components.PaletteMuted)),
		ui.Static(" "),
		label,
	)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/showroom/internal/showcase"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the registered preview styles, index styles, themes and easings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatGroup("Preview styles", showcase.PreviewStyleNames(), showcase.StyleName(showcase.DefaultPreviewStyle())))
			fmt.Fprintln(out, formatGroup("Index styles", showcase.IndexStyleNames(), showcase.StyleName(showcase.DefaultIndexStyle())))
			fmt.Fprintln(out, formatGroup("Themes", components.ThemeNames(), components.DefaultTheme().Name))
			fmt.Fprintln(out, formatGroup("Easings", showcase.EasingNames(), "out-cubic"))
			return nil
		},
	}
}

func formatGroup(label string, names []string, fallback string) string {
	c := cases.Title(language.English)

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", label)
	for _, name := range names {
		marker := " "
		if name == fallback {
			marker = "*"
		}
		fmt.Fprintf(&b, "  %s %-12s %s\n", marker, name, c.String(strings.ReplaceAll(name, "-", " ")))
	}
	return strings.TrimRight(b.String(), "\n")
}

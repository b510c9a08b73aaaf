package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
	"github.com/alexisbeaulieu97/showroom/internal/config"
	"github.com/alexisbeaulieu97/showroom/internal/showcase"
	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

type renderOptions struct {
	previewStyle string
	indexStyle   string
	theme        string
	width        int
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [topic-id]",
		Short: "Print a topic and all of its sub-topics",
		Long:  "Render a topic region non-interactively. Without an id the whole catalog is printed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := catalog.RootID
			if len(args) == 1 {
				id = topic.ID(args[0])
			}
			return runRender(cmd, rootFlags, opts, id)
		},
	}

	cmd.Flags().StringVar(&opts.previewStyle, "preview-style", "", "Preview style (paged, scrolling)")
	cmd.Flags().StringVar(&opts.indexStyle, "index-style", "", "Index style (bullet, numbered)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme (default, dark, mono)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width; defaults to the terminal width")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, id topic.ID) error {
	settings, err := loadSettings(rootFlags)
	if err != nil {
		return err
	}

	settings = opts.apply(settings)
	if settings.Width == 0 {
		if width, ok := terminalWidth(cmd.OutOrStdout()); ok {
			settings.Width = width
		}
	}
	if err := config.Validate(settings); err != nil {
		return newCommandError("render", "checking flags", err, "Run 'showroom styles' to see the available names.")
	}

	log, err := newLogger(settings, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	t, ok := topic.Find(catalog.Root(), id)
	if !ok {
		return newCommandError("render", fmt.Sprintf("topic %q", id), fmt.Errorf("no such topic"), "Run 'showroom list' to see topic ids.")
	}
	log.ForTopic(id).Debug("rendering topic")

	ctx := settings.Context()
	view := showcase.NewTopicView(ctx, t, settings.ScrollOptions(log)...)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, components.Render(ctx.Render(), components.TitleText(t.Title)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, view.View())
	return nil
}

func (o *renderOptions) apply(settings config.Settings) config.Settings {
	if o.previewStyle != "" {
		settings.PreviewStyle = o.previewStyle
	}
	if o.indexStyle != "" {
		settings.IndexStyle = o.indexStyle
	}
	if o.theme != "" {
		settings.Theme = o.theme
	}
	if o.width > 0 {
		settings.Width = o.width
	}
	return settings
}

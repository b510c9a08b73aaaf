package config

import (
	"io"
	"time"

	"github.com/alexisbeaulieu97/showroom/internal/logger"
	"github.com/alexisbeaulieu97/showroom/internal/showcase"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
)

// Settings holds the user-facing knobs of the renderer and the browser.
type Settings struct {
	Theme        string `yaml:"theme" toml:"theme" validate:"theme_name"`
	PreviewStyle string `yaml:"preview_style" toml:"preview_style" validate:"preview_style"`
	IndexStyle   string `yaml:"index_style" toml:"index_style" validate:"index_style"`
	// Width limits the render width; 0 uses the terminal width or no limit at all.
	Width  int            `yaml:"width" toml:"width" validate:"gte=0,lte=1000"`
	Scroll ScrollSettings `yaml:"scroll" toml:"scroll"`
	Log    LogSettings    `yaml:"log" toml:"log"`
}

// ScrollSettings configures scroll-to-anchor animation.
type ScrollSettings struct {
	DurationMS int    `yaml:"duration_ms" toml:"duration_ms" validate:"gte=0,lte=5000"`
	Easing     string `yaml:"easing" toml:"easing" validate:"easing"`
}

// LogSettings configures the application logger.
type LogSettings struct {
	Level string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	// File receives logs while the browser owns the terminal. Empty discards them.
	File  string `yaml:"file" toml:"file"`
	Human bool   `yaml:"human" toml:"human"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Theme:        "default",
		PreviewStyle: showcase.PagedPreviewStyle{}.Name(),
		IndexStyle:   showcase.BulletIndexStyle{}.Name(),
		Scroll: ScrollSettings{
			DurationMS: int(showcase.DefaultScrollDuration / time.Millisecond),
			Easing:     "out-cubic",
		},
		Log: LogSettings{
			Level: "info",
			Human: true,
		},
	}
}

// Context turns the settings into a root render context.
func (s Settings) Context() showcase.Context {
	render := components.DefaultContext().WithWidth(s.Width)
	if theme, ok := components.ThemeNamed(s.Theme); ok {
		render = render.WithTheme(theme)
	}

	ctx := showcase.NewContext(render)
	if style, ok := showcase.PreviewStyleNamed(s.PreviewStyle); ok {
		ctx = ctx.WithPreviewStyle(style)
	}
	if style, ok := showcase.IndexStyleNamed(s.IndexStyle); ok {
		ctx = ctx.WithIndexStyle(style)
	}
	return ctx
}

// ScrollOptions configures the scroll coordinator of every topic view.
func (s Settings) ScrollOptions(log *logger.Logger) []showcase.ScrollOption {
	opts := []showcase.ScrollOption{
		showcase.WithDuration(time.Duration(s.Scroll.DurationMS) * time.Millisecond),
		showcase.WithLogger(log.Named("scroll")),
	}
	if fn, ok := showcase.EasingNamed(s.Scroll.Easing); ok {
		opts = append(opts, showcase.WithEasing(fn))
	}
	return opts
}

// LoggerOptions describes a logger writing to w.
func (s Settings) LoggerOptions(w io.Writer) logger.Options {
	return logger.Options{
		Level:         s.Log.Level,
		HumanReadable: s.Log.Human,
		Writer:        w,
	}
}

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/showroom/internal/topic"
)

// Field names attached by the scoped helpers.
const (
	FieldTopic     = "topic"
	FieldComponent = "component"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog. A nil *Logger discards everything, so collaborators that were
// never handed one can log unconditionally.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger writing JSON lines, or console output when HumanReadable is set.
// Level defaults to info.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	base := zerolog.New(output(opts)).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func parseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

func output(opts Options) io.Writer {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if !opts.HumanReadable {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

// With returns a derived logger carrying a single extra field.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// ForTopic scopes entries to the topic with identity id.
func (l *Logger) ForTopic(id topic.ID) *Logger {
	return l.With(FieldTopic, string(id))
}

// Named tags entries with the part of the program writing them, such as "browser" or
// "scroll".
func (l *Logger) Named(component string) *Logger {
	return l.With(FieldComponent, component)
}

// Debug writes a debug entry if enabled.
func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, nil, msg) }

// Info writes an info entry.
func (l *Logger) Info(msg string) { l.write(zerolog.InfoLevel, nil, msg) }

// Warn writes a warning entry.
func (l *Logger) Warn(msg string) { l.write(zerolog.WarnLevel, nil, msg) }

// Error writes an error entry carrying err.
func (l *Logger) Error(err error, msg string) { l.write(zerolog.ErrorLevel, err, msg) }

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if event == nil {
		return
	}
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

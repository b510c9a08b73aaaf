package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/showroom/internal/config"
	"github.com/alexisbeaulieu97/showroom/internal/logger"
)

func loadSettings(flags *rootFlags) (config.Settings, error) {
	settings := config.Default()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return config.Settings{}, newCommandError("load settings", flags.config, err, "Fix the settings file or run without --config.")
		}
		settings = loaded
	}
	if flags.verbose {
		settings.Log.Level = "debug"
	}
	return settings, nil
}

func newLogger(settings config.Settings, w io.Writer) (*logger.Logger, error) {
	log, err := logger.New(settings.LoggerOptions(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

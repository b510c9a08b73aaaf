package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
	"github.com/alexisbeaulieu97/showroom/internal/tui"
)

func runBrowser(cmd *cobra.Command, flags *rootFlags) error {
	settings, err := loadSettings(flags)
	if err != nil {
		return err
	}

	// The browser owns the terminal, so logs only go to a file.
	var sink io.Writer = io.Discard
	if settings.Log.File != "" {
		file, err := os.OpenFile(settings.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return newCommandError("open log file", settings.Log.File, err, "Check the log.file setting and its directory permissions.")
		}
		defer file.Close()
		sink = file
	}

	log, err := newLogger(settings, sink)
	if err != nil {
		return err
	}
	log.With("theme", settings.Theme).Info("launching browser")

	model := tui.NewModel(catalog.Root(), tui.Options{
		Context: settings.Context(),
		Scroll:  settings.ScrollOptions(log),
		Logger:  log,
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		log.Error(err, "browser exited with error")
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}

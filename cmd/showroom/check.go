package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
	"github.com/alexisbeaulieu97/showroom/internal/topic"
)

func newCheckCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the catalog and the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, rootFlags, catalog.Root())
		},
	}
}

func runCheck(cmd *cobra.Command, rootFlags *rootFlags, root topic.Topic) error {
	if _, err := loadSettings(rootFlags); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := topic.Validate(root); err != nil {
		var joined interface{ Unwrap() []error }
		problems := []error{err}
		if errors.As(err, &joined) {
			problems = joined.Unwrap()
		}
		for _, problem := range problems {
			fmt.Fprintf(out, "✗ %v\n", problem)
		}
		return newCommandError("check catalog", fmt.Sprintf("%d problem(s)", len(problems)), err, "Give every topic a unique id and a title.")
	}

	fmt.Fprintf(out, "✓ %d topics valid\n", topic.Count(root))
	return nil
}

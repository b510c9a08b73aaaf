package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	config  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "showroom",
		Short:         "Showroom browses a documented catalog of terminal UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to a YAML or TOML settings file")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newStylesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/five82/christoffel/internal/app"
)

// errReported marks failures whose details were already printed.
var errReported = errors.New("reported")

type rootFlags struct {
	configPath string
	prefsPath  string
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "christoffel",
		Short:         "Christoffel is a terminal restaurant menu",
		Long:          "Browse the restaurant menu, add dishes through a form and remove them with confirmation.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				Debug:      flags.debug,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/christoffel/config.toml)")
	cmd.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "prefs file (default ~/.config/christoffel/prefs.toml)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log navigation to the activity log")

	cmd.AddCommand(newMenuCmd(), newCheckCmd(), newLogCmd(flags))
	return cmd
}

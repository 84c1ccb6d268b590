// Package cmd provides Cobra CLI commands for sidepanel.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/sidepanel/internal/cli"
	"github.com/bnema/sidepanel/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	verbose    bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sidepanel",
		Short: "Slide-out side panels for the terminal",
		Long: `Sidepanel - slide-out panels that push, cover or reveal the content.

Panels sit on the left or right edge of the screen. They open with a key,
a swipe or a drag, dock permanently on wide terminals, and shrink on narrow
ones, following the breakpoints in the configuration file.

Use 'sidepanel run' to open the interactive shell, or 'sidepanel simulate'
to replay a scripted sequence of gestures and print the resulting layout.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFile, Verbose: verbose})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/sidepanel/config.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr at the configured level")
	return root
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

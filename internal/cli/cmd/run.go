package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/sidepanel/internal/bootstrap"
	"github.com/bnema/sidepanel/internal/cli/model"
	"github.com/bnema/sidepanel/internal/infrastructure/config"
	"github.com/bnema/sidepanel/internal/logging"
	"github.com/bnema/sidepanel/internal/ui/mainloop"
)

var runNoWatch bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive shell",
	Long: `Open the configured panels in the terminal.

Press a panel key to toggle it, or swipe and drag with the mouse. The
configuration file is watched and edits apply without a restart, except
changes to the panel list.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runNoWatch, "no-watch", false, "do not reload the config file on change")
}

func runShell(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// The terminal belongs to the UI; logs go to the rotated file only.
	logger, cleanup, err := bootstrap.SetupLogging(app.Config.Logging, false)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	app.WithContext(logging.WithContext(cmd.Context(), logger), cleanup)
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	rt, err := bootstrap.NewRuntime(ctx, app.Config)
	if err != nil {
		return err
	}
	defer rt.Destroy()

	shell := model.NewShellModel(ctx, app.Theme, rt)
	program := tea.NewProgram(
		shell,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	// A single save fires several fsnotify events; apply only the latest.
	tasks, err := mainloop.NewCoalescer(func(fn func()) { program.Send(model.TaskMsg(fn)) })
	if err != nil {
		return err
	}
	defer tasks.Destroy()

	if !runNoWatch {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			tasks.Post("config", func() { shell.ApplyConfig(cfg) })
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	sigCtx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()
	runCtx, stop := context.WithCancel(sigCtx)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer stop()
		_, err := program.Run()
		if errors.Is(err, tea.ErrInterrupted) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		program.Quit()
		return nil
	})

	log.Info().Int("panels", len(rt.Panels())).Msg("shell running")
	if err := g.Wait(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	log.Info().Msg("shell closed")
	return nil
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/sidepanel/internal/application/usecase"
	"github.com/bnema/sidepanel/internal/bootstrap"
	"github.com/bnema/sidepanel/internal/cli/styles"
	"github.com/bnema/sidepanel/internal/infrastructure/script"
	"github.com/bnema/sidepanel/internal/infrastructure/terminal"
)

var (
	simulateSettle bool
	simulatePlain  bool
	simulateWidth  float64
	simulateHeight float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <script.yaml>",
	Short: "Replay a gesture script and print the layout after each step",
	Long: `Replay a YAML script of pointer input and panel calls against the
configured shell on a virtual clock, then print the content offsets and
every panel's state after each step.

Transitions only advance on 'wait' and 'settle' steps unless --settle is
given, so intermediate animation frames can be inspected.

Example script:
  name: open menu
  width: 100
  height: 30
  steps:
    - action: drag
      x: 10
      y: 5
      to_x: 40
      to_y: 5
      duration_ms: 100
    - action: settle
    - action: toggle
      panel: details`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVar(&simulateSettle, "settle", false, "complete transitions after every step")
	simulateCmd.Flags().BoolVar(&simulatePlain, "plain", false, "print tab-separated rows instead of a table")
	simulateCmd.Flags().Float64Var(&simulateWidth, "width", 120, "viewport width when the script sets none")
	simulateCmd.Flags().Float64Var(&simulateHeight, "height", 40, "viewport height when the script sets none")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	s, err := script.Load(args[0])
	if err != nil {
		return err
	}

	rt, err := bootstrap.NewRuntime(ctx, app.Config)
	if err != nil {
		return err
	}
	defer rt.Destroy()

	clock := terminal.NewVirtualClock(rt.Animator, time.Unix(0, 0))
	rt.Recognizer.SetClock(clock.Now)
	rt.Resize(simulateWidth, simulateHeight)

	uc := usecase.NewSimulateUseCase(rt.Recognizer, rt, clock)
	out, runErr := uc.Execute(ctx, usecase.SimulateInput{
		Script: s,
		Shell:  rt.Built,
		Settle: simulateSettle,
	})

	renderer := styles.NewSimulationRenderer(app.Theme)
	w := cmd.OutOrStdout()
	if out != nil {
		if simulatePlain {
			fmt.Fprint(w, renderer.RenderPlain(out))
		} else {
			fmt.Fprintln(w, renderer.RenderTable(out))
		}
	}
	if runErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(runErr))
		return runErr
	}
	return nil
}

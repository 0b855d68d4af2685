package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ballmer/internal/handlers/terminal"
	"github.com/KirkDiggler/ballmer/internal/live"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow a plan live in the terminal",
	Example: `  ballmer watch --start 19:00 --peak 22:00 --end 23:30 --weight 160`,
	RunE: runWatch,
}

func init() {
	addSessionFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.cleanup()

	// the live view owns the terminal
	if a.cfg.Logging.File == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	output, err := a.createPlan(ctx, cmd)
	if err != nil {
		return err
	}

	presenter := terminal.NewPresenter()
	driver, err := live.New(&live.Config{
		Clock:     a.clock,
		Plan:      output.Plan,
		Presenter: presenter,
		Interval:  a.cfg.Live.Interval,
		MaxTicks:  a.cfg.Live.MaxTicks,
		Logger:    &a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create live driver: %w", err)
	}

	model, err := terminal.NewModel(&terminal.Config{
		Plan:      output.Plan,
		Presenter: presenter,
		Messaging: a.messaging,
		PeakBAC:   a.model.Config().BallmerPeakBAC,
	})
	if err != nil {
		return fmt.Errorf("failed to create terminal view: %w", err)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	driverCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	driverErr := make(chan error, 1)
	go func() {
		err := driver.Run(driverCtx)
		if err == nil {
			program.Quit()
		}
		driverErr <- err
	}()

	_, runErr := program.Run()
	cancel()

	if err := <-driverErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal view failed: %w", runErr)
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ballmer/internal/services/messaging"
	"github.com/KirkDiggler/ballmer/internal/services/planner"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where a plan stands right now",
	Example: `  ballmer status --start 19:00 --peak 22:00 --end 23:30 --weight 160`,
	RunE: runStatus,
}

func init() {
	addSessionFlags(statusCmd)
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.cleanup()

	ctx := cmd.Context()
	output, err := a.createPlan(ctx, cmd)
	if err != nil {
		return err
	}
	plan := output.Plan

	status, err := a.planner.GetStatus(ctx, &planner.GetStatusInput{Plan: plan})
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	input := &messaging.GetStatusMessageInput{
		PeakBAC:       a.model.Config().BallmerPeakBAC,
		Started:       !status.Now.Before(plan.Params.Start),
		PeakReached:   status.PeakReached,
		Finished:      status.Finished,
		PreferredTone: messaging.MessageTone(tone),
	}
	if status.Current != nil {
		input.CurrentBAC = status.Current.BAC
	}
	if status.NextDrink != nil {
		input.UntilNextDrink = status.NextDrink.Time.Sub(status.Now)
	}

	comment, err := a.messaging.GetStatusMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to describe status: %w", err)
	}

	out := cmd.OutOrStdout()
	heading.Fprintf(out, "Status at %s\n", status.Now.Format("3:04:05 PM"))
	fmt.Fprintln(out, comment.Message)

	if status.Current != nil {
		highlight.Fprintf(out, "BAC: %.3f\n", status.Current.BAC)
	} else {
		highlight.Fprintln(out, "BAC: -")
	}
	fmt.Fprintf(out, "Drinks in: %d (%.2f standard)\n", status.ConsumedCount, status.ConsumedDrinks)
	fmt.Fprintf(out, "Drinks to go: %d\n", status.PendingCount)
	if status.NextDrink != nil {
		fmt.Fprintf(out, "Next drink: %s (in %s)\n",
			status.NextDrink.Time.Format("3:04 PM"),
			status.NextDrink.Time.Sub(status.Now).Round(time.Second))
	}

	return nil
}

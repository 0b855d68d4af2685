package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ballmer/internal/handlers/terminal"
	"github.com/KirkDiggler/ballmer/internal/services/messaging"
)

const (
	chartWidth  = 80
	chartHeight = 10
)

var (
	heading      = color.New(color.FgCyan, color.Bold)
	highlight    = color.New(color.FgYellow)
	errorHeading = color.New(color.FgRed, color.Bold)
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print a drink schedule and BAC chart",
	Example: `  ballmer plan --start 19:00 --peak 22:00 --end 23:30 --weight 160 --sex male`,
	RunE: runPlan,
}

func init() {
	addSessionFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
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

	summary, err := a.messaging.GetPlanSummaryMessage(ctx, &messaging.GetPlanSummaryMessageInput{
		TargetDrinks:  plan.TargetDrinks,
		DrinkCount:    len(plan.Schedule),
		PeakTime:      plan.Params.Peak,
		WholeDrinks:   output.WholeDrinks,
		PreferredTone: messaging.MessageTone(tone),
	})
	if err != nil {
		return fmt.Errorf("failed to summarise plan: %w", err)
	}

	out := cmd.OutOrStdout()
	heading.Fprintln(out, "Ballmer Peak plan")
	fmt.Fprintln(out, summary.Message)
	highlight.Fprintf(out, "Target: %.2f drinks for %.0f lb (r=%.2f)\n",
		plan.TargetDrinks, plan.Params.Weight, plan.Params.DistributionConstant)
	if output.Peak != nil {
		highlight.Fprintf(out, "Highest BAC: %.3f at %s\n", output.Peak.BAC, output.Peak.Time.Format("3:04 PM"))
	}

	fmt.Fprintln(out)
	heading.Fprintln(out, "Drinks")
	fmt.Fprintln(out, terminal.RenderDrinkChart(plan.Schedule, plan.Params.Start, chartWidth))

	fmt.Fprintln(out)
	heading.Fprintln(out, "BAC")
	fmt.Fprintln(out, terminal.RenderBACChart(plan.Timeline, nil, chartHeight, chartWidth))

	return nil
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	var (
		autoReset    bool
		resetTime    string
		preserve     bool
		celebration  bool
		goal         float64
		showHistory  bool
		clearHistory bool
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the focus configuration",
		Example: `
focus settings
focus settings --auto-reset=false
focus settings --reset-time 05:30 --goal 6
focus settings --history
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := settings.Settings{
				ShowHistory:  showHistory,
				ClearHistory: clearHistory,
				Service:      s,
			}
			if cmd.Flags().Changed("auto-reset") {
				n.AutoReset = &autoReset
			}
			if cmd.Flags().Changed("reset-time") {
				n.ResetTime = &resetTime
			}
			if cmd.Flags().Changed("preserve-incomplete") {
				n.PreserveIncomplete = &preserve
			}
			if cmd.Flags().Changed("celebration") {
				n.Celebration = &celebration
			}
			if cmd.Flags().Changed("goal") {
				n.DailyGoalHours = &goal
			}
			return n.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&autoReset, "auto-reset", true, "Prompt for a focus reset on the first launch of each day.")
	cmd.Flags().StringVar(&resetTime, "reset-time", "06:00", "Nominal day boundary, HH:MM.")
	cmd.Flags().BoolVar(&preserve, "preserve-incomplete", true, "Keep incomplete tasks in their slots across resets.")
	cmd.Flags().BoolVar(&celebration, "celebration", true, "Celebrate when all three slots complete.")
	cmd.Flags().Float64Var(&goal, "goal", 8, "Daily work goal in hours.")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show past focus sets instead of settings.")
	cmd.Flags().BoolVar(&clearHistory, "clear-history", false, "Erase the focus history.")

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	apply := false
	dismiss := false
	keep := false
	resetType := ""

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Check for or apply the daily focus reset",
		Example: `
focus reset
focus reset --apply
focus reset --apply --keep
focus reset --apply --type continued
focus reset --dismiss
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := reset.Reset{
				Apply:   apply,
				Dismiss: dismiss,
				Keep:    keep,
				Type:    resetType,
				Service: s,
			}
			return n.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Retire the current focus set and start the new day.")
	cmd.Flags().BoolVar(&dismiss, "dismiss", false, "Acknowledge the new day without touching the slots.")
	cmd.Flags().BoolVar(&keep, "keep", false, "Keep incomplete tasks in their slots when applying.")
	cmd.Flags().StringVar(&resetType, "type", "",
		"Reset type to record: clear, preserve-incomplete, continued, manual, or auto.")

	topLevel.AddCommand(cmd)
}

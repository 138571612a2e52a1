package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/runner/nuke"
)

func addNuke(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "nuke",
		Short: "Erase all stored data",
		Example: `
focus nuke --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := nuke.Nuke{Confirmed: yes, Service: s}
			return n.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Really erase everything. There is no undo.")

	topLevel.AddCommand(cmd)
}

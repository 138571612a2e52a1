package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/runner/top"
)

func addTop(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Manage today's Top-3 focus slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	set := &cobra.Command{
		Use:   "set <id> <slot>",
		Short: "Put a todo in a focus slot (1-3)",
		Example: `
focus top set todo_a1b2c3d4 1
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New("slot must be a number from 1 to 3")
			}
			s, err := service()
			if err != nil {
				return err
			}
			n := top.Top{ID: args[0], Slot: slot, Service: s}
			return n.Do(context.Background())
		},
	}

	unset := &cobra.Command{
		Use:   "unset <id>",
		Short: "Take a todo out of its focus slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := top.Top{ID: args[0], Slot: 0, Service: s}
			return n.Do(context.Background())
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Vacate all three focus slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := top.Top{Clear: true, Service: s}
			return n.Do(context.Background())
		},
	}

	cmd.AddCommand(set)
	cmd.AddCommand(unset)
	cmd.AddCommand(clear)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	run := func(reopen bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("a todo id is required")
			}
			s, err := service()
			if err != nil {
				return err
			}
			n := complete.Complete{
				ID:      args[0],
				Reopen:  reopen,
				Service: s,
			}
			return n.Do(context.Background())
		}
	}

	done := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a todo completed",
		Example: `
focus complete todo_a1b2c3d4
`,
		RunE: run(false),
	}

	reopen := &cobra.Command{
		Use:   "reopen <id>",
		Short: "Reopen a completed todo",
		Example: `
focus reopen todo_a1b2c3d4
`,
		RunE: run(true),
	}

	topLevel.AddCommand(done)
	topLevel.AddCommand(reopen)
}

package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	notes := ""
	slot := 0

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo",
		Example: `
focus add write the quarterly report
focus add fix the login bug --project backend
focus add prep the demo --slot 1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("todo text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := add.Add{
				Text:    strings.Join(args, " "),
				Project: po.Project,
				Notes:   notes,
				Slot:    slot,
				Service: s,
			}
			return n.Do(context.Background())
		},
	}

	options.AddProjectArgs(cmd, po)
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes for the todo.")
	cmd.Flags().IntVar(&slot, "slot", 0, "Place the new todo in a focus slot (1-3).")

	topLevel.AddCommand(cmd)
}

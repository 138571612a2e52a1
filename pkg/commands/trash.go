package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/runner/trash"
)

func addTrash(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "trash",
		Short: "List and manage soft-deleted todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := trash.Trash{Service: s}
			return n.Do(context.Background())
		},
	}

	withID := func(use, short string, build func(id string) trash.Trash) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := service()
				if err != nil {
					return err
				}
				n := build(args[0])
				n.Service = s
				return n.Do(context.Background())
			},
		}
	}

	cmd.AddCommand(withID("delete <id>", "Move a todo to the trash", func(id string) trash.Trash {
		return trash.Trash{Delete: true, ID: id}
	}))
	cmd.AddCommand(withID("restore <id>", "Bring a todo back from the trash", func(id string) trash.Trash {
		return trash.Trash{Restore: true, ID: id}
	}))
	cmd.AddCommand(withID("purge <id>", "Remove a trashed todo permanently", func(id string) trash.Trash {
		return trash.Trash{Purge: true, ID: id}
	}))
	cmd.AddCommand(&cobra.Command{
		Use:   "sweep",
		Short: "Purge everything past the 30 day retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := trash.Trash{Sweep: true, Service: s}
			return n.Do(context.Background())
		},
	})

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/runner/backup"
)

func addBackup(topLevel *cobra.Command) {
	restore := false
	inspect := false

	cmd := &cobra.Command{
		Use:   "backup <file>",
		Short: "Export, inspect, or restore the full data set",
		Example: `
focus backup focus.json
focus backup focus.json --inspect
focus backup focus.json --restore
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := backup.Backup{
				Path:    args[0],
				Restore: restore,
				Inspect: inspect,
				Service: s,
			}
			return n.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&restore, "restore", false, "Load the file back into the store.")
	cmd.Flags().BoolVar(&inspect, "inspect", false, "Describe the file without touching the store.")

	topLevel.AddCommand(cmd)
}

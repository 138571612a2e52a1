package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize tracked time against the daily goal",
		Example: `
focus report
focus report --window 1d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := report.Report{
				Window:  wo.Window,
				ShowID:  io.ShowID,
				Service: s,
			}
			return n.Do(context.Background())
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

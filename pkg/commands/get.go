package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	po := &options.ProjectOptions{}
	focusOnly := false
	completed := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List todos",
		Example: `
focus get
focus get --focus
focus get --project backend --completed
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := get.Get{
				ShowID:    io.ShowID,
				Focus:     focusOnly,
				Project:   po.Project,
				Completed: completed,
				Service:   s,
			}
			if oo.JSON {
				n.Output = "json"
			}
			err = n.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddProjectArgs(cmd, po)
	base.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVarP(&focusOnly, "focus", "f", false, "Show only today's Top-3.")
	cmd.Flags().BoolVar(&completed, "completed", false, "Include completed todos.")

	topLevel.AddCommand(cmd)
}

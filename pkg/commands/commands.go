package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "focus",
		Short: base.Wrap80("Daily focus and todo tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addTop(topLevel)
	addReset(topLevel)
	addProject(topLevel)
	addTrash(topLevel)
	addTrack(topLevel)
	addReport(topLevel)
	addSettings(topLevel)
	addBackup(topLevel)
	addWatch(topLevel)
	addNuke(topLevel)
	addVersion(topLevel)
}

// service opens the store and composes the application facade. Every
// command goes through here so they all see the same migrations and
// availability handling.
func service() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cfg, store.Options{})
	if err != nil {
		return nil, err
	}
	return app.New(kv), nil
}

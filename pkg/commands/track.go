package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/track"
	"tableflip.dev/focus/pkg/timeutil"
)

func addTrack(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	io := &options.IDOptions{}
	duration := ""
	year := false
	list := false

	cmd := &cobra.Command{
		Use:   "track [description]",
		Short: "Record a work session, or view the tracking calendar",
		Example: `
focus track
focus track --year
focus track --list
focus track wrote the deck --for 25m --project backend
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var d time.Duration
			if duration != "" {
				var err error
				d, _, err = timeutil.ParseWindow(duration)
				if err != nil {
					return err
				}
			}
			s, err := service()
			if err != nil {
				return err
			}
			n := track.Track{
				Duration:    d,
				Description: strings.Join(args, " "),
				Project:     po.Project,
				TodoID:      io.ID,
				Year:        year,
				List:        list,
				Service:     s,
			}
			return n.Do(context.Background())
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddIDArgs(cmd, io)
	cmd.Flags().StringVar(&duration, "for", "", `How long the session lasted, such as "25m" or "1h30m".`)
	cmd.Flags().BoolVar(&year, "year", false, "Show the whole year's calendar.")
	cmd.Flags().BoolVar(&list, "list", false, "List recorded sessions instead of the calendar.")

	topLevel.AddCommand(cmd)
}

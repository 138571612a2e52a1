// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each item.")
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify the id of a todo.")
}

// ProjectOptions
type ProjectOptions struct {
	Project string
}

func AddProjectArgs(cmd *cobra.Command, o *ProjectOptions) {
	cmd.Flags().StringVarP(&o.Project, "project", "p", "",
		"Specify the project by name.")
}

// WindowOptions
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "",
		`Time window such as "1d", "2w", or "1w2d". Defaults to one week.`)
}

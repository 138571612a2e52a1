package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/runner/project"
)

func addProject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := project.Project{Service: s}
			return n.Do(context.Background())
		},
	}

	one := func(use, short string, build func(args []string) project.Project) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := service()
				if err != nil {
					return err
				}
				n := build(args)
				n.Service = s
				return n.Do(context.Background())
			},
		}
	}

	cmd.AddCommand(one("add <name>", "Create a project", func(args []string) project.Project {
		return project.Project{Add: true, Name: strings.Join(args, " ")}
	}))
	cmd.AddCommand(&cobra.Command{
		Use:   "rename <name> <new-name>",
		Short: "Rename a project everywhere",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := project.Project{Rename: true, Name: args[0], NewName: args[1], Service: s}
			return n.Do(context.Background())
		},
	})
	cmd.AddCommand(one("archive <name>", "Archive a project", func(args []string) project.Project {
		return project.Project{Archive: true, Name: strings.Join(args, " ")}
	}))
	cmd.AddCommand(one("unarchive <name>", "Bring a project back from the archive", func(args []string) project.Project {
		return project.Project{Unarchive: true, Name: strings.Join(args, " ")}
	}))
	cmd.AddCommand(one("delete <name>", "Delete a project, keeping its todos", func(args []string) project.Project {
		return project.Project{Delete: true, Name: strings.Join(args, " ")}
	}))
	cmd.AddCommand(&cobra.Command{
		Use:   "notes <name> <notes>",
		Short: "Set a project's notes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			n := project.Project{SetNotes: true, Name: args[0], Notes: strings.Join(args[1:], " "), Service: s}
			return n.Do(context.Background())
		},
	})

	topLevel.AddCommand(cmd)
}

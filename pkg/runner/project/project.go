// Package project manages the project list: create, rename, archive, and
// delete.
package project

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/repo"
)

// Project runs one project operation. Exactly one of Add, Rename, Archive,
// Unarchive, Delete, or Notes should be chosen; with none set it lists.
type Project struct {
	Name    string
	NewName string
	Notes   string

	Add       bool
	Rename    bool
	Archive   bool
	Unarchive bool
	Delete    bool
	SetNotes  bool

	Service *app.Service
}

func (n *Project) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not manage projects, no service")
	}

	if err := n.run(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	projects := n.Service.Projects.All()
	pp.TitleWithCount("projects", len(projects))
	pp.Projects(projects...)
	return nil
}

func (n *Project) run() error {
	if !n.Add && !n.Rename && !n.Archive && !n.Unarchive && !n.Delete && !n.SetNotes {
		return nil
	}

	if n.Add {
		_, err := n.Service.Projects.Add(n.Name)
		return err
	}

	p, err := n.Service.Projects.FindByName(n.Name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("no project named %q", n.Name)
		}
		return err
	}

	switch {
	case n.Rename:
		return n.Service.Projects.Rename(p.ID, n.NewName)
	case n.Archive:
		return n.Service.Projects.Archive(p.ID)
	case n.Unarchive:
		return n.Service.Projects.Unarchive(p.ID)
	case n.Delete:
		return n.Service.Projects.Delete(p.ID)
	case n.SetNotes:
		return n.Service.Projects.UpdateNotes(p.ID, n.Notes)
	}
	return nil
}

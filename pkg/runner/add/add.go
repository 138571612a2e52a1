package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/repo"
)

// Add creates a new todo, optionally placing it straight into a focus slot.
type Add struct {
	Text    string
	Project string
	Notes   string
	Slot    int

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if n.Project != "" {
		if _, err := n.Service.Projects.FindByName(n.Project); err != nil {
			if !errors.Is(err, repo.ErrNotFound) {
				return err
			}
			if _, err := n.Service.Projects.Add(n.Project); err != nil {
				return err
			}
		}
	}

	id, err := n.Service.Todos.Add(repo.TodoDraft{
		Text:      n.Text,
		ProjectID: n.Project,
		Notes:     n.Notes,
	})
	if err != nil {
		return err
	}

	if n.Slot != 0 {
		if err := n.Service.SetFocusOrder(id, n.Slot); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	active := n.Service.Todos.Active()
	pp.TitleWithCount("todos", len(active))
	pp.Todos(active...)
	return nil
}

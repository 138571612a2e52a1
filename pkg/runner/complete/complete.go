// Package complete provides the runner logic for completing and reopening
// todos.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/repo"
)

// Complete toggles a todo's completion state. Reopen true clears it.
type Complete struct {
	ID     string
	Reopen bool

	Service *app.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	done := !n.Reopen
	todo, err := n.Service.Todos.Update(n.ID, repo.TodoChanges{Completed: &done})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("updated")
	pp.Todos(todo)
	return nil
}

package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/printers"
)

// Get lists todos. With Focus set it shows only today's Top-3; with Project
// set it filters to one project. Output "json" emits the list as JSON
// instead of the pretty view.
type Get struct {
	ShowID    bool
	Focus     bool
	Project   string
	Completed bool
	Output    string

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	var list []entity.Todo
	title := "todos"
	switch {
	case n.Focus:
		list = n.Service.TodaysFocus()
		title = "today's focus"
	default:
		list = n.filtered(n.Service.Todos.Active())
		if n.Project != "" {
			title = n.Project
		}
	}

	if n.Output == "json" {
		b, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	if n.Focus {
		pp.Title(title)
		pp.Focus(list...)
		return nil
	}
	pp.TitleWithCount(title, len(list))
	pp.Todos(list...)
	return nil
}

func (n *Get) filtered(all []entity.Todo) []entity.Todo {
	c := make([]entity.Todo, 0, len(all))
	for _, td := range all {
		if n.Project != "" && td.ProjectID != n.Project {
			continue
		}
		if !n.Completed && td.Completed {
			continue
		}
		c = append(c, td)
	}
	return c
}

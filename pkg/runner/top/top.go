// Package top manages the Top-3 daily focus slots.
package top

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/printers"
)

// Top assigns or clears focus slots. With ID set, Slot 1..3 places the todo
// and Slot 0 removes it. Clear true vacates all three slots.
type Top struct {
	ID    string
	Slot  int
	Clear bool

	Service *app.Service
}

func (n *Top) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set focus, no service")
	}

	if n.Clear {
		if err := n.Service.ClearFocusTasks(); err != nil {
			return err
		}
	} else {
		if n.ID == "" {
			return errors.New("a todo id is required")
		}
		if err := n.Service.SetFocusOrder(n.ID, n.Slot); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("today's focus")
	pp.Focus(n.Service.TodaysFocus()...)
	return nil
}

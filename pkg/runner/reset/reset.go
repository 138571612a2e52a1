// Package reset drives the daily focus reset from the command line.
package reset

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/focus"
	"tableflip.dev/focus/pkg/printers"
)

// Reset checks whether a new day started and, when asked, retires the
// current focus set. Without Apply or Dismiss it reports the pending
// decision. Type picks the reset type explicitly; when empty, Keep (or the
// preserve-incomplete setting) chooses between preserve-incomplete and
// clear.
type Reset struct {
	Apply   bool
	Dismiss bool
	Keep    bool
	Type    string

	Service *app.Service
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reset, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	switch {
	case n.Apply:
		resetType := entity.ResetType(n.Type)
		switch {
		case n.Type == "":
			resetType = entity.ResetClear
			if n.Keep || n.Service.Focus.Settings().PreserveIncomplete {
				resetType = entity.ResetPreserveIncomplete
			}
		case !resetType.Valid():
			return fmt.Errorf("unknown reset type %q", n.Type)
		}
		if err := n.Service.ApplyReset(resetType); err != nil {
			return err
		}
		pp.Title("focus reset")
		pp.Focus(n.Service.TodaysFocus()...)

	case n.Dismiss:
		if err := n.Service.DismissReset(); err != nil {
			return err
		}
		fmt.Println("reset dismissed")

	default:
		decision, err := n.Service.OnLaunch()
		if err != nil {
			return err
		}
		if decision == focus.ResetRequired {
			fmt.Println("a new day started; run `focus reset --apply` or `focus reset --dismiss`")
		} else {
			fmt.Println("nothing to reset")
		}
	}

	fmt.Println("")
	return nil
}

// Package nuke wipes every stored value. There is no undo.
package nuke

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/app"
)

// Nuke erases the whole store. Confirmed must be set by the command layer
// after the user typed the confirmation phrase.
type Nuke struct {
	Confirmed bool

	Service *app.Service
}

func (n *Nuke) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not nuke, no service")
	}
	if !n.Confirmed {
		return errors.New("refusing to erase without --yes")
	}

	if err := n.Service.ResetAllData(); err != nil {
		return err
	}
	fmt.Println("\nall data erased")
	return nil
}

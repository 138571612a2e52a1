// Package trash handles soft-deleted todos: listing, restoring, and
// purging.
package trash

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/printers"
)

// Trash lists the trash by default. Delete moves a todo into the trash,
// Restore brings one back, Purge removes one permanently, and Sweep purges
// everything past the retention window.
type Trash struct {
	ID      string
	Delete  bool
	Restore bool
	Purge   bool
	Sweep   bool

	Service *app.Service
}

func (n *Trash) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not manage trash, no service")
	}

	switch {
	case n.Delete:
		if err := n.Service.Todos.SoftDelete(n.ID); err != nil {
			return err
		}
	case n.Restore:
		if err := n.Service.Todos.Restore(n.ID); err != nil {
			return err
		}
	case n.Purge:
		if err := n.Service.Todos.Purge(n.ID); err != nil {
			return err
		}
	case n.Sweep:
		count, err := n.Service.Todos.PurgeExpired(time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("\npurged %d expired item(s)\n", count)
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	trashed := n.Service.Todos.Trashed()
	pp.TitleWithCount("trash", len(trashed))
	pp.Trash(time.Now(), trashed...)
	return nil
}

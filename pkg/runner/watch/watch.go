// Package watch follows the store on disk and reprints the focus view as
// other processes change it.
package watch

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/printers"
)

// Watch blocks until ctx is cancelled, reprinting today's focus and the
// todo list whenever the underlying files change. The background trash
// sweep runs for as long as the watch does.
type Watch struct {
	ShowID bool

	Service *app.Service
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no service")
	}

	events, err := n.Service.KV.Watch(ctx)
	if err != nil {
		return err
	}
	n.Service.StartPurgeLoop(ctx, app.PurgeCadence)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	n.print(pp)

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if e.Key != "" {
				fmt.Printf("%s changed\n", e.Key)
			}
			n.print(pp)
		}
	}
}

func (n *Watch) print(pp printers.PrettyPrint) {
	fmt.Println("")
	pp.Title("today's focus")
	pp.Focus(n.Service.TodaysFocus()...)
	active := n.Service.Todos.Active()
	pp.TitleWithCount("todos", len(active))
	pp.Todos(active...)
}

// Package report summarizes tracked time over a window.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/timeutil"
)

// Report aggregates sessions over the given window ("1d", "2w", ...).
type Report struct {
	Window string
	ShowID bool

	Service *app.Service
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}

	window, canonical, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}

	now := time.Now()
	r := n.Service.Report(now.Add(-window), now)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(fmt.Sprintf("last %s", canonical))
	pp.Report(r)
	return nil
}

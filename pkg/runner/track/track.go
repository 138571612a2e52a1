// Package track records and lists work sessions.
package track

import (
	"context"
	"errors"
	"sort"
	"time"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/repo"
)

// Track records a session when Duration is nonzero, otherwise it prints
// the tracking calendar. Year true shows all twelve months; List true shows
// the sessions themselves, newest first.
type Track struct {
	Duration    time.Duration
	Description string
	Project     string
	TodoID      string
	Year        bool
	List        bool

	Service *app.Service
}

func (n *Track) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not track, no service")
	}

	if n.Duration > 0 {
		if _, err := n.Service.Sessions.Add(repo.SessionDraft{
			StartTime:   time.Now().Add(-n.Duration),
			DurationMs:  n.Duration.Milliseconds(),
			Description: n.Description,
			Project:     n.Project,
			TodoID:      n.TodoID,
		}); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	sessions := n.Service.Sessions.All()
	switch {
	case n.List:
		newestFirst(sessions)
		pp.TitleWithCount("sessions", len(sessions))
		pp.Sessions(sessions...)
	case n.Year:
		pp.TrackingYear(sessions...)
	default:
		pp.Tracking(sessions...)
	}
	return nil
}

func newestFirst(sessions []entity.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime.Time)
	})
}

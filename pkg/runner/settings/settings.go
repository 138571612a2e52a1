// Package settings reads and updates the focus configuration.
package settings

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/focus"
	"tableflip.dev/focus/pkg/printers"
)

var resetTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Settings prints the current configuration and applies any changes first.
// Nil fields are left untouched.
type Settings struct {
	AutoReset          *bool
	ResetTime          *string
	PreserveIncomplete *bool
	Celebration        *bool
	DailyGoalHours     *float64
	ShowHistory        bool
	ClearHistory       bool

	Service *app.Service
}

func (n *Settings) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not read settings, no service")
	}

	if n.ResetTime != nil && !resetTimePattern.MatchString(*n.ResetTime) {
		return fmt.Errorf("reset time must be HH:MM, got %q", *n.ResetTime)
	}
	if n.DailyGoalHours != nil && (*n.DailyGoalHours <= 0 || *n.DailyGoalHours > 24) {
		return fmt.Errorf("daily goal must be between 0 and 24 hours, got %g", *n.DailyGoalHours)
	}

	if n.AutoReset != nil || n.ResetTime != nil || n.PreserveIncomplete != nil || n.Celebration != nil {
		if _, err := n.Service.Focus.UpdateSettings(focus.SettingsChanges{
			AutoResetEnabled:          n.AutoReset,
			ResetTime:                 n.ResetTime,
			PreserveIncomplete:        n.PreserveIncomplete,
			ShowCompletionCelebration: n.Celebration,
		}); err != nil {
			return err
		}
	}
	if n.DailyGoalHours != nil {
		if err := n.Service.Focus.SetDailyGoalHours(*n.DailyGoalHours); err != nil {
			return err
		}
	}
	if n.ClearHistory {
		if err := n.Service.Focus.ClearHistory(); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.ShowHistory {
		history := n.Service.Focus.History()
		pp.TitleWithCount("focus history", len(history))
		pp.History(history...)
		return nil
	}

	pp.Title("settings")
	pp.Settings(n.Service.Focus.Settings(), n.Service.Focus.DailyGoalHours())
	return nil
}

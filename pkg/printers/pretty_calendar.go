package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/focus/pkg/entity"
)

// Tracking prints the current month as a grid, with days that have tracked
// sessions rendered bold.
func (pp *PrettyPrint) Tracking(sessions ...entity.Session) {
	pp.PrintMonth(time.Now(), sessions...)
}

// TrackingYear prints one grid per month of the current year.
func (pp *PrettyPrint) TrackingYear(sessions ...entity.Session) {
	now := time.Now()
	now = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.Local)

	for i := 0; i < 12; i++ {
		pp.PrintMonth(now, sessions...)
		now = NextMonth(now)
	}
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) PrintMonth(then time.Time, sessions ...entity.Session) {
	days := DaysIn(then)

	count := make([]int, days)

	for _, s := range sessions {
		start := s.StartTime.Local()
		if start.Month() == then.Month() && start.Year() == then.Year() {
			count[start.Day()-1]++
		}
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		if i < d {
			fmt.Print("   ")
		}
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, then.Local().Day(), 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}

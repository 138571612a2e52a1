package printers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/repo"
	"tableflip.dev/focus/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("session_171dff69  "))
	slots   = [...]string{"", "①", "②", "③"}
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) id(id string) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Print(id)
	_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
}

// Todos prints a flat todo list. Slotted todos carry their position glyph,
// completed todos render faint.
func (pp *PrettyPrint) Todos(todos ...entity.Todo) {
	if len(todos) == 0 {
		pp.none()
		return
	}

	open := color.New()
	done := color.New(color.Faint)

	for _, td := range todos {
		if pp.ShowID {
			pp.id(td.ID)
		}
		bullet, printer := "•", open
		if td.Completed {
			bullet, printer = "✔", done
		}
		slot := " "
		if td.FocusOrder >= 1 && td.FocusOrder <= 3 {
			slot = slots[td.FocusOrder]
		}
		line := td.Text
		if td.ProjectID != "" {
			line = fmt.Sprintf("%s  [%s]", line, td.ProjectID)
		}
		_, _ = printer.Printf("%s %s %s\n", slot, bullet, line)
	}
	_, _ = open.Println("")
}

// Focus prints today's Top-3 list in slot order, leaving gaps for
// unoccupied positions.
func (pp *PrettyPrint) Focus(todos ...entity.Todo) {
	open := color.New()
	done := color.New(color.Faint)
	free := color.New(color.Faint, color.Italic)

	for position := 1; position <= 3; position++ {
		var found *entity.Todo
		for i := range todos {
			if todos[i].FocusOrder == position {
				found = &todos[i]
				break
			}
		}
		if found == nil {
			if pp.ShowID {
				_, _ = free.Print(spacing)
			}
			_, _ = free.Printf("%s open\n", slots[position])
			continue
		}
		if pp.ShowID {
			pp.id(found.ID)
		}
		bullet, printer := "•", open
		if found.Completed {
			bullet, printer = "✔", done
		}
		_, _ = printer.Printf("%s %s %s\n", slots[position], bullet, found.Text)
	}
	_, _ = open.Println("")
}

// Projects prints the project list; archived projects render italic with
// the archive date.
func (pp *PrettyPrint) Projects(projects ...entity.Project) {
	if len(projects) == 0 {
		pp.none()
		return
	}

	p := color.New()
	a := color.New(color.Faint, color.Italic)

	for _, project := range projects {
		if pp.ShowID {
			pp.id(project.ID)
		}
		if project.Archived {
			when := ""
			if project.ArchivedAt != nil {
				when = fmt.Sprintf("  (archived %s)", timeutil.DayOf(project.ArchivedAt.Time))
			}
			_, _ = a.Printf("▸ %s%s\n", project.Name, when)
			continue
		}
		_, _ = p.Printf("▸ %s\n", project.Name)
	}
	_, _ = p.Println("")
}

// Trash prints soft-deleted todos with the days remaining until the sweep
// removes them for good.
func (pp *PrettyPrint) Trash(now time.Time, todos ...entity.Todo) {
	if len(todos) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("ID", "TASK", "DELETED", "EXPIRES IN")
	for _, td := range todos {
		deleted, expires := "?", "?"
		if td.DeletedAt != nil {
			deleted = string(timeutil.DayOf(td.DeletedAt.Time))
			left := td.DeletedAt.Add(repo.RetentionWindow).Sub(now)
			if left < 0 {
				left = 0
			}
			expires = fmt.Sprintf("%dd", int(left.Hours()/24))
		}
		table.AddRow(td.ID, td.Text, deleted, expires)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Sessions prints tracked sessions newest first.
func (pp *PrettyPrint) Sessions(sessions ...entity.Session) {
	if len(sessions) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("ID", "START", "DURATION", "PROJECT", "WHAT")
	for _, s := range sessions {
		table.AddRow(s.ID, s.StartTime.Local().Format("Jan _2 15:04"), timeutil.FormatHours(s.DurationMs), s.Project, s.Description)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Report prints per-project totals for a window, with the total measured
// against the daily goal.
func (pp *PrettyPrint) Report(r app.Report) {
	if r.SessionCount == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("PROJECT", "TIME", "SESSIONS")
	for _, total := range r.Projects {
		name := total.Project
		if name == "" {
			name = "(no project)"
		}
		table.AddRow(name, timeutil.FormatHours(total.DurationMs), fmt.Sprintf("%d", total.Sessions))
	}
	fmt.Println(table)

	goalMs := int64(r.GoalHours * float64(time.Hour/time.Millisecond))
	g := color.New(color.Faint)
	if goalMs > 0 && r.TotalMs >= goalMs {
		g = color.New(color.FgGreen)
	}
	_, _ = g.Printf("\ntotal %s of %.1fh goal\n\n", timeutil.FormatHours(r.TotalMs), r.GoalHours)
}

// History prints retired focus sets, newest first.
func (pp *PrettyPrint) History(entries ...entity.FocusHistoryEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	h := color.New(color.Bold)
	rt := color.New(color.Faint)
	open := color.New()
	done := color.New(color.Faint)

	for _, e := range entries {
		_, _ = h.Printf("%s ", timeutil.DayOf(e.Date.Time))
		_, _ = rt.Printf("(%s)\n", e.ResetType)
		for _, task := range e.FocusTasks {
			bullet, printer := "•", open
			if task.Completed {
				bullet, printer = "✔", done
			}
			slot := " "
			if task.Position >= 1 && task.Position <= 3 {
				slot = slots[task.Position]
			}
			_, _ = printer.Printf("  %s %s %s\n", slot, bullet, task.TodoText)
		}
	}
	_, _ = open.Println("")
}

// Settings prints the focus configuration and the daily goal.
func (pp *PrettyPrint) Settings(s entity.FocusSettings, goalHours float64) {
	k := color.New(color.Faint)
	v := color.New()

	row := func(key, value string) {
		_, _ = k.Printf("%-22s", key)
		_, _ = v.Println(value)
	}
	row("auto reset", fmt.Sprintf("%t", s.AutoResetEnabled))
	row("reset time", s.ResetTime)
	row("preserve incomplete", fmt.Sprintf("%t", s.PreserveIncomplete))
	row("celebration", fmt.Sprintf("%t", s.ShowCompletionCelebration))
	row("daily goal", fmt.Sprintf("%.1fh", goalHours))
	_, _ = v.Println("")
}

// BackupSummary prints what an export file contains.
func (pp *PrettyPrint) BackupSummary(s app.BackupSummary) {
	table := uitable.New()
	table.AddRow("KEY", "RECORDS")
	for _, key := range sortedKeys(s.Counts) {
		table.AddRow(key, fmt.Sprintf("%d", s.Counts[key]))
	}
	fmt.Println(table)

	if !s.Oldest.IsZero() {
		f := color.New(color.Faint)
		_, _ = f.Printf("\ndata spans %s to %s\n", timeutil.DayOf(s.Oldest), timeutil.DayOf(s.Newest))
	}
	fmt.Println("")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

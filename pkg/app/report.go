package app

import (
	"sort"
	"time"
)

// ProjectTotal aggregates tracked time for one project within a report
// window. An empty Project means sessions without a project.
type ProjectTotal struct {
	Project    string
	DurationMs int64
	Sessions   int
}

// Report summarizes tracked work against the daily goal for a time window.
type Report struct {
	Since        time.Time
	Until        time.Time
	TotalMs      int64
	SessionCount int
	GoalHours    float64
	Projects     []ProjectTotal
}

// Report aggregates sessions whose start time falls between the bounds,
// grouped by project and ordered by tracked time, longest first.
func (s *Service) Report(since, until time.Time) Report {
	if since.After(until) {
		since, until = until, since
	}
	result := Report{
		Since:     since,
		Until:     until,
		GoalHours: s.Focus.DailyGoalHours(),
	}

	byProject := make(map[string]*ProjectTotal)
	for _, session := range s.Sessions.InWindow(since, until) {
		result.TotalMs += session.DurationMs
		result.SessionCount++
		total, ok := byProject[session.Project]
		if !ok {
			total = &ProjectTotal{Project: session.Project}
			byProject[session.Project] = total
		}
		total.DurationMs += session.DurationMs
		total.Sessions++
	}

	result.Projects = make([]ProjectTotal, 0, len(byProject))
	for _, total := range byProject {
		result.Projects = append(result.Projects, *total)
	}
	sort.Slice(result.Projects, func(i, j int) bool {
		if result.Projects[i].DurationMs != result.Projects[j].DurationMs {
			return result.Projects[i].DurationMs > result.Projects[j].DurationMs
		}
		return result.Projects[i].Project < result.Projects[j].Project
	})
	return result
}

package entity

// ResetType classifies how a day's focus set was retired to history.
type ResetType string

const (
	ResetManual             ResetType = "manual"
	ResetAuto               ResetType = "auto"
	ResetContinued          ResetType = "continued"
	ResetClear              ResetType = "clear"
	ResetPreserveIncomplete ResetType = "preserve-incomplete"
)

// Valid reports whether r is one of the known reset types.
func (r ResetType) Valid() bool {
	switch r {
	case ResetManual, ResetAuto, ResetContinued, ResetClear, ResetPreserveIncomplete:
		return true
	}
	return false
}

// Session is a single tracked work session.
type Session struct {
	ID          string    `json:"id"`
	StartTime   Timestamp `json:"startTime"`
	DurationMs  int64     `json:"durationMs"`
	Description string    `json:"description"`
	Project     string    `json:"project"`
	TodoID      string    `json:"todoId,omitempty"`
}

// Project groups todos and sessions. Name is unique across projects.
type Project struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Notes      string     `json:"notes"`
	Archived   bool       `json:"archived"`
	ArchivedAt *Timestamp `json:"archivedAt,omitempty"`
	CreatedAt  Timestamp  `json:"createdAt"`
}

// Todo is a to-do item. ProjectID holds the project name, with the empty
// string meaning "no project". FocusOrder 0 means the todo holds no daily
// focus slot; 1..3 are the Top-3 positions.
type Todo struct {
	ID                 string     `json:"id"`
	Text               string     `json:"text"`
	Completed          bool       `json:"completed"`
	ProjectID          string     `json:"projectId"`
	Notes              string     `json:"notes"`
	CompletedAt        *Timestamp `json:"completedAt,omitempty"`
	Deleted            bool       `json:"deleted"`
	DeletedAt          *Timestamp `json:"deletedAt,omitempty"`
	FocusOrder         int        `json:"focusOrder,omitempty"`
	FocusSetDate       *Timestamp `json:"focusSetDate,omitempty"`
	FocusCompletedDate *Timestamp `json:"focusCompletedDate,omitempty"`
}

// InFocus reports whether the todo currently occupies a daily focus slot.
// Soft-deleted todos never count, regardless of any leftover slot value.
func (t *Todo) InFocus() bool {
	return t.FocusOrder != 0 && !t.Deleted
}

// FocusTask is a frozen copy of a slotted todo at reset time. It shares no
// storage with the live Todo, so later edits cannot rewrite history.
type FocusTask struct {
	Position    int        `json:"position"`
	TodoID      string     `json:"todoId"`
	TodoText    string     `json:"todoText"`
	ProjectID   string     `json:"projectId"`
	Completed   bool       `json:"completed"`
	CompletedAt *Timestamp `json:"completedAt,omitempty"`
}

// FocusHistoryEntry records one retired focus set. Entries are append-only.
type FocusHistoryEntry struct {
	ID         string      `json:"id"`
	Date       Timestamp   `json:"date"`
	ResetType  ResetType   `json:"resetType"`
	FocusTasks []FocusTask `json:"focusTasks"`
}

// FocusSettings is the singleton focus configuration. ResetTime is the
// nominal "HH:MM" day boundary; it is informational only and does not gate
// the reset decision.
type FocusSettings struct {
	AutoResetEnabled          bool   `json:"autoResetEnabled"`
	ResetTime                 string `json:"resetTime"`
	PreserveIncomplete        bool   `json:"preserveIncomplete"`
	ShowCompletionCelebration bool   `json:"showCompletionCelebration"`
}

// DefaultFocusSettings returns the settings used before the user changes
// anything.
func DefaultFocusSettings() FocusSettings {
	return FocusSettings{
		AutoResetEnabled:          true,
		ResetTime:                 "06:00",
		PreserveIncomplete:        true,
		ShowCompletionCelebration: true,
	}
}

// DefaultDailyGoalHours is the work-goal target used until configured.
const DefaultDailyGoalHours = 8.0

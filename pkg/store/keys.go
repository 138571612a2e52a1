package store

// Persisted value keys. Each key holds one JSON document: a collection array
// for the entity keys, a single object or scalar for the rest.
const (
	KeySessions      = "sessions"
	KeyTodos         = "todos"
	KeyProjects      = "projects"
	KeyFocusHistory  = "focus-history"
	KeyFocusSettings = "focus-settings"
	KeyLastLaunch    = "last-launch"
	KeyDailyGoal     = "daily-goal"
)

// Keys lists every key the application owns, in backup order.
func Keys() []string {
	return []string{
		KeySessions,
		KeyTodos,
		KeyProjects,
		KeyFocusHistory,
		KeyFocusSettings,
		KeyLastLaunch,
		KeyDailyGoal,
	}
}

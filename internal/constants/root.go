package constants

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current view of the TUI application
type SessionState int

// StorageDriver names a kv backend implementation
type StorageDriver string

// ToggleHabitMsg asks the TUI to flip a habit's completion flag
type ToggleHabitMsg struct {
	ID string
}

// RefreshMsg asks the TUI to re-derive today's state
type RefreshMsg struct{}

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName            = "ecogamer"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/ecogamer/config.yaml"
	DefaultDataDir     = "~/.config/ecogamer"
	Version            = "v0.3.0"

	// DayIdentityFormat renders a calendar day the way the web client's
	// Date.prototype.toDateString does ("Mon Jan 01 2024").
	DayIdentityFormat = "Mon Jan 02 2006"

	// DateFormat is the ISO date accepted by "doctor --date"
	DateFormat = "2006-01-02"

	// Snapshot keys. One key, one owning feature.
	KeyHabits           = "habits"
	KeyDailyHabits      = "dailyHabits"
	KeyDashboardMetrics = "dashboardMetrics"
	KeyWordOfTheDay     = "wordOfTheDay"
	KeyVerseOfTheDay    = "verseOfTheDay"

	// Flag keys (plain "true" values, no day identity)
	KeyOnboarded         = "onboarded"
	KeyTutorialCompleted = "tutorialCompleted"
	KeyReminderShown     = "hasShownReminder"

	// Snapshot field carrying the day identity
	SnapshotDateField = "date"

	// Storage drivers
	DriverSQLite   StorageDriver = "sqlite"
	DriverPostgres StorageDriver = "postgres"
	DriverFile     StorageDriver = "file"
	DriverMemory   StorageDriver = "memory"

	// Feature defaults
	DefaultDailyHabitCount  = 5
	DefaultMetricVariation  = 7
	DefaultListenAddr       = "127.0.0.1:8787"
	DefaultDatabaseFileName = "ecogamer.db"
	DefaultFileStoreName    = "ecogamer.json"
)

// Session States
const (
	StateHabits SessionState = iota
	StateToday
	StateConfirmReset
)

package models

// HabitDefinition is one entry of the static habit catalog.
// JSON names follow the web client's camelCase since these structs are
// stored inside snapshots it also reads.
type HabitDefinition struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Impact             string `json:"impact"`
	Points             int    `json:"points,omitempty"`
	VerificationPrompt string `json:"verificationPrompt,omitempty"`
}

// HabitCompletion maps habit IDs to completion. A missing ID means false.
type HabitCompletion struct {
	Completed map[string]bool `json:"completed"`
}

// DailyHabits is the day's sampled subset of the catalog.
type DailyHabits struct {
	Habits []HabitDefinition `json:"habits"`
}

// Progress summarizes a day's completion.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
	Points    int `json:"points"`
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/features"
	"github.com/chronox22/eco-gamer-collective/internal/tui/components/habits"
	"github.com/chronox22/eco-gamer-collective/internal/tui/components/today"
)

var tabTitles = []string{"Habits", "Today"}

type Model struct {
	suite *features.Suite
	store *daily.Store
	now   func() time.Time

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	habitsModel   habits.Model
	todayModel    today.Model

	reminder      string
	statusMessage string
	confirm       *constants.ConfirmationMsg

	quitting bool
	width    int
	height   int
}

// NewModel builds the TUI over suite. now supplies the current time in the
// configured timezone.
func NewModel(suite *features.Suite, store *daily.Store, now func() time.Time) Model {
	summary := suite.Today(now())

	m := Model{
		suite:       suite,
		store:       store,
		now:         now,
		state:       constants.StateHabits,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitsModel: habits.New(summary.Habits, 0, 0),
		todayModel:  today.New(summary, 0),
	}
	if text, ok := suite.Reminder.Next(); ok {
		m.reminder = text
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Refresh, m.keys.Dismiss, m.keys.ResetTutorial},
		{habits.DefaultKeyMap().Toggle},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-derives today's state. Crossing midnight while the TUI is open
// picks up the new day here.
func (m *Model) refresh() {
	summary := m.suite.Today(m.now())
	m.habitsModel.SetView(summary.Habits)
	m.todayModel.SetSummary(summary)
}

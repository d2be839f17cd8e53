package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/features"
	"github.com/chronox22/eco-gamer-collective/internal/onboarding"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitsModel.SetSize(msg.Width-4, msg.Height-8)
		m.todayModel.SetWidth(msg.Width - 4)
		return m, nil

	case constants.ToggleHabitMsg:
		view, err := m.suite.Habits.Toggle(m.now(), msg.ID)
		switch {
		case errors.Is(err, features.ErrUnknownHabit):
			// The day rolled over under us.
			m.refresh()
			m.statusMessage = "A new day started, habits were refreshed"
		case err != nil:
			m.statusMessage = "Could not save: " + err.Error()
		default:
			m.habitsModel.SetView(view)
			m.statusMessage = ""
		}
		return m, nil

	case constants.RefreshMsg:
		m.refresh()
		return m, nil

	case constants.ConfirmationMsg:
		m.confirm = &msg
		m.previousState = m.state
		m.state = constants.StateConfirmReset
		return m, nil
	}

	if m.state == constants.StateConfirmReset {
		return m.updateConfirm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % constants.SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + constants.SessionState(len(tabTitles))) % constants.SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return constants.RefreshMsg{} }
		case key.Matches(msg, m.keys.Dismiss):
			m.reminder = ""
			return m, nil
		case key.Matches(msg, m.keys.ResetTutorial):
			store := m.store
			return m, func() tea.Msg {
				return constants.ConfirmationMsg{
					Message: "Reset the tutorial so it runs again?",
					Action: func() tea.Cmd {
						onboarding.Reset(store, constants.KeyTutorialCompleted)
						return nil
					},
				}
			}
		}
	}

	var cmd tea.Cmd
	if m.state == constants.StateHabits {
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	switch keyMsg.String() {
	case "y", "Y":
		if m.confirm != nil && m.confirm.Action != nil {
			cmd = m.confirm.Action()
		}
		m.statusMessage = "Tutorial reset"
	case "n", "N", "esc":
	default:
		return m, nil
	}
	m.confirm = nil
	m.state = m.previousState
	return m, cmd
}

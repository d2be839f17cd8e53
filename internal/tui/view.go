package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/chronox22/eco-gamer-collective/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case constants.StateToday:
		content = docStyle.Render(m.todayModel.View())
	case constants.StateConfirmReset:
		content = m.viewConfirm()
	}

	parts := []string{m.viewTabs()}
	if m.reminder != "" {
		parts = append(parts, reminderStyle.Render("Eco Reminder: "+m.reminder))
	}
	parts = append(parts, content)
	if m.statusMessage != "" {
		parts = append(parts, warningStyle.Render(m.statusMessage))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == constants.StateConfirmReset {
		active = m.previousState
	}
	var tabs []string
	for i, title := range tabTitles {
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirm() string {
	msg := ""
	if m.confirm != nil {
		msg = m.confirm.Message
	}
	return lipgloss.Place(m.width, max(m.height-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(msg),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

package habits

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/features"
)

type Item struct {
	Habit features.HabitView
}

func (i Item) Title() string {
	if i.Habit.Completed {
		return "✓ " + i.Habit.Name
	}
	return "○ " + i.Habit.Name
}

func (i Item) Description() string {
	desc := i.Habit.Impact
	if i.Habit.Points > 0 {
		desc = fmt.Sprintf("%s · %d pts", desc, i.Habit.Points)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter", "m"),
			key.WithHelp("space", "toggle done"),
		),
	}
}

var summaryStyle = lipgloss.NewStyle().Padding(0, 2)

type Model struct {
	list     list.Model
	bar      progress.Model
	keys     KeyMap
	progress features.TrackerView
}

func New(view features.TrackerView, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}

	m := Model{
		list: l,
		bar:  progress.New(progress.WithDefaultGradient()),
		keys: keys,
	}
	m.SetView(view)
	m.SetSize(width, height)
	return m
}

// SetView replaces the checklist, keeping the cursor where it was.
func (m *Model) SetView(view features.TrackerView) {
	m.progress = view
	items := make([]list.Item, len(view.Habits))
	for i, h := range view.Habits {
		items[i] = Item{Habit: h}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if key.Matches(msg, m.keys.Toggle) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				id := i.Habit.ID
				return m, func() tea.Msg { return constants.ToggleHabitMsg{ID: id} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No habits for today."
	}
	p := m.progress.Progress
	summary := summaryStyle.Render(fmt.Sprintf("Today's Progress  %d/%d completed · %d pts\n%s",
		p.Completed, p.Total, p.Points, m.bar.ViewAs(float64(p.Percent)/100)))
	return lipgloss.JoinVertical(lipgloss.Left, summary, "", m.list.View())
}

func (m *Model) SetSize(width, height int) {
	m.bar.Width = max(width-4, 10)
	m.list.SetSize(width, max(height-3, 0))
}

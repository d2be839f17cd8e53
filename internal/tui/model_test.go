package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chronox22/eco-gamer-collective/internal/config"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/features"
	"github.com/chronox22/eco-gamer-collective/internal/kv/memory"
	"github.com/chronox22/eco-gamer-collective/internal/onboarding"
	"github.com/chronox22/eco-gamer-collective/internal/session"
)

func newTestModel(t *testing.T) (Model, *daily.Store) {
	t.Helper()
	store := daily.NewStore(memory.New())
	flags := session.Start()
	t.Cleanup(flags.Close)

	cfg := config.NewDefaultConfig().Features
	cfg.RotateHabits = false
	suite := features.NewSuite(daily.NewDeriver(store), flags, cfg)

	now := func() time.Time { return time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC) }
	m := NewModel(suite, store, now)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model), store
}

func TestNewModelShowsReminderOnce(t *testing.T) {
	m, _ := newTestModel(t)
	if m.reminder == "" {
		t.Fatal("first model in a session should carry a reminder")
	}
	if !strings.Contains(m.View(), "Eco Reminder") {
		t.Error("reminder not rendered")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if updated.(Model).reminder != "" {
		t.Error("esc should dismiss the reminder")
	}
}

func TestToggleHabitMsg(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(constants.ToggleHabitMsg{ID: "biking"})
	m = updated.(Model)
	if m.statusMessage != "" {
		t.Fatalf("unexpected status: %q", m.statusMessage)
	}
	if !strings.Contains(m.View(), "1/5 completed") {
		t.Errorf("progress not updated in view:\n%s", m.View())
	}
}

func TestSpaceEmitsToggle(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Fatal("space on a habit should emit a command")
	}
	msg, ok := cmd().(constants.ToggleHabitMsg)
	if !ok || msg.ID != "biking" {
		t.Errorf("cmd() = %#v, want ToggleHabitMsg{biking}", msg)
	}
}

func TestTabSwitchesViews(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.state != constants.StateToday {
		t.Fatalf("state = %v, want StateToday", m.state)
	}
	if !strings.Contains(m.View(), "Word of the Day") {
		t.Error("today view missing word of the day")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if updated.(Model).state != constants.StateHabits {
		t.Error("tab should wrap back to habits")
	}
}

func TestResetTutorialConfirmation(t *testing.T) {
	m, store := newTestModel(t)
	onboarding.NewTutorial(store).Complete()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'T'}})
	if cmd == nil {
		t.Fatal("T should ask for confirmation")
	}
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	if m.state != constants.StateConfirmReset {
		t.Fatalf("state = %v, want StateConfirmReset", m.state)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = updated.(Model)
	if m.state != constants.StateHabits {
		t.Errorf("state after confirm = %v, want StateHabits", m.state)
	}
	if onboarding.Done(store, constants.KeyTutorialCompleted) {
		t.Error("tutorial flag should be cleared")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || updated.(Model).View() != "" {
		t.Error("q should quit and clear the view")
	}
}

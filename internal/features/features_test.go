package features

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/chronox22/eco-gamer-collective/internal/catalog"
	"github.com/chronox22/eco-gamer-collective/internal/config"
	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/kv/memory"
	"github.com/chronox22/eco-gamer-collective/internal/models"
	"github.com/chronox22/eco-gamer-collective/internal/session"
)

var (
	jan1 = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	jan2 = time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)
)

// sequence returns an IntN yielding 0, 1, 2, ... modulo n.
func sequence() IntN {
	i := 0
	return func(n int) int {
		v := i % n
		i++
		return v
	}
}

func newDeriver() (*daily.Deriver, *memory.Store) {
	b := memory.New()
	return daily.NewDeriver(daily.NewStore(b)), b
}

func TestHabitTrackerScenario(t *testing.T) {
	d, b := newDeriver()
	tracker := NewHabitTracker(d, StaticHabits(catalog.CoreHabits()))

	view := tracker.View(jan1)
	if view.Date != "Mon Jan 01 2024" {
		t.Fatalf("Date = %q, want Mon Jan 01 2024", view.Date)
	}
	for _, h := range view.Habits {
		if h.Completed {
			t.Errorf("habit %s should start incomplete", h.ID)
		}
	}

	raw, ok, _ := b.Get("habits")
	if !ok {
		t.Fatal("habits snapshot not persisted")
	}
	want := `{"date":"Mon Jan 01 2024","completed":{"biking":false,"energy":false,"recycle":false,"reusable":false,"water":false}}`
	if raw != want {
		t.Errorf("stored snapshot = %s, want %s", raw, want)
	}

	view, err := tracker.Toggle(jan1, "biking")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	got := map[string]bool{}
	for _, h := range view.Habits {
		got[h.ID] = h.Completed
	}
	wantState := map[string]bool{"biking": true, "reusable": false, "water": false, "recycle": false, "energy": false}
	if diff := cmp.Diff(wantState, got); diff != "" {
		t.Errorf("completion mismatch (-want +got):\n%s", diff)
	}

	wantProgress := models.Progress{Completed: 1, Total: 5, Percent: 20, Points: 15}
	if diff := cmp.Diff(wantProgress, view.Progress); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}
}

func TestHabitToggleRoundTrip(t *testing.T) {
	d, _ := newDeriver()
	tracker := NewHabitTracker(d, StaticHabits(catalog.CoreHabits()))

	before := tracker.View(jan1)
	if _, err := tracker.Toggle(jan1, "water"); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	after, err := tracker.Toggle(jan1, "water")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("round trip changed state (-before +after):\n%s", diff)
	}
}

func TestHabitTrackerResetsOnNewDay(t *testing.T) {
	d, _ := newDeriver()
	tracker := NewHabitTracker(d, StaticHabits(catalog.CoreHabits()))

	if _, err := tracker.Set(jan1, "recycle", true); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	view := tracker.View(jan2)
	if view.Progress.Completed != 0 {
		t.Errorf("yesterday's completion carried over: %+v", view.Progress)
	}
	if view.Date != "Tue Jan 02 2024" {
		t.Errorf("Date = %q", view.Date)
	}
}

func TestHabitTrackerUnknownHabit(t *testing.T) {
	d, _ := newDeriver()
	tracker := NewHabitTracker(d, StaticHabits(catalog.CoreHabits()))

	_, err := tracker.Toggle(jan1, "meatless")
	if !errors.Is(err, ErrUnknownHabit) {
		t.Errorf("Toggle() error = %v, want ErrUnknownHabit", err)
	}
}

func TestHabitTrackerRekeysToActiveSet(t *testing.T) {
	b := memory.New()
	// Stored by an older catalog: one habit that no longer exists.
	_ = b.Set("habits", `{"date":"Mon Jan 01 2024","completed":{"biking":true,"plastic":true}}`)
	d := daily.NewDeriver(daily.NewStore(b))
	tracker := NewHabitTracker(d, StaticHabits(catalog.CoreHabits()))

	view := tracker.View(jan1)
	if view.Progress.Total != 5 || view.Progress.Completed != 1 {
		t.Errorf("progress = %+v, want 1/5", view.Progress)
	}

	raw, _, _ := b.Get("habits")
	if strings.Contains(raw, "plastic") {
		t.Errorf("stale habit kept in snapshot: %s", raw)
	}
	if !strings.Contains(raw, `"biking":true`) {
		t.Errorf("existing completion lost: %s", raw)
	}
}

func TestHabitTrackerCorruptSnapshot(t *testing.T) {
	b := memory.New()
	_ = b.Set("habits", "{{{")
	d := daily.NewDeriver(daily.NewStore(b))
	tracker := NewHabitTracker(d, StaticHabits(catalog.CoreHabits()))

	view := tracker.View(jan1)
	if view.Progress.Total != 5 || view.Progress.Completed != 0 {
		t.Errorf("progress = %+v, want 0/5", view.Progress)
	}
}

func TestDailyHabits(t *testing.T) {
	d, _ := newDeriver()
	calls := 0
	intn := func(n int) int { calls++; return 0 }
	dh := NewDailyHabits(d, catalog.AllHabits(), 5, intn)

	first := dh.Active(jan1)
	if len(first) != 5 {
		t.Fatalf("Active() returned %d habits, want 5", len(first))
	}
	n := calls
	second := dh.Active(jan1)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("sample changed within a day (-first +second):\n%s", diff)
	}
	if calls != n {
		t.Error("sample regenerated within a day")
	}

	seen := map[string]bool{}
	for _, h := range first {
		if seen[h.ID] {
			t.Errorf("habit %s sampled twice", h.ID)
		}
		seen[h.ID] = true
	}
}

func TestDailyHabitsCountClamped(t *testing.T) {
	d, _ := newDeriver()
	dh := NewDailyHabits(d, catalog.CoreHabits(), 50, sequence())
	if got := len(dh.Active(jan1)); got != 5 {
		t.Errorf("Active() returned %d habits, want 5", got)
	}
}

func TestTrackerFollowsDailyHabits(t *testing.T) {
	d, _ := newDeriver()
	dh := NewDailyHabits(d, catalog.AllHabits(), 3, sequence())
	tracker := NewHabitTracker(d, dh)

	view := tracker.View(jan1)
	if view.Progress.Total != 3 {
		t.Fatalf("Total = %d, want 3", view.Progress.Total)
	}
	id := view.Habits[0].ID
	view, err := tracker.Toggle(jan1, id)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if view.Progress.Percent != 33 {
		t.Errorf("Percent = %d, want 33", view.Progress.Percent)
	}
}

func TestMetricsDateSeeded(t *testing.T) {
	d1, _ := newDeriver()
	d2, _ := newDeriver()

	a := NewMetrics(d1, 7).Today(jan1)
	b := NewMetrics(d2, 7).Today(jan1)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same day differs across devices (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(DashboardFor(1), a); diff != "" {
		t.Errorf("Jan 1 should use offset 1 (-want +got):\n%s", diff)
	}

	jan8 := time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC)
	if diff := cmp.Diff(a, NewMetrics(d1, 7).Today(jan8)); diff != "" {
		t.Errorf("days 1 and 8 share offset 1 mod 7 (-jan1 +jan8):\n%s", diff)
	}
}

func TestDashboardFor(t *testing.T) {
	m := DashboardFor(2)
	if m.EcoScore != 72 {
		t.Errorf("EcoScore = %d, want 72", m.EcoScore)
	}
	if m.Metrics[0].Value != 2.4 {
		t.Errorf("carbon = %v, want 2.4", m.Metrics[0].Value)
	}
	if got := DashboardFor(100).EcoScore; got != 100 {
		t.Errorf("EcoScore not capped: %d", got)
	}
}

func TestWordAndVerseFrozenForDay(t *testing.T) {
	d, b := newDeriver()
	word := NewWordOfTheDay(d, catalog.Words(), sequence())
	verse := NewVerseOfTheDay(d, catalog.Verses(), sequence())

	w1 := word.Today(jan1)
	if w2 := word.Today(jan1); w1 != w2 {
		t.Errorf("word changed within a day: %v then %v", w1, w2)
	}
	if w3 := word.Today(jan2); w3 == w1 {
		t.Errorf("word not regenerated on a new day: %v", w3)
	}

	v1 := verse.Today(jan1)
	if v2 := verse.Today(jan1); v1 != v2 {
		t.Errorf("verse changed within a day: %v then %v", v1, v2)
	}

	raw, _, _ := b.Get("verseOfTheDay")
	want := `{"date":"Mon Jan 01 2024","verse":"` + v1.Verse + `","text":"` + v1.Text + `"}`
	if raw != want {
		t.Errorf("stored verse = %s, want %s", raw, want)
	}
}

func TestWordReadsWebClientSnapshot(t *testing.T) {
	b := memory.New()
	_ = b.Set("wordOfTheDay", `{"date":"Mon Jan 01 2024","word":"Compost","definition":"Decayed organic material used as a fertilizer for growing plants."}`)
	d := daily.NewDeriver(daily.NewStore(b))

	got := NewWordOfTheDay(d, catalog.Words(), sequence()).Today(jan1)
	if got.Word != "Compost" {
		t.Errorf("Word = %q, want Compost", got.Word)
	}
}

func TestGuardRecoversFromPanickingGenerator(t *testing.T) {
	d, _ := newDeriver()
	words := []models.Word{{Word: "Fallback"}}
	boom := func(int) int { panic("broken generator") }

	got := NewWordOfTheDay(d, words, boom).Today(jan1)
	if got.Word != "Fallback" {
		t.Errorf("Today() = %v, want fallback word", got)
	}
}

func TestReminderOncePerSession(t *testing.T) {
	flags := session.Start()
	defer flags.Close()
	r := NewReminder(flags, catalog.Reminders(), sequence())

	text, ok := r.Next()
	if !ok || text == "" {
		t.Fatalf("first Next() = (%q, %v), want a reminder", text, ok)
	}
	if _, ok := r.Next(); ok {
		t.Error("second Next() in the same session returned a reminder")
	}

	other := session.Start()
	defer other.Close()
	if _, ok := NewReminder(other, catalog.Reminders(), sequence()).Next(); !ok {
		t.Error("a new session should show a reminder again")
	}
}

func TestSuiteToday(t *testing.T) {
	d, b := newDeriver()
	flags := session.Start()
	defer flags.Close()

	cfg := config.NewDefaultConfig().Features
	suite := NewSuite(d, flags, cfg, WithIntN(sequence()))

	sum := suite.Today(jan1)
	if sum.Date != "Mon Jan 01 2024" {
		t.Errorf("Date = %q", sum.Date)
	}
	if sum.Habits.Progress.Total != cfg.DailyHabitCount {
		t.Errorf("Total = %d, want %d", sum.Habits.Progress.Total, cfg.DailyHabitCount)
	}

	keys, _ := b.Keys()
	want := []string{"dailyHabits", "dashboardMetrics", "habits", "verseOfTheDay", "wordOfTheDay"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("persisted keys mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(sum, suite.Today(jan1)); diff != "" {
		t.Errorf("summary not stable within a day (-first +second):\n%s", diff)
	}
}

func TestSuiteCoreHabits(t *testing.T) {
	d, _ := newDeriver()
	cfg := config.NewDefaultConfig().Features
	cfg.RotateHabits = false

	suite := NewSuite(d, nil, cfg)
	view := suite.Habits.View(jan1)

	var ids []string
	for _, h := range view.Habits {
		ids = append(ids, h.ID)
	}
	if diff := cmp.Diff([]string{"biking", "reusable", "water", "recycle", "energy"}, ids); diff != "" {
		t.Errorf("core habits mismatch (-want +got):\n%s", diff)
	}
	if _, ok := suite.Reminder.Next(); ok {
		t.Error("reminder without a session should be suppressed")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		done, total, want int
	}{
		{0, 0, 0},
		{1, 5, 20},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := Percent(tt.done, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.done, tt.total, got, tt.want)
		}
	}
}

package features

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/chronox22/eco-gamer-collective/internal/clock"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/models"
)

// ErrUnknownHabit is returned when toggling a habit that is not active today.
var ErrUnknownHabit = errors.New("habit is not active today")

// HabitSource yields the habits that are active on the day of now.
type HabitSource interface {
	Active(now time.Time) []models.HabitDefinition
}

// StaticHabits is a fixed habit list, the same every day.
type StaticHabits []models.HabitDefinition

func (s StaticHabits) Active(time.Time) []models.HabitDefinition {
	return slices.Clone(s)
}

// DailyHabits samples the day's habits from a catalog.
// Generator: locally random, frozen for the day.
type DailyHabits struct {
	cell     *daily.Cell[models.DailyHabits]
	fallback []models.HabitDefinition
}

// NewDailyHabits samples count habits from catalog once per day.
func NewDailyHabits(d *daily.Deriver, catalog []models.HabitDefinition, count int, intn IntN) *DailyHabits {
	if count > len(catalog) {
		count = len(catalog)
	}
	if count < 0 {
		count = 0
	}
	catalog = slices.Clone(catalog)

	gen := func() models.DailyHabits {
		idx := make([]int, len(catalog))
		for i := range idx {
			idx[i] = i
		}
		for i := len(idx) - 1; i > 0; i-- {
			j := intn(i + 1)
			idx[i], idx[j] = idx[j], idx[i]
		}
		chosen := idx[:count]
		sort.Ints(chosen)

		out := models.DailyHabits{Habits: make([]models.HabitDefinition, 0, count)}
		for _, i := range chosen {
			out.Habits = append(out.Habits, catalog[i])
		}
		return out
	}

	return &DailyHabits{
		cell:     daily.NewCell(d, constants.KeyDailyHabits, gen),
		fallback: slices.Clone(catalog[:count]),
	}
}

// Active returns the day's sample in catalog order.
func (h *DailyHabits) Active(now time.Time) []models.HabitDefinition {
	today := clock.DayIdentity(now)
	return guard(constants.KeyDailyHabits, slices.Clone(h.fallback), func() []models.HabitDefinition {
		return h.cell.Get(today).Habits
	})
}

// HabitView is a habit with today's completion.
type HabitView struct {
	models.HabitDefinition
	Completed bool `json:"completed"`
}

// TrackerView is the habit checklist for one day.
type TrackerView struct {
	Date     string          `json:"date"`
	Habits   []HabitView     `json:"habits"`
	Progress models.Progress `json:"progress"`
}

// HabitTracker keeps the day's completion flags under the "habits" key.
// Generator: deterministic, every active habit false.
type HabitTracker struct {
	d      *daily.Deriver
	source HabitSource
}

func NewHabitTracker(d *daily.Deriver, source HabitSource) *HabitTracker {
	return &HabitTracker{d: d, source: source}
}

// View returns today's checklist.
func (t *HabitTracker) View(now time.Time) TrackerView {
	today := clock.DayIdentity(now)
	active := t.source.Active(now)

	state := guard(constants.KeyHabits, emptyCompletion(active), func() models.HabitCompletion {
		return t.completion(today, active)
	})
	return buildView(today, active, state)
}

// Toggle flips one habit and returns the updated checklist.
func (t *HabitTracker) Toggle(now time.Time, id string) (TrackerView, error) {
	return t.update(now, id, func(done bool) bool { return !done })
}

// Set marks one habit as done or not done.
func (t *HabitTracker) Set(now time.Time, id string, done bool) (TrackerView, error) {
	return t.update(now, id, func(bool) bool { return done })
}

func (t *HabitTracker) update(now time.Time, id string, next func(bool) bool) (TrackerView, error) {
	today := clock.DayIdentity(now)
	active := t.source.Active(now)
	if !containsHabit(active, id) {
		return TrackerView{}, fmt.Errorf("%w: %q", ErrUnknownHabit, id)
	}

	// Ensure today's snapshot exists and is keyed to the active set.
	t.completion(today, active)

	state, err := daily.Mutate(t.d, constants.KeyHabits, today, func(c models.HabitCompletion) models.HabitCompletion {
		out := rekey(c, active)
		out.Completed[id] = next(out.Completed[id])
		return out
	})
	if err != nil {
		return TrackerView{}, err
	}
	return buildView(today, active, state), nil
}

// completion derives today's state and re-keys it when the stored keys
// differ from the active habits.
func (t *HabitTracker) completion(today string, active []models.HabitDefinition) models.HabitCompletion {
	state := daily.GetOrCreate(t.d, constants.KeyHabits, today, func() models.HabitCompletion {
		return emptyCompletion(active)
	})
	if keyedTo(state, active) {
		return state
	}
	rekeyed, err := daily.Mutate(t.d, constants.KeyHabits, today, func(c models.HabitCompletion) models.HabitCompletion {
		return rekey(c, active)
	})
	if err != nil {
		return rekey(state, active)
	}
	return rekeyed
}

func emptyCompletion(active []models.HabitDefinition) models.HabitCompletion {
	c := models.HabitCompletion{Completed: make(map[string]bool, len(active))}
	for _, h := range active {
		c.Completed[h.ID] = false
	}
	return c
}

// rekey keeps the flags of active habits and drops everything else.
func rekey(c models.HabitCompletion, active []models.HabitDefinition) models.HabitCompletion {
	out := emptyCompletion(active)
	for _, h := range active {
		out.Completed[h.ID] = c.Completed[h.ID]
	}
	return out
}

func keyedTo(c models.HabitCompletion, active []models.HabitDefinition) bool {
	if len(c.Completed) != len(active) {
		return false
	}
	for _, h := range active {
		if _, ok := c.Completed[h.ID]; !ok {
			return false
		}
	}
	return true
}

func containsHabit(active []models.HabitDefinition, id string) bool {
	for _, h := range active {
		if h.ID == id {
			return true
		}
	}
	return false
}

func buildView(today string, active []models.HabitDefinition, c models.HabitCompletion) TrackerView {
	v := TrackerView{Date: today, Habits: make([]HabitView, 0, len(active))}
	for _, h := range active {
		done := c.Completed[h.ID]
		v.Habits = append(v.Habits, HabitView{HabitDefinition: h, Completed: done})
		if done {
			v.Progress.Completed++
			v.Progress.Points += h.Points
		}
	}
	v.Progress.Total = len(active)
	v.Progress.Percent = Percent(v.Progress.Completed, v.Progress.Total)
	return v
}

// Percent returns done/total as a whole percentage, 0 when total is 0.
func Percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}

// Package features binds each daily feature to its snapshot key, its
// generator and a render-ready view. Generators are either date-seeded
// (metrics) or locally random and then frozen for the day by the reuse path
// (habit sample, word, verse).
package features

import (
	"math/rand/v2"
	"time"

	"github.com/chronox22/eco-gamer-collective/internal/catalog"
	"github.com/chronox22/eco-gamer-collective/internal/clock"
	"github.com/chronox22/eco-gamer-collective/internal/config"
	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/logger"
	"github.com/chronox22/eco-gamer-collective/internal/models"
	"github.com/chronox22/eco-gamer-collective/internal/session"
)

// IntN returns a value in [0, n). rand.IntN is the default.
type IntN func(n int) int

// Option customizes a Suite.
type Option func(*options)

type options struct {
	intn IntN
}

// WithIntN replaces the random source used by the random generators.
func WithIntN(f IntN) Option {
	return func(o *options) { o.intn = f }
}

// Suite wires every feature to one Deriver.
type Suite struct {
	Habits      *HabitTracker
	DailyHabits *DailyHabits
	Metrics     *Metrics
	Word        *WordOfTheDay
	Verse       *VerseOfTheDay
	Reminder    *Reminder
}

// NewSuite builds the features described by cfg.
func NewSuite(d *daily.Deriver, flags *session.Flags, cfg config.FeaturesConfig, opts ...Option) *Suite {
	o := options{intn: rand.IntN}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Suite{
		DailyHabits: NewDailyHabits(d, catalog.AllHabits(), cfg.DailyHabitCount, o.intn),
		Metrics:     NewMetrics(d, cfg.MetricVariation),
		Word:        NewWordOfTheDay(d, catalog.Words(), o.intn),
		Verse:       NewVerseOfTheDay(d, catalog.Verses(), o.intn),
		Reminder:    NewReminder(flags, catalog.Reminders(), o.intn),
	}

	var source HabitSource = StaticHabits(catalog.CoreHabits())
	if cfg.RotateHabits {
		source = s.DailyHabits
	}
	s.Habits = NewHabitTracker(d, source)
	return s
}

// Summary is everything shown for one day.
type Summary struct {
	Date    string                  `json:"date"`
	Habits  TrackerView             `json:"habits"`
	Metrics models.DashboardMetrics `json:"metrics"`
	Word    models.Word             `json:"word"`
	Verse   models.Verse            `json:"verse"`
}

// Today derives every feature for the calendar day of now.
func (s *Suite) Today(now time.Time) Summary {
	return Summary{
		Date:    clock.DayIdentity(now),
		Habits:  s.Habits.View(now),
		Metrics: s.Metrics.Today(now),
		Word:    s.Word.Today(now),
		Verse:   s.Verse.Today(now),
	}
}

// guard runs derive and returns fallback if it panics, so a broken
// generator never blocks rendering.
func guard[T any](feature string, fallback T, derive func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Feature derivation failed, using default", "feature", feature, "panic", r)
			out = fallback
		}
	}()
	return derive()
}

func pick[T any](items []T, intn IntN) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[intn(len(items))]
}

package features

import (
	"math"
	"time"

	"github.com/chronox22/eco-gamer-collective/internal/clock"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/models"
	"github.com/chronox22/eco-gamer-collective/internal/session"
)

// Metrics is the dashboard.
// Generator: date-seeded, offset = day-of-month mod variation, so every
// device shows the same figures on the same calendar day.
type Metrics struct {
	d         *daily.Deriver
	variation int
}

func NewMetrics(d *daily.Deriver, variation int) *Metrics {
	if variation < 1 {
		variation = 1
	}
	return &Metrics{d: d, variation: variation}
}

// Today returns the dashboard for the day of now.
func (m *Metrics) Today(now time.Time) models.DashboardMetrics {
	today := clock.DayIdentity(now)
	offset := now.Day() % m.variation
	return guard(constants.KeyDashboardMetrics, DashboardFor(0), func() models.DashboardMetrics {
		return daily.GetOrCreate(m.d, constants.KeyDashboardMetrics, today, func() models.DashboardMetrics {
			return DashboardFor(offset)
		})
	})
}

// DashboardFor computes the dashboard figures for a seed offset.
func DashboardFor(offset int) models.DashboardMetrics {
	o := float64(offset)
	score := 68 + offset*2
	if score > 100 {
		score = 100
	}
	return models.DashboardMetrics{
		EcoScore: score,
		Metrics: []models.Metric{
			{Title: "Carbon Saved", Value: round1(2.0 + 0.2*o), Suffix: "kg", Trend: models.Trend{Value: 10 + offset, Positive: true}},
			{Title: "Water Saved", Value: float64(14 + 2*offset), Suffix: "L", Trend: models.Trend{Value: 3 + offset, Positive: true}},
			{Title: "Waste Reduced", Value: round1(0.6 + 0.1*o), Suffix: "kg", Trend: models.Trend{Value: 6 + offset, Positive: offset%3 != 2}},
			{Title: "Trees Impact", Value: float64(2 + offset/2), Suffix: "hrs", Trend: models.Trend{Value: 8 + offset, Positive: true}},
		},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// WordOfTheDay picks one glossary word per day.
// Generator: locally random, frozen for the day.
type WordOfTheDay struct {
	cell  *daily.Cell[models.Word]
	words []models.Word
}

func NewWordOfTheDay(d *daily.Deriver, words []models.Word, intn IntN) *WordOfTheDay {
	return &WordOfTheDay{
		cell:  daily.NewCell(d, constants.KeyWordOfTheDay, func() models.Word { return pick(words, intn) }),
		words: words,
	}
}

func (w *WordOfTheDay) Today(now time.Time) models.Word {
	today := clock.DayIdentity(now)
	return guard(constants.KeyWordOfTheDay, first(w.words), func() models.Word {
		return w.cell.Get(today)
	})
}

// VerseOfTheDay picks one verse per day.
// Generator: locally random, frozen for the day.
type VerseOfTheDay struct {
	cell   *daily.Cell[models.Verse]
	verses []models.Verse
}

func NewVerseOfTheDay(d *daily.Deriver, verses []models.Verse, intn IntN) *VerseOfTheDay {
	return &VerseOfTheDay{
		cell:   daily.NewCell(d, constants.KeyVerseOfTheDay, func() models.Verse { return pick(verses, intn) }),
		verses: verses,
	}
}

func (v *VerseOfTheDay) Today(now time.Time) models.Verse {
	today := clock.DayIdentity(now)
	return guard(constants.KeyVerseOfTheDay, first(v.verses), func() models.Verse {
		return v.cell.Get(today)
	})
}

// Reminder hands out one random eco reminder per session.
type Reminder struct {
	flags     *session.Flags
	reminders []string
	intn      IntN
}

func NewReminder(flags *session.Flags, reminders []string, intn IntN) *Reminder {
	return &Reminder{flags: flags, reminders: reminders, intn: intn}
}

// Next returns a reminder the first time it is called in a session and
// ok == false afterwards.
func (r *Reminder) Next() (text string, ok bool) {
	if r.flags == nil || len(r.reminders) == 0 {
		return "", false
	}
	if !r.flags.MarkOnce(constants.KeyReminderShown) {
		return "", false
	}
	return pick(r.reminders, r.intn), true
}

func first[T any](items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[0]
}

// Package onboarding sequences the intro slides and the guided tutorial and
// remembers, per device, that they were finished.
package onboarding

import (
	"github.com/chronox22/eco-gamer-collective/internal/catalog"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/logger"
	"github.com/chronox22/eco-gamer-collective/internal/models"
)

const flagDone = "true"

// Flow walks a fixed list of steps. Finishing it, by reaching the end or
// skipping, persists its completion flag.
type Flow[T any] struct {
	store *daily.Store
	flag  string
	steps []T

	index    int
	finished bool
}

// NewFlow returns a flow over steps that records completion under flag.
func NewFlow[T any](store *daily.Store, flag string, steps []T) *Flow[T] {
	return &Flow[T]{store: store, flag: flag, steps: steps}
}

// NewOnboarding returns the four intro slides.
func NewOnboarding(store *daily.Store) *Flow[models.Slide] {
	return NewFlow(store, constants.KeyOnboarded, catalog.Slides())
}

// NewTutorial returns the guided tour.
func NewTutorial(store *daily.Store) *Flow[models.TutorialStep] {
	return NewFlow(store, constants.KeyTutorialCompleted, catalog.TutorialSteps())
}

// Current returns the step being shown.
func (f *Flow[T]) Current() T {
	var zero T
	if len(f.steps) == 0 {
		return zero
	}
	return f.steps[f.index]
}

// Position returns the 1-based step number and the step count.
func (f *Flow[T]) Position() (int, int) {
	if len(f.steps) == 0 {
		return 0, 0
	}
	return f.index + 1, len(f.steps)
}

func (f *Flow[T]) IsFirst() bool { return f.index == 0 }
func (f *Flow[T]) IsLast() bool  { return f.index >= len(f.steps)-1 }

// Finished reports whether this flow instance has been completed or skipped.
func (f *Flow[T]) Finished() bool { return f.finished }

// Next advances one step; on the last step it completes the flow.
// It reports whether the flow is finished.
func (f *Flow[T]) Next() bool {
	if f.finished {
		return true
	}
	if f.IsLast() {
		f.Complete()
		return true
	}
	f.index++
	return false
}

// Previous goes back one step. It does nothing on the first step.
func (f *Flow[T]) Previous() {
	if f.finished || f.index == 0 {
		return
	}
	f.index--
}

// Skip completes the flow without visiting the remaining steps.
func (f *Flow[T]) Skip() {
	logger.Debug("Flow skipped", "flag", f.flag, "step", f.index+1)
	f.Complete()
}

// Complete marks the flow finished and persists its flag.
func (f *Flow[T]) Complete() {
	if f.finished {
		return
	}
	f.finished = true
	f.store.Write(f.flag, flagDone)
	logger.Info("Flow completed", "flag", f.flag)
}

// Done reports whether the flow behind flag was finished on this device.
func Done(store *daily.Store, flag string) bool {
	v, ok := store.Read(flag)
	return ok && v == flagDone
}

// Reset forgets that the flow behind flag was finished.
func Reset(store *daily.Store, flag string) {
	store.Remove(flag)
	logger.Info("Flow reset", "flag", flag)
}

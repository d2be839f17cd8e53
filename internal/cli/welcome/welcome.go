package welcome

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/chronox22/eco-gamer-collective/internal/cli"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/models"
	"github.com/chronox22/eco-gamer-collective/internal/onboarding"
)

// Action is the user's choice on one step.
type Action string

const (
	ActionNext Action = "next"
	ActionBack Action = "back"
	ActionSkip Action = "skip"
)

// Step is what a prompt shows.
type Step struct {
	Title       string
	Description string
	Position    int
	Total       int
	First       bool
	Last        bool
}

// Prompt shows one step and returns the chosen action.
type Prompt func(Step) (Action, error)

type OnboardCmd struct {
	Reset bool `help:"Forget that onboarding was completed."`
	Again bool `help:"Show the slides even if onboarding was completed."`

	prompt Prompt
}

func (c *OnboardCmd) Run(ctx *cli.Context) error {
	if c.Reset {
		onboarding.Reset(ctx.Store, constants.KeyOnboarded)
		ctx.Println("✓ Onboarding reset")
		return nil
	}
	if onboarding.Done(ctx.Store, constants.KeyOnboarded) && !c.Again {
		ctx.Println("Onboarding already completed. Use --again to see it again.")
		return nil
	}

	flow := onboarding.NewOnboarding(ctx.Store)
	finished, err := Walk(flow, func(s models.Slide) (string, string) {
		return s.Title, s.Description
	}, promptOrDefault(c.prompt))
	if err != nil {
		return err
	}
	if finished {
		ctx.Println("✓ Welcome aboard! Run 'ecogamer tutorial' for a guided tour.")
	}
	return nil
}

type TutorialCmd struct {
	Reset bool `help:"Re-arm the tutorial so it runs again."`

	prompt Prompt
}

func (c *TutorialCmd) Run(ctx *cli.Context) error {
	if c.Reset {
		onboarding.Reset(ctx.Store, constants.KeyTutorialCompleted)
		ctx.Println("✓ Tutorial reset")
		return nil
	}

	flow := onboarding.NewTutorial(ctx.Store)
	finished, err := Walk(flow, func(s models.TutorialStep) (string, string) {
		if s.Target != "" {
			return s.Title, fmt.Sprintf("%s\n\n(%s)", s.Description, s.Target)
		}
		return s.Title, s.Description
	}, promptOrDefault(c.prompt))
	if err != nil {
		return err
	}
	if finished {
		ctx.Println("✓ Tutorial completed")
	}
	return nil
}

// Walk drives flow with prompt until it is finished or the user aborts.
// It reports whether the flow was finished.
func Walk[T any](flow *onboarding.Flow[T], describe func(T) (string, string), prompt Prompt) (bool, error) {
	for !flow.Finished() {
		title, desc := describe(flow.Current())
		pos, total := flow.Position()
		if total == 0 {
			flow.Complete()
			break
		}

		action, err := prompt(Step{
			Title:       title,
			Description: desc,
			Position:    pos,
			Total:       total,
			First:       flow.IsFirst(),
			Last:        flow.IsLast(),
		})
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return false, nil
			}
			return false, err
		}

		switch action {
		case ActionBack:
			flow.Previous()
		case ActionSkip:
			flow.Skip()
		default:
			flow.Next()
		}
	}
	return true, nil
}

func promptOrDefault(p Prompt) Prompt {
	if p != nil {
		return p
	}
	return formPrompt
}

func formPrompt(s Step) (Action, error) {
	next := "Next"
	if s.Last {
		next = "Finish"
	}
	options := []huh.Option[Action]{huh.NewOption(next, ActionNext)}
	if !s.First {
		options = append(options, huh.NewOption("Back", ActionBack))
	}
	if !s.Last {
		options = append(options, huh.NewOption("Skip", ActionSkip))
	}

	action := ActionNext
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("%s (%d/%d)", s.Title, s.Position, s.Total)).
				Description(s.Description),
			huh.NewSelect[Action]().
				Options(options...).
				Value(&action),
		),
	).Run()
	return action, err
}

package cli

import (
	"fmt"
	"strings"

	"github.com/chronox22/eco-gamer-collective/internal/features"
)

type HabitCmd struct {
	List     HabitListCmd     `cmd:"" help:"List today's habits." default:"1"`
	Toggle   HabitToggleCmd   `cmd:"" help:"Toggle a habit for today."`
	Mark     HabitMarkCmd     `cmd:"" help:"Mark a habit as done (or not done) for today."`
	Progress HabitProgressCmd `cmd:"" help:"Show today's habit progress."`
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	view := ctx.Suite.Habits.View(ctx.Clock.Now())
	if len(view.Habits) == 0 {
		ctx.Println("No habits for today.")
		return nil
	}

	ctx.Printf("Habits for %s\n\n", view.Date)
	for _, h := range view.Habits {
		ctx.Println(formatHabit(h))
	}
	ctx.Println()
	ctx.Println(formatProgress(view))
	return nil
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit ID (see 'habit list')."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	view, err := ctx.Suite.Habits.Toggle(ctx.Clock.Now(), c.ID)
	if err != nil {
		return err
	}
	return printHabitResult(ctx, view, c.ID)
}

type HabitMarkCmd struct {
	ID   string `arg:"" help:"Habit ID (see 'habit list')."`
	Undo bool   `help:"Mark the habit as not done."`
}

func (c *HabitMarkCmd) Run(ctx *Context) error {
	view, err := ctx.Suite.Habits.Set(ctx.Clock.Now(), c.ID, !c.Undo)
	if err != nil {
		return err
	}
	return printHabitResult(ctx, view, c.ID)
}

type HabitProgressCmd struct{}

func (c *HabitProgressCmd) Run(ctx *Context) error {
	view := ctx.Suite.Habits.View(ctx.Clock.Now())
	ctx.Println(formatProgress(view))
	ctx.Println(progressBar(view.Progress.Percent, 20))
	return nil
}

func printHabitResult(ctx *Context, view features.TrackerView, id string) error {
	for _, h := range view.Habits {
		if h.ID != id {
			continue
		}
		if h.Completed {
			ctx.Printf("✓ %s done\n", h.Name)
		} else {
			ctx.Printf("○ %s not done\n", h.Name)
		}
	}
	ctx.Println(formatProgress(view))
	return nil
}

func formatHabit(h features.HabitView) string {
	mark := "[ ]"
	if h.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %-10s %s", mark, h.ID, h.Name)
	if h.Points > 0 {
		line += fmt.Sprintf(" (+%d pts)", h.Points)
	}
	return line
}

func formatProgress(view features.TrackerView) string {
	p := view.Progress
	return fmt.Sprintf("%d/%d completed (%d%%) · %d pts", p.Completed, p.Total, p.Percent, p.Points)
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

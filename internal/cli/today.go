package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/chronox22/eco-gamer-collective/internal/features"
	"github.com/chronox22/eco-gamer-collective/internal/models"
)

type TodayCmd struct {
	JSON  bool `help:"Print the summary as JSON."`
	Plain bool `help:"Print markdown without terminal styling."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	summary := ctx.Suite.Today(ctx.Clock.Now())
	if c.JSON {
		return printJSON(ctx, summary)
	}

	reminder, _ := ctx.Suite.Reminder.Next()
	md := SummaryMarkdown(summary, reminder)
	if c.Plain {
		ctx.Printf("%s", md)
		return nil
	}
	ctx.Printf("%s", render(md))
	return nil
}

type MetricsCmd struct {
	JSON bool `help:"Print the metrics as JSON."`
}

func (c *MetricsCmd) Run(ctx *Context) error {
	m := ctx.Suite.Metrics.Today(ctx.Clock.Now())
	if c.JSON {
		return printJSON(ctx, m)
	}
	ctx.Printf("Eco score: %d\n", m.EcoScore)
	for _, metric := range m.Metrics {
		ctx.Printf("  %-18s %s  %s\n", metric.Title, formatValue(metric), formatTrend(metric.Trend))
	}
	return nil
}

type WordCmd struct{}

func (c *WordCmd) Run(ctx *Context) error {
	w := ctx.Suite.Word.Today(ctx.Clock.Now())
	ctx.Printf("%s\n  %s\n", w.Word, w.Definition)
	return nil
}

type VerseCmd struct{}

func (c *VerseCmd) Run(ctx *Context) error {
	v := ctx.Suite.Verse.Today(ctx.Clock.Now())
	ctx.Printf("%s\n  %s\n", v.Text, v.Verse)
	return nil
}

type RemindCmd struct{}

func (c *RemindCmd) Run(ctx *Context) error {
	text, ok := ctx.Suite.Reminder.Next()
	if !ok {
		ctx.Println("No reminder this session.")
		return nil
	}
	ctx.Printf("💡 %s\n", text)
	return nil
}

// SummaryMarkdown lays out the day's summary as markdown.
func SummaryMarkdown(s features.Summary, reminder string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", s.Date)
	if reminder != "" {
		fmt.Fprintf(&b, "> 💡 %s\n\n", reminder)
	}

	fmt.Fprintf(&b, "## Habits (%s)\n\n", formatProgress(s.Habits))
	for _, h := range s.Habits.Habits {
		mark := " "
		if h.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] **%s** (`%s`) %s\n", mark, h.Name, h.ID, h.Impact)
	}

	fmt.Fprintf(&b, "\n## Dashboard\n\nEco score: **%d**\n\n", s.Metrics.EcoScore)
	b.WriteString("| Metric | Value | Trend |\n|---|---|---|\n")
	for _, m := range s.Metrics.Metrics {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", m.Title, formatValue(m), formatTrend(m.Trend))
	}

	fmt.Fprintf(&b, "\n## Word of the day\n\n**%s**: %s\n", s.Word.Word, s.Word.Definition)
	fmt.Fprintf(&b, "\n## Verse of the day\n\n> %s\n>\n> %s\n", s.Verse.Text, s.Verse.Verse)
	return b.String()
}

func render(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printJSON(ctx *Context, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	ctx.Printf("%s\n", data)
	return nil
}

func formatValue(m models.Metric) string {
	return fmt.Sprintf("%g%s", m.Value, m.Suffix)
}

func formatTrend(t models.Trend) string {
	if t.Positive {
		return fmt.Sprintf("▲ %d%%", t.Value)
	}
	return fmt.Sprintf("▼ %d%%", t.Value)
}

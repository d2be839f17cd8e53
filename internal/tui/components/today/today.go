package today

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chronox22/eco-gamer-collective/internal/features"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("236")).
			Padding(0, 1)
)

// Model renders the dashboard, word and verse of the day.
type Model struct {
	summary features.Summary
	width   int
}

func New(summary features.Summary, width int) Model {
	return Model{summary: summary, width: width}
}

func (m *Model) SetSummary(s features.Summary) { m.summary = s }
func (m *Model) SetWidth(w int)                { m.width = w }

func (m Model) View() string {
	s := m.summary
	width := max(m.width-4, 20)

	var metrics []string
	for _, metric := range s.Metrics.Metrics {
		arrow := "↑"
		if !metric.Trend.Positive {
			arrow = "↓"
		}
		metrics = append(metrics, fmt.Sprintf("%-14s %6.1f %-3s %s%d%%",
			metric.Title, metric.Value, metric.Suffix, arrow, metric.Trend.Value))
	}

	dashboard := cardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(fmt.Sprintf("Eco Score %d%%", s.Metrics.EcoScore)),
		strings.Join(metrics, "\n"),
	))
	word := cardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Word of the Day"),
		headerStyle.Render(s.Word.Word),
		s.Word.Definition,
	))
	verse := cardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Verse of the Day"),
		headerStyle.Render(s.Verse.Verse),
		s.Verse.Text,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(s.Date),
		dashboard,
		word,
		verse,
	)
}

package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chronox22/eco-gamer-collective/internal/cli"
	"github.com/chronox22/eco-gamer-collective/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Suite, ctx.Store, ctx.Clock.Now), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}

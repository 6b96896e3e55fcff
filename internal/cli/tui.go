package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tamimhossen6238-cell/amolpro/internal/tui"
)

type TuiCmd struct {
	Tasbih string `arg:"" optional:"" help:"Tasbih id or name to count (defaults to the general tasbih)."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	t, err := findTasbih(ctx, c.Tasbih)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Engine, t), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}

	t, err = findTasbih(ctx, t.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Session finished. %s: %d today, %d lifetime.\n", t.Name, t.Count, t.TotalCount)
	return nil
}

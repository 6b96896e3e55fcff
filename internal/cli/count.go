package cli

import (
	"fmt"

	"github.com/tamimhossen6238-cell/amolpro/internal/neki"
)

// CountCmd records repetitions from the command line, for quick logging
// without entering the focus-mode TUI.
type CountCmd struct {
	Tasbih string `arg:"" optional:"" help:"Tasbih id or name (defaults to the general tasbih)."`
	N      int    `short:"n" default:"1" help:"Number of repetitions to record."`
}

func (c *CountCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	t, err := findTasbih(ctx, c.Tasbih)
	if err != nil {
		return err
	}

	milestone, err := ctx.Engine.RecordRepetition(t.ID, c.N)
	if err != nil {
		return err
	}

	t, err = findTasbih(ctx, t.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d today (%d lifetime)\n", t.Name, t.Count, t.TotalCount)
	if per := neki.PerRepetition(t); per > 0 {
		fmt.Printf("Neki earned: %d\n", per*c.N)
	}
	if milestone != nil {
		fmt.Printf("MashaAllah! You crossed %d repetitions.\n", milestone.NewCount/100*100)
	}
	return nil
}

// TimeCmd sets the time spent on a tasbih today. The value is absolute, not
// additive; the focus-mode TUI reports its own totals the same way.
type TimeCmd struct {
	Tasbih  string `arg:"" help:"Tasbih id or name."`
	Seconds int    `arg:"" help:"Total seconds spent today."`
}

func (c *TimeCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	t, err := findTasbih(ctx, c.Tasbih)
	if err != nil {
		return err
	}
	if c.Seconds < 0 {
		return fmt.Errorf("seconds cannot be negative")
	}
	if err := ctx.Engine.RecordTimeSpent(t.ID, c.Seconds); err != nil {
		return err
	}
	fmt.Printf("Recorded %d seconds for %s today.\n", c.Seconds, t.Name)
	return nil
}

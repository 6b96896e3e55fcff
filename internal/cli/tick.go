package cli

import "fmt"

// TickCmd is the explicit clock entry point, useful from cron or scripts.
type TickCmd struct{}

func (c *TickCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	batch, err := ctx.Engine.Tick()
	if err != nil {
		return err
	}
	if len(batch) == 0 {
		fmt.Println("Nothing due.")
		return nil
	}
	fmt.Printf("Delivered %d message(s):\n", len(batch))
	for _, m := range batch {
		fmt.Printf("  - %s\n", m.Title)
	}
	return nil
}

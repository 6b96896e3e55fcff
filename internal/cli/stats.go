package cli

import (
	"fmt"

	"github.com/tamimhossen6238-cell/amolpro/internal/inbox"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	stats, err := ctx.Store.GetStats()
	if err != nil {
		return err
	}
	messages, err := ctx.Store.GetInbox()
	if err != nil {
		return err
	}

	fmt.Printf("Level:        %d\n", stats.Level)
	fmt.Printf("Total neki:   %d\n", stats.TotalNeki)
	fmt.Printf("Total XP:     %d\n", stats.TotalXP)
	fmt.Printf("Streak:       %d day(s)\n", stats.Streak)
	fmt.Printf("Today's neki: %d\n", stats.TodayNeki)
	fmt.Printf("Unread inbox: %d\n", inbox.UnreadCount(messages))
	return nil
}

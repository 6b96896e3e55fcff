package cli

import (
	"fmt"
	"sort"

	"github.com/tamimhossen6238-cell/amolpro/internal/report"
)

type HistoryCmd struct {
	Days int `short:"d" default:"7" help:"Number of most recent archived days to show."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	history, err := ctx.Store.GetHistory()
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No archived days yet.")
		return nil
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	if c.Days > 0 && len(history) > c.Days {
		history = history[:c.Days]
	}

	for _, rec := range history {
		total := 0
		for _, n := range rec.TasbihCounts {
			total += n
		}
		fmt.Printf("%s  %d recitations, %d neki, %s\n",
			rec.Date, total, rec.TotalNeki, report.FormatDuration(rec.TotalTime))
	}
	return nil
}

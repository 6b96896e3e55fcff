package cli

import (
	"fmt"
	"sort"

	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

type GardenListCmd struct{}

func (c *GardenListCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	garden, err := ctx.Store.GetGarden()
	if err != nil {
		return err
	}
	if len(garden) == 0 {
		fmt.Println("Your garden is empty. Recite a tasbih 100 times in a day to plant a tree.")
		return nil
	}

	sort.Slice(garden, func(i, j int) bool {
		return garden[i].Date > garden[j].Date
	})

	fmt.Printf("Your garden (%d trees):\n", len(garden))
	for _, tree := range garden {
		kind := treeStage(tree.Count)
		if tree.Type == models.TreeTypeJournal {
			kind = "journal tree"
		}
		fmt.Printf("  %s  %s (%s)\n", tree.Date, tree.TasbihName, kind)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/tamimhossen6238-cell/amolpro/internal/models"
	"github.com/tamimhossen6238-cell/amolpro/internal/neki"
	"github.com/tamimhossen6238-cell/amolpro/internal/validation"
)

type TasbihAddCmd struct {
	Name          string `arg:"" optional:"" help:"Display name."`
	Arabic        string `short:"a" help:"Arabic text, used for neki valuation."`
	Pronunciation string `short:"p" help:"Latin pronunciation."`
	Translation   string `short:"t" help:"Translation."`
	Schedule      string `short:"s" default:"everyday" help:"Schedule: everyday or comma-separated weekdays."`
	Neki          int    `help:"Manual neki per repetition (used only without Arabic text)."`
}

func (c *TasbihAddCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	if c.Name == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&c.Name),
			huh.NewInput().Title("Arabic text (optional)").Value(&c.Arabic),
			huh.NewInput().Title("Pronunciation (optional)").Value(&c.Pronunciation),
			huh.NewInput().Title("Translation (optional)").Value(&c.Translation),
			huh.NewInput().Title("Schedule").Value(&c.Schedule),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validation.ValidateName(c.Name); err != nil {
		return err
	}
	schedule, err := validation.ParseSchedule(c.Schedule)
	if err != nil {
		return err
	}

	t := models.Tasbih{
		ID:            uuid.NewString(),
		Name:          c.Name,
		ArabicText:    c.Arabic,
		Pronunciation: c.Pronunciation,
		Translation:   c.Translation,
		Schedule:      schedule,
		ManualNeki:    c.Neki,
	}

	tasbihs, err := ctx.Store.GetTasbihs()
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveTasbihs(append(tasbihs, t)); err != nil {
		return err
	}

	fmt.Printf("Added tasbih: %s (%d neki per repetition)\n", t.Name, neki.PerRepetition(t))
	return nil
}

type TasbihEditCmd struct {
	Tasbih        string `arg:"" help:"Tasbih id or name."`
	Name          string `help:"New display name."`
	Arabic        string `short:"a" help:"New Arabic text."`
	Pronunciation string `short:"p" help:"New pronunciation."`
	Translation   string `short:"t" help:"New translation."`
	Schedule      string `short:"s" help:"New schedule."`
	Neki          int    `default:"-1" help:"New manual neki per repetition."`
}

func (c *TasbihEditCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	t, err := findTasbih(ctx, c.Tasbih)
	if err != nil {
		return err
	}

	tasbihs, err := ctx.Store.GetTasbihs()
	if err != nil {
		return err
	}
	for i := range tasbihs {
		if tasbihs[i].ID != t.ID {
			continue
		}
		if c.Name != "" {
			if err := validation.ValidateName(c.Name); err != nil {
				return err
			}
			tasbihs[i].Name = c.Name
		}
		if c.Arabic != "" {
			tasbihs[i].ArabicText = c.Arabic
		}
		if c.Pronunciation != "" {
			tasbihs[i].Pronunciation = c.Pronunciation
		}
		if c.Translation != "" {
			tasbihs[i].Translation = c.Translation
		}
		if c.Schedule != "" {
			schedule, err := validation.ParseSchedule(c.Schedule)
			if err != nil {
				return err
			}
			tasbihs[i].Schedule = schedule
		}
		if c.Neki >= 0 {
			tasbihs[i].ManualNeki = c.Neki
		}
		if err := ctx.Store.SaveTasbihs(tasbihs); err != nil {
			return err
		}
		fmt.Printf("Updated tasbih: %s\n", tasbihs[i].Name)
		return nil
	}
	return fmt.Errorf("tasbih not found: %s", c.Tasbih)
}

type TasbihDeleteCmd struct {
	Tasbih string `arg:"" help:"Tasbih id or name."`
}

func (c *TasbihDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	t, err := findTasbih(ctx, c.Tasbih)
	if err != nil {
		return err
	}

	tasbihs, err := ctx.Store.GetTasbihs()
	if err != nil {
		return err
	}
	out := tasbihs[:0]
	for _, tb := range tasbihs {
		if tb.ID != t.ID {
			out = append(out, tb)
		}
	}
	if len(out) == len(tasbihs) {
		return fmt.Errorf("the general tasbih cannot be deleted")
	}
	if err := ctx.Store.SaveTasbihs(out); err != nil {
		return err
	}
	fmt.Printf("Deleted tasbih: %s\n", t.Name)
	return nil
}

type TasbihListCmd struct{}

func (c *TasbihListCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	tasbihs, err := ctx.Store.GetTasbihs()
	if err != nil {
		return err
	}
	general, err := ctx.Store.GetGeneralTasbih()
	if err != nil {
		return err
	}

	fmt.Println("Tasbihs:")
	for _, t := range append(tasbihs, general) {
		fmt.Printf("  %s - %d today, %d lifetime (%d neki/rep, %s)\n",
			t.Name, t.Count, t.TotalCount, neki.PerRepetition(t),
			validation.FormatSchedule(t.Schedule))
		if t.ArabicText != "" {
			fmt.Printf("      %s\n", t.ArabicText)
		}
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/tamimhossen6238-cell/amolpro/internal/models"
	"github.com/tamimhossen6238-cell/amolpro/internal/validation"
)

type TargetAddCmd struct {
	Name        string `arg:"" optional:"" help:"Target name."`
	Neki        int    `short:"n" default:"100" help:"Neki awarded on completion."`
	Description string `short:"d" help:"Description."`
}

func (c *TargetAddCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	if c.Name == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&c.Name),
			huh.NewInput().Title("Description (optional)").Value(&c.Description),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validation.ValidateName(c.Name); err != nil {
		return err
	}
	if c.Neki <= 0 {
		return fmt.Errorf("neki reward must be positive")
	}

	target := models.TargetAmol{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Neki:        c.Neki,
	}

	targets, err := ctx.Store.GetTargets()
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveTargets(append(targets, target)); err != nil {
		return err
	}
	fmt.Printf("Added target: %s (%d neki)\n", target.Name, target.Neki)
	return nil
}

type TargetDoneCmd struct {
	Target string `arg:"" help:"Target id or name."`
}

func (c *TargetDoneCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	target, err := findTarget(ctx, c.Target)
	if err != nil {
		return err
	}
	if target.Completed {
		fmt.Printf("%s is already completed today.\n", target.Name)
		return nil
	}
	if err := ctx.Engine.CompleteTarget(target.ID); err != nil {
		return err
	}
	fmt.Printf("Completed target: %s (+%d neki)\n", target.Name, target.Neki)
	return nil
}

type TargetEditCmd struct {
	Target      string `arg:"" help:"Target id or name."`
	Name        string `help:"New name."`
	Neki        int    `short:"n" default:"-1" help:"New neki reward."`
	Description string `short:"d" help:"New description."`
}

func (c *TargetEditCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	target, err := findTarget(ctx, c.Target)
	if err != nil {
		return err
	}

	targets, err := ctx.Store.GetTargets()
	if err != nil {
		return err
	}
	for i := range targets {
		if targets[i].ID != target.ID {
			continue
		}
		if c.Name != "" {
			if err := validation.ValidateName(c.Name); err != nil {
				return err
			}
			targets[i].Name = c.Name
		}
		if c.Neki > 0 {
			targets[i].Neki = c.Neki
		}
		if c.Description != "" {
			targets[i].Description = c.Description
		}
		if err := ctx.Store.SaveTargets(targets); err != nil {
			return err
		}
		fmt.Printf("Updated target: %s\n", targets[i].Name)
		return nil
	}
	return fmt.Errorf("target not found: %s", c.Target)
}

type TargetDeleteCmd struct {
	Target string `arg:"" help:"Target id or name."`
}

func (c *TargetDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	target, err := findTarget(ctx, c.Target)
	if err != nil {
		return err
	}

	targets, err := ctx.Store.GetTargets()
	if err != nil {
		return err
	}
	out := targets[:0]
	for _, t := range targets {
		if t.ID != target.ID {
			out = append(out, t)
		}
	}
	if err := ctx.Store.SaveTargets(out); err != nil {
		return err
	}
	fmt.Printf("Deleted target: %s\n", target.Name)
	return nil
}

type TargetListCmd struct{}

func (c *TargetListCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	targets, err := ctx.Store.GetTargets()
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Println("No targets defined.")
		return nil
	}

	fmt.Println("Today's targets:")
	for _, t := range targets {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("  [%s] %s (%d neki)\n", mark, t.Name, t.Neki)
		if t.Description != "" {
			fmt.Printf("      %s\n", t.Description)
		}
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/validation"
)

type JournalAddCmd struct {
	Text string `arg:"" optional:"" help:"The good deed to record."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	if c.Text == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewText().Title("What good deed did you do?").Value(&c.Text),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}
	if err := validation.ValidateJournalText(c.Text); err != nil {
		return err
	}

	entry, err := ctx.Engine.AddJournalEntry(c.Text)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded. +%d XP, and a tree was planted in your garden.\n", constants.JournalXP)
	fmt.Printf("Entry id: %s\n", entry.ID)
	return nil
}

type JournalEditCmd struct {
	ID   string `arg:"" help:"Journal entry id."`
	Text string `arg:"" help:"Replacement text."`
}

func (c *JournalEditCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}
	if err := validation.ValidateJournalText(c.Text); err != nil {
		return err
	}
	if err := ctx.Engine.EditJournalEntry(c.ID, c.Text); err != nil {
		return err
	}
	fmt.Println("Entry updated.")
	return nil
}

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Journal entry id."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}
	if err := ctx.Engine.DeleteJournalEntry(c.ID); err != nil {
		return err
	}
	fmt.Println("Entry deleted. Its XP and garden tree were removed.")
	return nil
}

type JournalListCmd struct{}

func (c *JournalListCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	journal, err := ctx.Store.GetJournal()
	if err != nil {
		return err
	}
	if len(journal) == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}

	fmt.Println("Good deeds journal:")
	for _, entry := range journal {
		fmt.Printf("  %s  %s\n", entry.Date, entry.Text)
		fmt.Printf("      id: %s\n", entry.ID)
	}
	return nil
}

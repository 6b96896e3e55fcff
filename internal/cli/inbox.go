package cli

import (
	"fmt"

	"github.com/tamimhossen6238-cell/amolpro/internal/inbox"
)

type InboxListCmd struct {
	Full bool `short:"f" help:"Show full message bodies."`
}

func (c *InboxListCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	messages, err := ctx.Store.GetInbox()
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		fmt.Println("Inbox is empty.")
		return nil
	}

	fmt.Printf("Inbox (%d unread):\n", inbox.UnreadCount(messages))
	for _, m := range messages {
		mark := "*"
		if m.Read {
			mark = " "
		}
		fmt.Printf("  %s %s  %s\n", mark, m.CreatedAt.Format("02 Jan 15:04"), m.Title)
		if m.ClaimAmount > 0 {
			fmt.Printf("      claimable: %d neki\n", m.ClaimAmount)
		}
		if c.Full {
			fmt.Printf("      id: %s\n%s\n\n", m.ID, m.Body)
		}
	}
	return nil
}

type InboxReadCmd struct {
	ID string `arg:"" help:"Message id."`
}

func (c *InboxReadCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	messages, err := ctx.Store.GetInbox()
	if err != nil {
		return err
	}
	for _, m := range messages {
		if m.ID != c.ID {
			continue
		}
		fmt.Printf("%s\n%s\n\n%s\n", m.Title, m.CreatedAt.Format("02 January 2006 15:04"), m.Body)
		return ctx.Store.SaveInbox(inbox.MarkRead(messages, c.ID))
	}
	return fmt.Errorf("message not found: %s", c.ID)
}

type InboxDeleteCmd struct {
	IDs []string `arg:"" help:"Message ids."`
}

func (c *InboxDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	messages, err := ctx.Store.GetInbox()
	if err != nil {
		return err
	}
	remaining := inbox.DeleteMany(messages, c.IDs)
	if err := ctx.Store.SaveInbox(remaining); err != nil {
		return err
	}
	fmt.Printf("Deleted %d message(s).\n", len(messages)-len(remaining))
	return nil
}

// InboxPurgeCmd clears the whole inbox, expired or not.
type InboxPurgeCmd struct{}

func (c *InboxPurgeCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}
	if err := ctx.Store.SaveInbox(nil); err != nil {
		return err
	}
	fmt.Println("Inbox cleared.")
	return nil
}

type InboxClaimCmd struct {
	ID string `arg:"" help:"Claim-offer message id."`
}

func (c *InboxClaimCmd) Run(ctx *Context) error {
	if err := ctx.Advance(); err != nil {
		return err
	}

	amount, err := ctx.Engine.ClaimNeki(c.ID)
	if err != nil {
		return err
	}
	if amount == 0 {
		fmt.Println("Nothing to claim from that message.")
		return nil
	}
	fmt.Printf("Claimed %d neki. Alhamdulillah!\n", amount)
	return nil
}

package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tamimhossen6238-cell/amolpro/internal/inbox"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

// CompleteTarget marks a target done, credits its neki and pushes a
// congratulation message. Unknown or already-completed targets are a no-op.
func (e *Engine) CompleteTarget(id string) error {
	targets, err := e.store.GetTargets()
	if err != nil {
		return err
	}

	var target *models.TargetAmol
	for i := range targets {
		if targets[i].ID == id {
			target = &targets[i]
			break
		}
	}
	if target == nil || target.Completed {
		return nil
	}

	target.Completed = true
	if err := e.store.SaveTargets(targets); err != nil {
		return err
	}

	stats, err := e.store.GetStats()
	if err != nil {
		return err
	}
	addNeki(&stats, target.Neki)
	if err := e.store.SaveStats(stats); err != nil {
		return err
	}

	return e.pushMessage(models.InboxMessage{
		ID:         uuid.NewString(),
		Title:      "Target Completed",
		Body:       fmt.Sprintf("Alhamdulillah, you completed the target %q. Surely Allah will reward you for it.", target.Name),
		CreatedAt:  e.clock(),
		Type:       models.MessageTypeInfo,
		TargetName: target.Name,
	})
}

// ClaimNeki redeems a claim-offer message: the offered neki is credited and
// the message removed. Non-claim or unknown message ids are a no-op.
func (e *Engine) ClaimNeki(messageID string) (int, error) {
	messages, err := e.store.GetInbox()
	if err != nil {
		return 0, err
	}

	amount := 0
	for _, m := range messages {
		if m.ID == messageID && m.Type == models.MessageTypeClaim {
			amount = m.ClaimAmount
			break
		}
	}
	if amount <= 0 {
		return 0, nil
	}

	stats, err := e.store.GetStats()
	if err != nil {
		return 0, err
	}
	addNeki(&stats, amount)
	if err := e.store.SaveStats(stats); err != nil {
		return 0, err
	}

	messages = inbox.Delete(messages, messageID)
	return amount, e.store.SaveInbox(messages)
}

// pushMessage prepends a single message to the inbox.
func (e *Engine) pushMessage(m models.InboxMessage) error {
	messages, err := e.store.GetInbox()
	if err != nil {
		return err
	}
	return e.store.SaveInbox(inbox.Prepend(messages, m))
}

// ReportGeneralSession pushes an informational summary after a general
// tasbih counting session ends. Sessions without repetitions stay silent.
func (e *Engine) ReportGeneralSession(sessionCount, sessionSeconds int) error {
	if sessionCount <= 0 {
		return nil
	}
	minutes := sessionSeconds / 60
	seconds := sessionSeconds % 60
	timeStr := fmt.Sprintf("%d seconds", seconds)
	if minutes > 0 {
		timeStr = fmt.Sprintf("%d minutes %d seconds", minutes, seconds)
	}
	return e.pushMessage(models.InboxMessage{
		ID:        uuid.NewString(),
		Title:     "Tasbih Session Report",
		Body:      fmt.Sprintf("You recited the general tasbih %d times in %s.", sessionCount, timeStr),
		CreatedAt: e.clock(),
		Type:      models.MessageTypeInfo,
	})
}

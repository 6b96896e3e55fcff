// Package inbox implements the append-only notification list.
package inbox

import (
	"time"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

// Prepend inserts the batch ahead of existing messages, most recent first.
func Prepend(messages []models.InboxMessage, batch ...models.InboxMessage) []models.InboxMessage {
	if len(batch) == 0 {
		return messages
	}
	out := make([]models.InboxMessage, 0, len(batch)+len(messages))
	out = append(out, batch...)
	out = append(out, messages...)
	return out
}

// MarkRead flags the message with the given id as read. Unknown ids are a
// no-op.
func MarkRead(messages []models.InboxMessage, id string) []models.InboxMessage {
	for i := range messages {
		if messages[i].ID == id {
			messages[i].Read = true
			break
		}
	}
	return messages
}

// Delete removes the message with the given id. Unknown ids are a no-op.
func Delete(messages []models.InboxMessage, id string) []models.InboxMessage {
	return DeleteMany(messages, []string{id})
}

// DeleteMany removes every message whose id appears in ids.
func DeleteMany(messages []models.InboxMessage, ids []string) []models.InboxMessage {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := messages[:0]
	for _, m := range messages {
		if !drop[m.ID] {
			out = append(out, m)
		}
	}
	return out
}

// PurgeExpired removes messages older than the 48-hour TTL. Invoked
// opportunistically on load and on every tick, never from a timer.
func PurgeExpired(messages []models.InboxMessage, now time.Time) []models.InboxMessage {
	cutoff := now.Add(-constants.InboxTTL)
	out := messages[:0]
	for _, m := range messages {
		if m.CreatedAt.After(cutoff) {
			out = append(out, m)
		}
	}
	return out
}

// UnreadCount returns the number of unread messages.
func UnreadCount(messages []models.InboxMessage) int {
	n := 0
	for _, m := range messages {
		if !m.Read {
			n++
		}
	}
	return n
}

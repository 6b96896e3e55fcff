package inbox

import (
	"testing"
	"time"

	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

func msg(id string, age time.Duration, now time.Time) models.InboxMessage {
	return models.InboxMessage{ID: id, CreatedAt: now.Add(-age)}
}

func TestPrepend_KeepsRecencyOrder(t *testing.T) {
	now := time.Now()
	existing := []models.InboxMessage{msg("old", time.Hour, now)}

	got := Prepend(existing, msg("daily", 0, now), msg("weekly", 0, now))

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != "daily" || got[1].ID != "weekly" || got[2].ID != "old" {
		t.Errorf("order = %s,%s,%s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestMarkRead(t *testing.T) {
	now := time.Now()
	messages := []models.InboxMessage{msg("a", 0, now), msg("b", 0, now)}

	messages = MarkRead(messages, "b")
	if messages[0].Read || !messages[1].Read {
		t.Errorf("read flags = %v,%v", messages[0].Read, messages[1].Read)
	}

	// unknown id is a no-op
	messages = MarkRead(messages, "nope")
	if messages[0].Read {
		t.Error("unknown id mutated a message")
	}
}

func TestDeleteMany(t *testing.T) {
	now := time.Now()
	messages := []models.InboxMessage{msg("a", 0, now), msg("b", 0, now), msg("c", 0, now)}

	got := DeleteMany(messages, []string{"a", "c", "missing"})
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("got %+v, want only b", got)
	}
}

func TestPurgeExpired(t *testing.T) {
	now := time.Now()
	messages := []models.InboxMessage{
		msg("fresh", time.Hour, now),
		msg("borderline", 47*time.Hour, now),
		msg("expired", 49*time.Hour, now),
	}

	got := PurgeExpired(messages, now)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, m := range got {
		if m.ID == "expired" {
			t.Error("expired message survived purge")
		}
	}
}

func TestUnreadCount(t *testing.T) {
	now := time.Now()
	messages := []models.InboxMessage{msg("a", 0, now), msg("b", 0, now)}
	messages[0].Read = true

	if got := UnreadCount(messages); got != 1 {
		t.Errorf("UnreadCount = %d, want 1", got)
	}
}

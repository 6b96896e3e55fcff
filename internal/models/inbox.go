package models

import "time"

// MessageType tags an inbox message with its origin.
type MessageType string

const (
	MessageTypeDailyReport   MessageType = "report"
	MessageTypeWeeklyReport  MessageType = "weekly_report"
	MessageTypeMonthlyReport MessageType = "monthly_report"
	MessageTypeReminder      MessageType = "reminder"
	MessageTypeInfo          MessageType = "info"
	MessageTypeClaim         MessageType = "claim"
)

// InboxMessage is one delivered notification. Messages expire 48 hours after
// creation and are purged opportunistically, not on a timer.
type InboxMessage struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Body        string      `json:"body"`
	CreatedAt   time.Time   `json:"created_at"`
	Read        bool        `json:"read"`
	Type        MessageType `json:"type"`
	ClaimAmount int         `json:"claim_amount,omitempty"` // neki offered by claim messages
	TargetName  string      `json:"target_name,omitempty"`
}

package models

// TargetAmol represents a daily goal worth a fixed neki reward.
// Completed resets to false at every rollover.
type TargetAmol struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Neki          int    `json:"neki"`
	Completed     bool   `json:"completed"`
	ArabicText    string `json:"arabic_text,omitempty"`
	Pronunciation string `json:"pronunciation,omitempty"`
	Translation   string `json:"translation,omitempty"`
}

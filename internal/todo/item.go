package todo

import "github.com/google/uuid"

// Item is the domain model for a todo entry.
// ID is assigned once at creation and never reused; the position in the
// list is only the display order.
type Item struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// NewItem returns a pending item with a fresh ID.
func NewItem(text string) Item {
	return Item{ID: newID(), Text: text}
}

var newID = func() string { return uuid.NewString() }

package domain

import "time"

// Item is a single to-do record.
// ID and CreatedAt are assigned by the store and never change afterwards.
type Item struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// NewItem creates an open item with the given title.
func NewItem(title string) Item {
	return Item{
		Title: title,
	}
}

// Toggle flips the done flag.
func (i *Item) Toggle() {
	i.Done = !i.Done
}

// Status returns a short label for display.
func (i Item) Status() string {
	if i.Done {
		return "done"
	}
	return "open"
}

// String returns the item title for display purposes.
func (i Item) String() string {
	return i.Title
}

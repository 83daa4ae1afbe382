package sqlite

import "time"

// Item is a row of the items table
type Item struct {
	ID        int64
	Title     string
	Done      bool
	CreatedAt time.Time
}

// ItemField names a column items can be ordered by
type ItemField string

const (
	FieldCreatedAt ItemField = "created_at"
	FieldID        ItemField = "id"
	FieldTitle     ItemField = "title"
)

// Column returns the SQL column for the field and whether it is orderable
func (f ItemField) Column() (string, bool) {
	switch f {
	case FieldCreatedAt, FieldID, FieldTitle:
		return string(f), true
	default:
		return "", false
	}
}

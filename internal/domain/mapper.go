package domain

import (
	"github.com/samber/lo"

	"todo-list/internal/repository/sqlite"
)

// ItemMapper handles conversion between domain and database Item models.
type ItemMapper struct{}

// NewItemMapper creates a new ItemMapper instance.
func NewItemMapper() *ItemMapper {
	return &ItemMapper{}
}

// ToDatabase converts a domain Item to a database Item.
func (m *ItemMapper) ToDatabase(item Item) sqlite.Item {
	return sqlite.Item{
		ID:        item.ID,
		Title:     item.Title,
		Done:      item.Done,
		CreatedAt: item.CreatedAt,
	}
}

// FromDatabase converts a database Item to a domain Item.
func (m *ItemMapper) FromDatabase(dbItem sqlite.Item) Item {
	return Item{
		ID:        dbItem.ID,
		Title:     dbItem.Title,
		Done:      dbItem.Done,
		CreatedAt: dbItem.CreatedAt,
	}
}

// FromDatabaseSlice converts database rows to domain Items, preserving order.
func (m *ItemMapper) FromDatabaseSlice(dbItems []*sqlite.Item) []Item {
	return lo.Map(dbItems, func(dbItem *sqlite.Item, _ int) Item {
		return m.FromDatabase(*dbItem)
	})
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Item *ItemMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Item: NewItemMapper(),
	}
}

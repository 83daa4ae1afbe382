package services

//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_services.go -package=mocks

import (
	"context"

	"todo-list/internal/domain"
)

// TodoService handles the item lifecycle shared by the web pages, the JSON API and the CLI
type TodoService interface {
	// ListItems returns every item, newest first
	ListItems(ctx context.Context) ([]domain.Item, error)
	// AddItem stores a new open item. An empty title adds nothing and
	// returns a nil item without error.
	AddItem(ctx context.Context, title string) (*domain.Item, error)
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	// ToggleItem flips the done flag and returns the updated item
	ToggleItem(ctx context.Context, id int64) (*domain.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	CountItems(ctx context.Context) (int, error)
}

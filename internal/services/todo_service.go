package services

import (
	"context"
	"log/slog"
	"strconv"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/validation"
)

const itemResource = "item"

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	itemValidator *validation.ItemValidator
	log           *slog.Logger
}

// NewTodoService creates a new TodoService instance
func NewTodoService(repo sqlite.Repository, log *slog.Logger) TodoService {
	return &todoServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		itemValidator: validation.NewItemValidator(),
		log:           log,
	}
}

// ListItems returns all items ordered by creation time, newest first
func (s *todoServiceImpl) ListItems(ctx context.Context) ([]domain.Item, error) {
	dbItems, err := s.repo.ListItemsOrderedBy(ctx, sqlite.FieldCreatedAt, true)
	if err != nil {
		return nil, err
	}
	return s.mapper.Item.FromDatabaseSlice(dbItems), nil
}

// AddItem creates a new item when title is non-empty
func (s *todoServiceImpl) AddItem(ctx context.Context, title string) (*domain.Item, error) {
	if err := s.itemValidator.ValidateTitle(title); err != nil {
		logging.FromContext(ctx, s.log).Debug("Empty title, nothing added")
		return nil, nil
	}

	dbItem := s.mapper.Item.ToDatabase(domain.NewItem(title))
	if err := s.repo.CreateItem(ctx, &dbItem); err != nil {
		return nil, err
	}

	item := s.mapper.Item.FromDatabase(dbItem)
	logging.FromContext(ctx, s.log).Info("Item added", "id", item.ID)
	return &item, nil
}

// GetItem retrieves an item by its ID
func (s *todoServiceImpl) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	if err := s.checkID(id); err != nil {
		return nil, err
	}

	dbItem, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item := s.mapper.Item.FromDatabase(*dbItem)
	return &item, nil
}

// ToggleItem flips the done flag of an existing item
func (s *todoServiceImpl) ToggleItem(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Toggle()

	// UpdateItem reports NotFound if the row disappeared after the lookup
	dbItem := s.mapper.Item.ToDatabase(*item)
	if err := s.repo.UpdateItem(ctx, &dbItem); err != nil {
		if errors.IsNotFound(err) {
			logging.FromContext(ctx, s.log).Debug("Item removed before update", "id", id)
		}
		return nil, err
	}

	logging.FromContext(ctx, s.log).Info("Item toggled", "id", item.ID, "done", item.Done)
	return item, nil
}

// DeleteItem permanently removes an existing item
func (s *todoServiceImpl) DeleteItem(ctx context.Context, id int64) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}

	logging.FromContext(ctx, s.log).Info("Item deleted", "id", id)
	return nil
}

// CountItems returns the number of stored items
func (s *todoServiceImpl) CountItems(ctx context.Context) (int, error) {
	return s.repo.CountItems(ctx)
}

// checkID treats identifiers no item can carry as missing items
func (s *todoServiceImpl) checkID(id int64) error {
	if err := s.itemValidator.ValidateItemID(id); err != nil {
		return errors.NewNotFoundError(itemResource, strconv.FormatInt(id, 10))
	}
	return nil
}

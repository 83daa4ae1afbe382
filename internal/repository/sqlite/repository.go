package sqlite

//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../../mocks/mock_repository.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const itemEntity = "item"

// Repository defines the interface for item persistence
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	ListItemsOrderedBy(ctx context.Context, field ItemField, desc bool) ([]*Item, error)
	GetItem(ctx context.Context, id int64) (*Item, error)
	CountItems(ctx context.Context) (int, error)
	UpdateItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, id int64) error
	SchemaVersion(ctx context.Context) (int, error)
	Close() error
}

// Options tunes a SQLiteRepository. Zero values fall back to defaults.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	BusyTimeout  time.Duration
	// Now is the store's clock used to stamp created_at
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.BusyTimeout <= 0 {
		o.BusyTimeout = 5 * time.Second
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance with default options
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens dbPath, applies pragmas and runs pending migrations
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	opts = opts.withDefaults()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// SQLite has a single writer, and every connection to ":memory:" is a
	// separate database.
	db.SetMaxOpenConns(1)

	pragma := fmt.Sprintf("PRAGMA busy_timeout = %d", opts.BusyTimeout.Milliseconds())
	if _, err := db.Exec(pragma); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("configure database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateItem inserts item and fills in its ID. A zero CreatedAt is stamped
// from the store clock.
func (r *SQLiteRepository) CreateItem(ctx context.Context, item *Item) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	if item.CreatedAt.IsZero() {
		item.CreatedAt = r.opts.Now().UTC()
	}

	query := `
	INSERT INTO items (title, done, created_at)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, item.Title, item.Done, FormatTimeForDB(item.CreatedAt))
	if err != nil {
		return err
	}

	item.ID = id
	return nil
}

// ListItemsOrderedBy returns every item ordered by field, ties broken by id
// in the same direction
func (r *SQLiteRepository) ListItemsOrderedBy(ctx context.Context, field ItemField, desc bool) ([]*Item, error) {
	column, ok := field.Column()
	if !ok {
		return nil, errors.NewInvalidInputError("order by", string(field), "unknown item field")
	}

	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
	SELECT id, title, done, created_at
	FROM items
	ORDER BY %s %s, id %s`, column, direction, direction)

	return QueryMultiple(ctx, r.db, query, ScanItems, "items")
}

// GetItem retrieves an item by ID
func (r *SQLiteRepository) GetItem(ctx context.Context, id int64) (*Item, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT id, title, done, created_at
	FROM items
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanItem, itemEntity, fmt.Sprintf("%d", id), id)
}

// CountItems returns the number of stored items
func (r *SQLiteRepository) CountItems(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count items", err)
	}
	return count, nil
}

// UpdateItem persists title and done. created_at is never rewritten.
func (r *SQLiteRepository) UpdateItem(ctx context.Context, item *Item) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	UPDATE items
	SET title = ?, done = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, itemEntity, fmt.Sprintf("%d", item.ID), item.Title, item.Done, item.ID)
}

// DeleteItem deletes an item by ID
func (r *SQLiteRepository) DeleteItem(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `DELETE FROM items WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, itemEntity, fmt.Sprintf("%d", id), id)
}

// SchemaVersion returns the highest applied migration version
func (r *SQLiteRepository) SchemaVersion(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	version, err := migrations.CurrentVersion(ctx, r.db)
	if err != nil {
		return 0, HandleDatabaseError("read schema version", err)
	}
	return version, nil
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

// Compile-time interface check.
var _ domain.GroceryStore = (*SQLiteGroceryStore)(nil)

// schema contains the DDL executed on open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS grocery_lists (
    id         TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS grocery_items (
    list_id    TEXT NOT NULL REFERENCES grocery_lists(id),
    position   INTEGER NOT NULL,
    name       TEXT NOT NULL,
    quantity   REAL,
    unit       TEXT NOT NULL DEFAULT '',
    section    TEXT NOT NULL DEFAULT 'Other',
    notes      TEXT NOT NULL DEFAULT '',
    recipe_ids TEXT NOT NULL DEFAULT '',
    checked    INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (list_id, position)
);
`

// SQLiteGroceryStore persists grocery lists in a local SQLite database
// so a generated list survives restarts. Items are stored one row each,
// position preserving the aggregator's category-then-insertion order.
type SQLiteGroceryStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewSQLiteGroceryStore opens (or creates) the database at dbPath,
// enables WAL mode and a busy timeout, and creates the schema.
func NewSQLiteGroceryStore(ctx context.Context, dbPath string, log *logger.Logger) (*SQLiteGroceryStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("grocery store: open database: %w", err)
	}

	// SQLite only supports a single writer; one connection avoids
	// SQLITE_BUSY contention between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("grocery store: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("grocery store: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("grocery store: create schema: %w", err)
	}

	log.Debug("grocery store opened at %s", dbPath)
	return &SQLiteGroceryStore{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *SQLiteGroceryStore) Close() error {
	return s.db.Close()
}

// SaveList persists a list and all its items in one transaction.
func (s *SQLiteGroceryStore) SaveList(ctx context.Context, list *domain.GroceryList) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("grocery store: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO grocery_lists (id, created_at) VALUES (?, ?)",
		list.ID, list.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("grocery store: insert list %s: %w", list.ID, err)
	}

	const itemQ = `
		INSERT INTO grocery_items
			(list_id, position, name, quantity, unit, section, notes, recipe_ids, checked)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, item := range list.Items {
		var q sql.NullFloat64
		if item.Quantity != nil {
			q = sql.NullFloat64{Float64: *item.Quantity, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, itemQ,
			list.ID, i, item.Name, q, item.Unit, item.Section, item.Notes,
			strings.Join(item.RecipeIDs, ","), boolToInt(item.Checked),
		); err != nil {
			return fmt.Errorf("grocery store: insert item %d of list %s: %w", i, list.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("grocery store: commit list %s: %w", list.ID, err)
	}
	s.log.Info("saved grocery list %s (%d items)", list.ID, len(list.Items))
	return nil
}

// GetList loads a list and its items by ID.
func (s *SQLiteGroceryStore) GetList(ctx context.Context, id string) (*domain.GroceryList, error) {
	list := &domain.GroceryList{ID: id}

	err := s.db.QueryRowContext(ctx,
		"SELECT created_at FROM grocery_lists WHERE id = ?", id,
	).Scan(&list.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("grocery store: get list %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, quantity, unit, section, notes, recipe_ids, checked
		FROM grocery_items WHERE list_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("grocery store: get items of %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.GroceryItem
		var q sql.NullFloat64
		var recipeIDs string
		var checked int
		if err := rows.Scan(&item.Name, &q, &item.Unit, &item.Section,
			&item.Notes, &recipeIDs, &checked); err != nil {
			return nil, fmt.Errorf("grocery store: scan item of %s: %w", id, err)
		}
		if q.Valid {
			v := q.Float64
			item.Quantity = &v
		}
		if recipeIDs != "" {
			item.RecipeIDs = strings.Split(recipeIDs, ",")
		}
		item.Checked = checked != 0
		list.Items = append(list.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("grocery store: iterate items of %s: %w", id, err)
	}
	return list, nil
}

// LatestList returns the most recently created list, or
// domain.ErrNoList when none has been generated yet.
func (s *SQLiteGroceryStore) LatestList(ctx context.Context) (*domain.GroceryList, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM grocery_lists ORDER BY created_at DESC, id DESC LIMIT 1",
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoList
	}
	if err != nil {
		return nil, fmt.Errorf("grocery store: latest list: %w", err)
	}
	return s.GetList(ctx, id)
}

// ToggleChecked flips the checked flag of one item, addressed by its
// position within the list.
func (s *SQLiteGroceryStore) ToggleChecked(ctx context.Context, listID string, position int) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE grocery_items SET checked = 1 - checked WHERE list_id = ? AND position = ?",
		listID, position)
	if err != nil {
		return fmt.Errorf("grocery store: toggle item %d of %s: %w", position, listID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("grocery store: toggle item %d of %s: %w", position, listID, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

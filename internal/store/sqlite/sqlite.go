package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/vovakirdan/hidlink/internal/store"
)

const schema = `
	CREATE TABLE IF NOT EXISTS shortcuts (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL UNIQUE,
		action     TEXT NOT NULL DEFAULT '',
		text       TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite store and applies the schema.
// dbPath is the path to the SQLite database file.
func New(dbPath string) (*SQLiteStore, error) {
	return NewWithSetup(dbPath, func(db *sql.DB) error {
		_, err := db.Exec(schema)
		return err
	})
}

// NewWithSetup creates a new SQLite store and runs a setup function.
// Useful for tests to apply a custom schema.
func NewWithSetup(dbPath string, setup func(*sql.DB) error) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if setup != nil {
		if err := setup(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateShortcut inserts a new shortcut definition.
func (s *SQLiteStore) CreateShortcut(ctx context.Context, name, action, text string) (*store.Shortcut, error) {
	query := `
		INSERT INTO shortcuts (name, action, text)
		VALUES (?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, name, action, text)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return nil, store.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert shortcut: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return s.GetShortcut(ctx, id)
}

// GetShortcut retrieves a shortcut by ID.
func (s *SQLiteStore) GetShortcut(ctx context.Context, id int64) (*store.Shortcut, error) {
	query := `
		SELECT id, name, action, text, created_at
		FROM shortcuts
		WHERE id = ?
	`
	var sc store.Shortcut
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sc.ID,
		&sc.Name,
		&sc.Action,
		&sc.Text,
		&sc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("query shortcut: %w", err)
	}

	return &sc, nil
}

// ListShortcuts returns every shortcut ordered by creation time.
func (s *SQLiteStore) ListShortcuts(ctx context.Context) ([]store.Shortcut, error) {
	query := `
		SELECT id, name, action, text, created_at
		FROM shortcuts
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query shortcuts: %w", err)
	}
	defer rows.Close()

	var out []store.Shortcut
	for rows.Next() {
		var sc store.Shortcut
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Action, &sc.Text, &sc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shortcut: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shortcuts: %w", err)
	}

	return out, nil
}

// DeleteShortcut removes a shortcut by ID.
func (s *SQLiteStore) DeleteShortcut(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM shortcuts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete shortcut: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

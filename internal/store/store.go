package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("shortcut not found")
	ErrAlreadyExists = errors.New("shortcut already exists")
)

// Shortcut is a user-defined panel button: a named action token or text
// snippet. Exactly one of Action or Text is non-empty, mirroring the
// command payload kinds.
type Shortcut struct {
	ID        int64
	Name      string
	Action    string
	Text      string
	CreatedAt time.Time
}

// Store persists panel shortcut definitions.
type Store interface {
	CreateShortcut(ctx context.Context, name, action, text string) (*Shortcut, error)
	GetShortcut(ctx context.Context, id int64) (*Shortcut, error)
	ListShortcuts(ctx context.Context) ([]Shortcut, error)
	DeleteShortcut(ctx context.Context, id int64) error
	Close() error
}

package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/hidlink/internal/store"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	st, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

func TestShortcutCRUD(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	created, err := st.CreateShortcut(ctx, "lock screen", "CTRL_ALT_DEL", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 || created.Name != "lock screen" || created.Action != "CTRL_ALT_DEL" {
		t.Fatalf("unexpected shortcut: %+v", created)
	}

	snippet, err := st.CreateShortcut(ctx, "greeting", "", "hello there")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := st.ListShortcuts(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 shortcuts, got %d", len(list))
	}

	got, err := st.GetShortcut(ctx, snippet.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Text != "hello there" || got.Action != "" {
		t.Fatalf("unexpected shortcut: %+v", got)
	}

	if err := st.DeleteShortcut(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := st.GetShortcut(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCreateShortcutDuplicateName(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	if _, err := st.CreateShortcut(ctx, "enter", "ENTER", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := st.CreateShortcut(ctx, "enter", "ENTER", ""); !errors.Is(err, store.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestDeleteMissingShortcut(t *testing.T) {
	st := createTestStore(t)

	if err := st.DeleteShortcut(context.Background(), 42); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

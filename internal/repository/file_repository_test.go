package repository

import (
	"context"
	"testing"

	"github.com/velora-dev/velora-api/internal/config"
	"github.com/velora-dev/velora-api/internal/model"
)

func testConfig(dir string) config.Config {
	return config.Config{DataDir: dir} // empty DSN selects the file backend
}

func TestFileUserStore_CreateAndFind(t *testing.T) {
	t.Parallel()

	s, err := NewFileUserStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileUserStore error: %v", err)
	}
	ctx := context.Background()

	u, err := s.Create(ctx, model.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("Create did not assign an ID")
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("Create did not assign a timestamp")
	}

	got, err := s.FindByEmail(ctx, "ann@x.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got.ID != u.ID || got.PasswordHash != "hash" {
		t.Fatalf("FindByEmail mismatch: %+v", got)
	}

	byID, err := s.FindByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if byID.Email != "ann@x.com" {
		t.Fatalf("FindByID mismatch: %+v", byID)
	}

	if _, err := s.FindByEmail(ctx, "missing@x.com"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileUserStore_DuplicateEmail(t *testing.T) {
	t.Parallel()

	s, err := NewFileUserStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileUserStore error: %v", err)
	}
	ctx := context.Background()

	if _, err := s.Create(ctx, model.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := s.Create(ctx, model.User{Name: "Ann2", Email: "ann@x.com", PasswordHash: "h2"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	users, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("duplicate registration persisted: %d users", len(users))
	}
}

func TestFileUserStore_EmailCaseSensitive(t *testing.T) {
	t.Parallel()

	s, err := NewFileUserStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileUserStore error: %v", err)
	}
	ctx := context.Background()

	if _, err := s.Create(ctx, model.User{Name: "Ann", Email: "Ann@x.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := s.FindByEmail(ctx, "ann@x.com"); err != ErrNotFound {
		t.Fatalf("email lookup is not case-sensitive: %v", err)
	}
}

func TestFileUserStore_ListStripsHashes(t *testing.T) {
	t.Parallel()

	s, err := NewFileUserStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileUserStore error: %v", err)
	}
	ctx := context.Background()

	if _, err := s.Create(ctx, model.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	users, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Fatalf("List leaked a password hash for %s", u.Email)
		}
	}
}

func TestFileUserStore_ReopenKeepsIDsMonotonic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	s1, err := NewFileUserStore(dir)
	if err != nil {
		t.Fatalf("NewFileUserStore error: %v", err)
	}
	u1, err := s1.Create(ctx, model.User{Name: "A", Email: "a@x.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Opening the store again over the same directory must not duplicate or
	// reset anything: same records, and new IDs continue past the old ones.
	s2, err := NewFileUserStore(dir)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	users, err := s2.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("reopen duplicated records: %d users", len(users))
	}
	u2, err := s2.Create(ctx, model.User{Name: "B", Email: "b@x.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u2.ID <= u1.ID {
		t.Fatalf("IDs not monotonic after reopen: %d then %d", u1.ID, u2.ID)
	}
}

func TestFileMessageStore_AppendAndList(t *testing.T) {
	t.Parallel()

	s, err := NewFileMessageStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileMessageStore error: %v", err)
	}
	ctx := context.Background()

	first, err := s.Append(ctx, model.ContactMessage{Name: "Bob", Email: "b@x.com", Message: "hi"})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	second, err := s.Append(ctx, model.ContactMessage{Name: "Cat", Email: "c@x.com", Message: "hello"})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("message IDs not monotonic: %d then %d", first.ID, second.ID)
	}

	msgs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	// File backend lists in insertion order.
	if msgs[0].Message != "hi" || msgs[1].Message != "hello" {
		t.Fatalf("unexpected order: %+v", msgs)
	}
}

func TestOpen_SelectsFileBackendWithoutDSN(t *testing.T) {
	t.Parallel()

	stores, err := Open(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if _, ok := stores.Users.(*FileUserStore); !ok {
		t.Fatalf("expected file-backed user store, got %T", stores.Users)
	}
	if _, ok := stores.Messages.(*FileMessageStore); !ok {
		t.Fatalf("expected file-backed message store, got %T", stores.Messages)
	}
}

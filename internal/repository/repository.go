// Package repository owns persistence for users and contact messages. Two
// interchangeable backends implement the same contracts: a MySQL-backed one
// used when a connection string is configured, and a JSON-file-backed one used
// otherwise. The choice is made once at startup by Open; callers never
// inspect which backend they were given.
package repository

import (
	"context"

	"github.com/velora-dev/velora-api/internal/config"
	"github.com/velora-dev/velora-api/internal/database"
	"github.com/velora-dev/velora-api/internal/model"
)

// UserStore is the credential store contract. Implementations enforce email
// uniqueness at write time and report it as ErrEmailExists.
type UserStore interface {
	// Create persists a new user and returns it with its assigned ID.
	// The PasswordHash field must already be set by the caller.
	Create(ctx context.Context, u model.User) (model.User, error)
	// FindByEmail returns the user with the exact (case-sensitive) email,
	// or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// FindByID returns the user with the given ID, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (model.User, error)
	// List returns all users with password hashes stripped, oldest first on
	// both backends. Administrative use only.
	List(ctx context.Context) ([]model.User, error)
}

// MessageStore persists contact-form submissions.
//
// Listing order differs between backends and is deliberate: the MySQL store
// returns most-recent-first, the file store returns insertion order. The
// original site behaved this way and nothing downstream depends on order.
type MessageStore interface {
	Append(ctx context.Context, m model.ContactMessage) (model.ContactMessage, error)
	List(ctx context.Context) ([]model.ContactMessage, error)
}

// Stores bundles the two stores a running server needs.
type Stores struct {
	Users    UserStore
	Messages MessageStore
}

// Open selects and initializes a backend from configuration. A non-empty
// DatabaseDSN selects MySQL (creating the schema idempotently); an empty one
// selects the file backend under cfg.DataDir.
func Open(cfg config.Config) (*Stores, error) {
	if cfg.DatabaseDSN != "" {
		db, err := database.Open(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := EnsureSchema(context.Background(), db); err != nil {
			return nil, err
		}
		return &Stores{
			Users:    NewUserRepo(db),
			Messages: NewMessageRepo(db),
		}, nil
	}

	users, err := NewFileUserStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	messages, err := NewFileMessageStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return &Stores{Users: users, Messages: messages}, nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/velora-dev/velora-api/internal/model"
)

// The file backend keeps each record set in a single JSON file and rewrites
// the whole file on every mutation, the way the original site did. A process
// mutex serializes the check-then-insert pair so concurrent registrations in
// one process cannot both pass the duplicate check; the window remains open
// across processes sharing the directory. That is a documented limitation of
// this backend — the MySQL backend closes it with its UNIQUE constraint.

// FileUserStore is the JSON-file-backed credential store.
type FileUserStore struct {
	mu     sync.Mutex
	path   string
	nextID int64
}

// NewFileUserStore creates the data directory if needed and seeds the ID
// counter from the highest ID already on disk. Calling it again over the same
// directory is harmless: it re-reads whatever is there and writes nothing.
func NewFileUserStore(dir string) (*FileUserStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &FileUserStore{path: filepath.Join(dir, "users.json")}
	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	if s.nextID == 0 {
		s.nextID = 1
	}
	return s, nil
}

func (s *FileUserStore) load() ([]model.User, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(b) == 0 {
		return nil, nil
	}
	var users []fileUser
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	out := make([]model.User, len(users))
	for i, u := range users {
		out[i] = model.User(u)
	}
	return out, nil
}

func (s *FileUserStore) save(users []model.User) error {
	recs := make([]fileUser, len(users))
	for i, u := range users {
		recs[i] = fileUser(u)
	}
	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// fileUser is the on-disk shape. Unlike model.User it serializes the password
// hash, which must survive the round trip to the file.
type fileUser struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Create appends the user after a duplicate check over the whole file.
func (s *FileUserStore) Create(ctx context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return model.User{}, err
	}
	for _, existing := range users {
		if existing.Email == u.Email {
			return model.User{}, ErrEmailExists
		}
	}
	u.ID = s.nextID
	u.CreatedAt = time.Now().UTC()
	users = append(users, u)
	if err := s.save(users); err != nil {
		return model.User{}, err
	}
	s.nextID++
	return u, nil
}

// FindByEmail parses the whole file and scans for an exact email match.
func (s *FileUserStore) FindByEmail(ctx context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// FindByID parses the whole file and scans for the ID.
func (s *FileUserStore) FindByID(ctx context.Context, id int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// List returns all users in file order with password hashes stripped.
func (s *FileUserStore) List(ctx context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

// FileMessageStore is the JSON-file-backed contact message store.
type FileMessageStore struct {
	mu     sync.Mutex
	path   string
	nextID int64
}

// NewFileMessageStore mirrors NewFileUserStore for messages.json.
func NewFileMessageStore(dir string) (*FileMessageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &FileMessageStore{path: filepath.Join(dir, "messages.json")}
	msgs, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, m := range msgs {
		if m.ID >= s.nextID {
			s.nextID = m.ID + 1
		}
	}
	if s.nextID == 0 {
		s.nextID = 1
	}
	return s, nil
}

func (s *FileMessageStore) load() ([]model.ContactMessage, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(b) == 0 {
		return nil, nil
	}
	var msgs []model.ContactMessage
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return msgs, nil
}

func (s *FileMessageStore) save(msgs []model.ContactMessage) error {
	b, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Append assigns an ID and timestamp and rewrites the file.
func (s *FileMessageStore) Append(ctx context.Context, m model.ContactMessage) (model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, err := s.load()
	if err != nil {
		return model.ContactMessage{}, err
	}
	m.ID = s.nextID
	m.CreatedAt = time.Now().UTC()
	msgs = append(msgs, m)
	if err := s.save(msgs); err != nil {
		return model.ContactMessage{}, err
	}
	s.nextID++
	return m, nil
}

// List returns messages in insertion order. The MySQL backend returns
// most-recent-first instead; see the MessageStore contract.
func (s *FileMessageStore) List(ctx context.Context) ([]model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

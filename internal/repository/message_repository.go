package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/velora-dev/velora-api/internal/model"
)

// MessageRepo is the MySQL-backed contact message store.
type MessageRepo struct{ DB *sql.DB }

func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{DB: db} }

// Append inserts the message and returns it with its ID and timestamp set.
func (r *MessageRepo) Append(ctx context.Context, m model.ContactMessage) (model.ContactMessage, error) {
	m.CreatedAt = time.Now().UTC().Truncate(time.Second)
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO messages (name, email, message, created_at) VALUES (?,?,?,?)",
		m.Name, m.Email, m.Message, m.CreatedAt)
	if err != nil {
		return model.ContactMessage{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ContactMessage{}, err
	}
	m.ID = id
	return m, nil
}

// List returns messages most-recent-first. The file backend returns insertion
// order instead; see the MessageStore contract.
func (r *MessageRepo) List(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,message,created_at FROM messages ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

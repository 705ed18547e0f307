// Package queue defines message payloads exchanged over the message broker.
package queue

// ContactReceivedEvent is published when a contact-form submission has been
// stored. It carries the full message so downstream consumers can notify or
// archive without querying the primary store.
type ContactReceivedEvent struct {
	MessageID  int64  `json:"message_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	ReceivedAt string `json:"received_at"` // RFC 3339
}

// UserRegisteredEvent is published after a successful registration. The
// password hash never leaves the credential store.
type UserRegisteredEvent struct {
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"` // RFC 3339
}

// Queue names. Declared durable by both publisher and consumer so declaration
// stays idempotent regardless of which side starts first.
const (
	ContactQueueName    = "contact.received"
	RegisteredQueueName = "user.registered"
)

package model

import "time"

// ContactMessage is an append-only record of a contact-form submission. It has
// no uniqueness constraint and no relation to User.
type ContactMessage struct {
    ID        int64     `json:"id"`
    Name      string    `json:"name"`
    Email     string    `json:"email"`
    Message   string    `json:"message"`
    CreatedAt time.Time `json:"created_at"`
}

package model

import "time"

// User represents a registered shopper as stored by the credential store.
// Email is the sole identity key: it is unique across all users and compared
// case-sensitively, exactly as the client submitted it. Records are immutable
// after creation; there are no update or delete operations.
//
// Fields:
//  ID           – identifier assigned by the store at creation.
//  Name         – display name, required non-empty.
//  Email        – unique email address, required non-empty.
//  PasswordHash – bcrypt hash of the password; never serialized to clients.
//  CreatedAt    – timestamp of registration.
type User struct {
    ID           int64     `json:"id"`
    Name         string    `json:"name"`
    Email        string    `json:"email"`
    PasswordHash string    `json:"-"`
    CreatedAt    time.Time `json:"created_at"`
}

// Sanitized returns a copy safe to serialize: the hash is already excluded by
// the json tag, but clearing it here keeps listings and responses safe even if
// a caller marshals the struct through another path.
func (u User) Sanitized() User {
    u.PasswordHash = ""
    return u
}

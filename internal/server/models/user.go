// Package models holds the server-side data model.
package models

import "time"

// User is one registered account. The email is the lookup key and is unique.
// PasswordHash is a salted bcrypt hash; the raw password is never stored.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

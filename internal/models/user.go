package models

import "time"

// User is an account record. Email uniqueness is enforced by
// lookup-before-insert in the auth service, not by the store.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session binds the client to one user with an absolute expiry.
// At most one session exists at a time; creating a new one
// overwrites the previous slot.
type Session struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its absolute expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

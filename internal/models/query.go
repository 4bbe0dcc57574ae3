package models

import "time"

// Query is a community question with embedded responses.
type Query struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Username  string          `json:"username"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Status    string          `json:"status"` // open, resolved
	Responses []QueryResponse `json:"responses"`
	CreatedAt time.Time       `json:"createdAt"`
}

// QueryResponse belongs to exactly one query and is embedded in it.
type QueryResponse struct {
	ID        string    `json:"id"`
	QueryID   string    `json:"queryId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

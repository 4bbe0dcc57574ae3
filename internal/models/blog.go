package models

import "time"

// Blog is a long-form post with tags. Like and comment semantics match Post.
type Blog struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Username  string        `json:"username"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Image     string        `json:"image,omitempty"`
	Tags      []string      `json:"tags"`
	Likes     []string      `json:"likes"`
	Comments  []BlogComment `json:"comments"`
	CreatedAt time.Time     `json:"createdAt"`
}

// BlogComment belongs to exactly one blog and is embedded in it.
type BlogComment struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blogId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// Post is a feed entry. Username is a snapshot taken at creation time
// and is never resynchronized on profile change.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment belongs to exactly one post and is embedded in it.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToggleLike returns the likes slice with userID added if absent or
// removed if present. The slice behaves as a set keyed by user id.
func ToggleLike(likes []string, userID string) []string {
	for i, id := range likes {
		if id == userID {
			return append(likes[:i:i], likes[i+1:]...)
		}
	}
	return append(likes, userID)
}
